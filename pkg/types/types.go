package types

// Box represents an axis-aligned bounding box in pixel coordinates.
// Label is the integer class index used to look up a display name and
// Score is the detection confidence in [0,1]. Field tags follow the
// capture-file annotation schema.
type Box struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"width"`
	H     float64 `json:"height"`
	Label int     `json:"label_id"`
	Score float64 `json:"score"`
}

// Left returns the left edge of the box.
func (b Box) Left() float64 { return b.X }

// Top returns the top edge of the box.
func (b Box) Top() float64 { return b.Y }

// Right returns the right edge of the box.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge of the box.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Area returns the box area in square pixels.
func (b Box) Area() float64 { return b.W * b.H }
