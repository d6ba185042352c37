package charts

import (
	"bytes"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

// RotationOptions selects the Euler angle columns, in degrees.
type RotationOptions struct {
	X string
	Y string
	// Z is optional; empty means the dataset has no roll component.
	Z string

	Title string

	// MaxSamples caps the plotted rows, keeping every k-th row.
	// Zero plots everything.
	MaxSamples int
}

// Fixed camera for the orientation scatter.
const (
	cameraYaw   = math.Pi / 4
	cameraPitch = math.Pi / 6
)

// Rotation renders the distribution of object orientations. Every row
// rotates the unit vector (0,1,0) by its Euler angles; the rotated
// directions are drawn as a dot-only scatter under a fixed
// orthographic camera with both axes spanning [-1,1].
func (r *Renderer) Rotation(table *dataset.Table, opts RotationOptions) ([]byte, error) {
	xAngles, err := table.Floats(opts.X)
	if err != nil {
		return nil, err
	}
	yAngles, err := table.Floats(opts.Y)
	if err != nil {
		return nil, err
	}
	var zAngles []float64
	if opts.Z != "" {
		zAngles, err = table.Floats(opts.Z)
		if err != nil {
			return nil, err
		}
	}
	if len(xAngles) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rotation chart needs at least one row")
	}

	indices := sampleIndices(len(xAngles), opts.MaxSamples)
	xs := make([]float64, 0, len(indices))
	ys := make([]float64, 0, len(indices))
	for _, i := range indices {
		z := 0.0
		if zAngles != nil {
			z = zAngles[i]
		}
		px, py := project(eulerPoint(xAngles[i], yAngles[i], z))
		xs = append(xs, px)
		ys = append(ys, py)
	}
	if len(xs) == 1 {
		// A second identical point keeps single-sample series renderable.
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:      opts.Title,
		Width:      r.config.Width,
		Height:     r.config.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 20}},
		XAxis:      chart.XAxis{Range: &chart.ContinuousRange{Min: -1.1, Max: 1.1}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: -1.1, Max: 1.1}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 0,
					DotWidth:    5,
					DotColor:    drawing.Color{R: 0, G: 116, B: 217, A: 128},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to render rotation chart")
	}
	return buf.Bytes(), nil
}

// eulerPoint rotates the unit vector (0,1,0): the x angle about the Z
// axis, then the y angle about the X axis, then the z angle about the
// Y axis. The axis pairing matches the capture convention.
func eulerPoint(xDeg, yDeg, zDeg float64) (float64, float64, float64) {
	ax := xDeg * math.Pi / 180
	ay := yDeg * math.Pi / 180
	az := zDeg * math.Pi / 180

	x, y, z := 0.0, 1.0, 0.0

	x, y = x*math.Cos(ax)-y*math.Sin(ax), x*math.Sin(ax)+y*math.Cos(ax)
	y, z = y*math.Cos(ay)-z*math.Sin(ay), y*math.Sin(ay)+z*math.Cos(ay)
	x, z = x*math.Cos(az)+z*math.Sin(az), -x*math.Sin(az)+z*math.Cos(az)

	return x, y, z
}

// project applies the fixed camera: yaw about the vertical axis, then
// pitch toward the viewer, dropping depth.
func project(x, y, z float64) (float64, float64) {
	x, z = x*math.Cos(cameraYaw)+z*math.Sin(cameraYaw), -x*math.Sin(cameraYaw)+z*math.Cos(cameraYaw)
	return x, y*math.Cos(cameraPitch) - z*math.Sin(cameraPitch)
}
