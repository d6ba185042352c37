package annotate

import (
	"crypto/md5"
	"image/color"
	"math/big"
)

// paletteEntry pairs a box color with a contrasting text color.
type paletteEntry struct {
	box  color.NRGBA
	text color.NRGBA
}

// paletteNames fixes the hash index order. The order and the table below
// are frozen: changing either changes every auto-selected color.
var paletteNames = [...]string{
	"navy", "blue", "aqua", "teal", "olive", "green", "lime", "yellow",
	"orange", "red", "maroon", "fuchsia", "purple", "gray", "silver",
}

var palette = map[string]paletteEntry{
	"navy":    {color.NRGBA{0, 38, 63, 255}, color.NRGBA{119, 193, 250, 255}},
	"blue":    {color.NRGBA{0, 120, 210, 255}, color.NRGBA{173, 220, 252, 255}},
	"aqua":    {color.NRGBA{115, 221, 252, 255}, color.NRGBA{0, 76, 100, 255}},
	"teal":    {color.NRGBA{15, 205, 202, 255}, color.NRGBA{0, 0, 0, 255}},
	"olive":   {color.NRGBA{52, 153, 114, 255}, color.NRGBA{25, 58, 45, 255}},
	"green":   {color.NRGBA{0, 204, 84, 255}, color.NRGBA{15, 64, 31, 255}},
	"lime":    {color.NRGBA{1, 255, 127, 255}, color.NRGBA{0, 102, 53, 255}},
	"yellow":  {color.NRGBA{255, 216, 70, 255}, color.NRGBA{103, 87, 28, 255}},
	"orange":  {color.NRGBA{255, 125, 57, 255}, color.NRGBA{104, 48, 19, 255}},
	"red":     {color.NRGBA{255, 47, 65, 255}, color.NRGBA{131, 0, 17, 255}},
	"maroon":  {color.NRGBA{135, 13, 75, 255}, color.NRGBA{239, 117, 173, 255}},
	"fuchsia": {color.NRGBA{246, 0, 184, 255}, color.NRGBA{103, 0, 78, 255}},
	"purple":  {color.NRGBA{179, 17, 193, 255}, color.NRGBA{241, 167, 244, 255}},
	"gray":    {color.NRGBA{168, 168, 168, 255}, color.NRGBA{0, 0, 0, 255}},
	"silver":  {color.NRGBA{220, 220, 220, 255}, color.NRGBA{0, 0, 0, 255}},
}

// Colors returns the palette color names in canonical order.
func Colors() []string {
	names := make([]string, len(paletteNames))
	copy(names, paletteNames[:])
	return names
}

// ColorForLabel returns the deterministic palette color for a label: the
// MD5 digest of the label's UTF-8 bytes, read as a big-endian integer,
// reduced modulo the palette size. The same label maps to the same color
// across runs and processes.
func ColorForLabel(label string) string {
	sum := md5.Sum([]byte(label))
	n := new(big.Int).SetBytes(sum[:])
	idx := n.Mod(n, big.NewInt(int64(len(paletteNames)))).Int64()
	return paletteNames[idx]
}

// BoxColor returns the box color for a palette name, or false when the
// name is not in the palette.
func BoxColor(name string) (color.NRGBA, bool) {
	entry, ok := palette[name]
	return entry.box, ok
}

// TextColor returns the contrasting text color for a palette name, or
// false when the name is not in the palette.
func TextColor(name string) (color.NRGBA, bool) {
	entry, ok := palette[name]
	return entry.text, ok
}
