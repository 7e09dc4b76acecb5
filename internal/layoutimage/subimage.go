// Package layoutimage holds small image-compositing helpers shared by the
// layout debug visualizer: an offset sub-rectangle view onto a larger
// canvas, hex color parsing, and glyph-by-glyph text labeling, all adapted
// from the corpus's software menu renderer.
package layoutimage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// SubImage is a view into Src offset and clipped to Rect, so drawing
// routines can address a nested rectangle's own (0,0) origin without
// tracking an absolute offset everywhere.
type SubImage struct {
	Src  draw.Image
	Rect image.Rectangle
}

func (si *SubImage) At(x, y int) color.Color {
	if x < 0 || x >= si.Rect.Dx() || y < 0 || y >= si.Rect.Dy() {
		return nil
	}
	return si.Src.At(si.Rect.Min.X+x, si.Rect.Min.Y+y)
}

func (si *SubImage) Set(x, y int, c color.Color) {
	if x < 0 || x >= si.Rect.Dx() || y < 0 || y >= si.Rect.Dy() {
		return
	}
	si.Src.Set(si.Rect.Min.X+x, si.Rect.Min.Y+y, c)
}

func (si *SubImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, si.Rect.Dx(), si.Rect.Dy())
}

func (si *SubImage) ColorModel() color.Model {
	return si.Src.ColorModel()
}

// ParseColor accepts #rgb, #rgba, #rrggbb or #rrggbbaa (the leading '#' is
// optional).
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2], 'f', 'f'})
	case 4:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2], s[3], s[3]})
	case 6:
		s += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color: %s", s)
	}
	var v [4]uint64
	for i := range v {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color: %s", s)
		}
		v[i] = n
	}
	return color.NRGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}
