package layoutimage

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws text onto dst with its baseline at pt, advancing glyph by
// glyph the same way the corpus's own text renderer does (kerning looked up
// per pair, advance accumulated in 26.6 fixed point), but against the
// built-in basicfont face instead of a file loaded off disk: a debug
// visualizer has no business depending on the host having a font installed.
func DrawLabel(dst draw.Image, pt image.Point, label string, c color.Color) int {
	face := basicfont.Face7x13
	dot := fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y)}

	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}

	prev := rune(-1)
	for _, r := range label {
		if prev != -1 {
			drawer.Dot.X += face.Kern(prev, r)
		}
		prev = r
		drawer.DrawString(string(r))
	}
	return drawer.Dot.X.Ceil() - pt.X
}
