package compositor

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// drawText renders s with its top-left corner at p.
func drawText(dst *image.NRGBA, s string, col color.NRGBA, p image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(p.X, p.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawTextCentered renders s centred on c.
func drawTextCentered(dst *image.NRGBA, s string, col color.NRGBA, c image.Point) {
	w := font.MeasureString(face, s).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	drawText(dst, s, col, image.Pt(c.X-w/2, c.Y-h/2))
}
