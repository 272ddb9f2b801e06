// Package compositor places a circular photo overlay onto a background
// canvas: resize, circular mask, drop shadow, border ring, badge and caption.
// Every call is a pure, deterministic transform on in-memory buffers.
package compositor

import (
	"image"

	"github.com/disintegration/imaging"
)

// Compose resizes background to the spec canvas, crops overlay into a circle
// of spec.OverlaySize and blends it in at the spec position. The returned
// image is opaque and never aliases the inputs.
func Compose(background, overlay image.Image, spec Spec) (*image.NRGBA, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if background == nil || overlay == nil {
		return nil, ErrDecode
	}

	canvas := flatten(background)
	if spec.CanvasWidth > 0 {
		canvas = imaging.Resize(canvas, spec.CanvasWidth, spec.CanvasHeight, imaging.Lanczos)
	}
	cw, ch := canvas.Rect.Dx(), canvas.Rect.Dy()

	at, err := Placement(spec, cw, ch)
	if err != nil {
		return nil, err
	}

	size := spec.OverlaySize
	photo := imaging.Resize(flatten(overlay), size, size, imaging.Lanczos)

	if spec.Tint != nil {
		canvas = tint(canvas, *spec.Tint)
	}

	if sh := spec.Shadow; sh != nil {
		padded := size + 2*sh.Offset
		fillMasked(canvas, sh.Color, discMask(padded, size), at.Sub(image.Pt(sh.Offset, sh.Offset)))
	}

	mask := blurMask(discMask(size, size), spec.MaskBlur)
	pasteMasked(canvas, photo, mask, at)

	if bw := spec.BorderWidth; bw > 0 {
		outer := size + 2*bw
		fillMasked(canvas, spec.BorderColor, ringMask(outer, size, outer), at.Sub(image.Pt(bw, bw)))
	}

	if b := spec.Badge; b != nil {
		drawBadge(canvas, *b, cornerOf(at, size, b.Corner))
	}

	if c := spec.Caption; c != nil && c.Text != "" {
		drawText(canvas, c.Text, c.Color, image.Pt(at.X+c.OffsetX, at.Y+size+c.OffsetY))
	}

	return canvas, nil
}

func drawBadge(canvas *image.NRGBA, b Badge, center image.Point) {
	origin := center.Sub(image.Pt(b.Size/2, b.Size/2))
	fillMasked(canvas, b.Fill, discMask(b.Size, b.Size), origin)
	if b.OutlineWidth > 0 {
		fillMasked(canvas, b.Outline, ringMask(b.Size, b.Size-2*b.OutlineWidth, b.Size), origin)
	}
	if b.Label != "" {
		drawTextCentered(canvas, b.Label, b.LabelColor, origin.Add(image.Pt(b.Size/2, b.Size/2)))
	}
}
