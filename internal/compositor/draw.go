package compositor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// flatten converts any decoded image (palette, gray, alpha) into an opaque
// NRGBA copy. Alpha is dropped, not blended, so transparent areas keep their
// stored colour.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// pasteMasked blends src onto dst with its top-left at p, using mask as the
// per-pixel weight: out = dst*(1-m/255) + src*(m/255). Only the clipped
// box under src is touched.
func pasteMasked(dst, src *image.NRGBA, mask *image.Gray, p image.Point) {
	box := image.Rectangle{Min: p, Max: p.Add(mask.Rect.Size())}.Intersect(dst.Rect)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			mx, my := x-p.X, y-p.Y
			m := uint32(mask.Pix[my*mask.Stride+mx])
			if m == 0 {
				continue
			}
			d := dst.PixOffset(x, y)
			s := src.PixOffset(src.Rect.Min.X+mx, src.Rect.Min.Y+my)
			for c := 0; c < 3; c++ {
				dst.Pix[d+c] = mix(dst.Pix[d+c], src.Pix[s+c], m)
			}
			dst.Pix[d+3] = 0xff
		}
	}
}

// fillMasked blends a solid colour onto dst through mask, the colour alpha
// scaling every weight.
func fillMasked(dst *image.NRGBA, col color.NRGBA, mask *image.Gray, p image.Point) {
	if col.A != 0xff {
		mask = scaleMask(mask, col.A)
	}
	box := image.Rectangle{Min: p, Max: p.Add(mask.Rect.Size())}.Intersect(dst.Rect)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			m := uint32(mask.Pix[(y-p.Y)*mask.Stride+(x-p.X)])
			if m == 0 {
				continue
			}
			d := dst.PixOffset(x, y)
			dst.Pix[d] = mix(dst.Pix[d], col.R, m)
			dst.Pix[d+1] = mix(dst.Pix[d+1], col.G, m)
			dst.Pix[d+2] = mix(dst.Pix[d+2], col.B, m)
			dst.Pix[d+3] = 0xff
		}
	}
}

// tint lays a translucent colour over the whole canvas.
func tint(dst *image.NRGBA, col color.NRGBA) *image.NRGBA {
	b := dst.Bounds()
	layer := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
	out := imaging.Overlay(dst, layer, b.Min, float64(col.A)/255)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

func mix(bg, fg uint8, m uint32) uint8 {
	return uint8((uint32(bg)*(255-m) + uint32(fg)*m + 127) / 255)
}
