package compositor

import (
	"image"

	"github.com/disintegration/imaging"
)

// discMask paints a full-intensity disc of the given diameter centred in a
// square mask of side size. Pixels are tested at their centres.
func discMask(size, diameter int) *image.Gray {
	return ringMask(size, 0, diameter)
}

// ringMask paints the annulus between two diameters centred in a square mask
// of side size. inner == 0 yields a filled disc.
func ringMask(size, inner, outer int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	rIn := float64(inner) / 2
	rOut := float64(outer) / 2

	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - c
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			d2 := dx*dx + dy*dy
			if d2 > rOut*rOut {
				continue
			}
			if inner > 0 && d2 <= rIn*rIn {
				continue
			}
			m.Pix[y*m.Stride+x] = 0xff
		}
	}
	return m
}

// blurMask softens the mask edge with a gaussian of the given sigma.
func blurMask(m *image.Gray, sigma float64) *image.Gray {
	if sigma <= 0 {
		return m
	}
	blurred := imaging.Blur(m, sigma)

	out := image.NewGray(m.Rect)
	w, h := m.Rect.Dx(), m.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// gray input comes back with R == G == B
			out.Pix[y*out.Stride+x] = blurred.Pix[y*blurred.Stride+x*4]
		}
	}
	return out
}

// scaleMask multiplies every weight by alpha/255.
func scaleMask(m *image.Gray, alpha uint8) *image.Gray {
	out := image.NewGray(m.Rect)
	for i, v := range m.Pix {
		out.Pix[i] = uint8((uint32(v)*uint32(alpha) + 127) / 255)
	}
	return out
}
