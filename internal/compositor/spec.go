package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrDecode      = errors.New("compositor: input is not a decodable image")
	ErrInvalidSpec = errors.New("compositor: invalid composition spec")
	ErrEncode      = errors.New("compositor: failed to encode output image")
)

// Anchor is the canvas (or overlay box) corner a placement is measured from.
type Anchor string

const (
	TopLeft     Anchor = "top-left"
	TopRight    Anchor = "top-right"
	BottomLeft  Anchor = "bottom-left"
	BottomRight Anchor = "bottom-right"
)

var anchors = map[Anchor]bool{
	TopLeft:     true,
	TopRight:    true,
	BottomLeft:  true,
	BottomRight: true,
}

type Position struct {
	Anchor  Anchor
	MarginX int
	MarginY int
}

type Shadow struct {
	Offset int
	Color  color.NRGBA // A is the shadow opacity
}

type Badge struct {
	Size         int
	Fill         color.NRGBA
	Outline      color.NRGBA
	OutlineWidth int
	Label        string
	LabelColor   color.NRGBA
	Corner       Anchor // corner of the overlay box the badge is centred on
}

type Caption struct {
	Text    string
	OffsetX int
	OffsetY int // distance below the overlay box
	Color   color.NRGBA
}

// Spec describes one composition. Zero CanvasWidth/CanvasHeight keep the
// background at its decoded size.
type Spec struct {
	CanvasWidth  int
	CanvasHeight int
	OverlaySize  int
	Position     Position
	BorderWidth  int
	BorderColor  color.NRGBA
	MaskBlur     float64 // gaussian sigma applied to the circular mask, 0 = hard edge
	Tint         *color.NRGBA
	Shadow       *Shadow
	Badge        *Badge
	Caption      *Caption
}

func (s Spec) validate() error {
	if s.OverlaySize <= 0 {
		return fmt.Errorf("%w: overlay size must be positive, got %d", ErrInvalidSpec, s.OverlaySize)
	}
	if s.CanvasWidth < 0 || s.CanvasHeight < 0 {
		return fmt.Errorf("%w: negative canvas size %dx%d", ErrInvalidSpec, s.CanvasWidth, s.CanvasHeight)
	}
	if (s.CanvasWidth == 0) != (s.CanvasHeight == 0) {
		return fmt.Errorf("%w: canvas width and height must be both set or both zero", ErrInvalidSpec)
	}
	if !anchors[s.Position.Anchor] {
		return fmt.Errorf("%w: unknown anchor %q", ErrInvalidSpec, s.Position.Anchor)
	}
	if s.BorderWidth < 0 || s.MaskBlur < 0 {
		return fmt.Errorf("%w: border width and mask blur must not be negative", ErrInvalidSpec)
	}
	if s.Shadow != nil && s.Shadow.Offset < 0 {
		return fmt.Errorf("%w: shadow offset must not be negative", ErrInvalidSpec)
	}
	if s.Badge != nil {
		if s.Badge.Size <= 0 || s.Badge.OutlineWidth < 0 || 2*s.Badge.OutlineWidth > s.Badge.Size {
			return fmt.Errorf("%w: bad badge geometry", ErrInvalidSpec)
		}
		if !anchors[s.Badge.Corner] {
			return fmt.Errorf("%w: unknown badge corner %q", ErrInvalidSpec, s.Badge.Corner)
		}
	}
	return nil
}

// Placement returns the top-left corner of the overlay box on a canvas of the
// given size. The box is clamped so it always lies inside the canvas.
func Placement(s Spec, canvasW, canvasH int) (image.Point, error) {
	if s.OverlaySize <= 0 {
		return image.Point{}, fmt.Errorf("%w: overlay size must be positive, got %d", ErrInvalidSpec, s.OverlaySize)
	}
	if s.OverlaySize > canvasW || s.OverlaySize > canvasH {
		return image.Point{}, fmt.Errorf("%w: overlay %d does not fit canvas %dx%d", ErrInvalidSpec, s.OverlaySize, canvasW, canvasH)
	}

	p := s.Position
	var x, y int
	switch p.Anchor {
	case TopLeft:
		x, y = p.MarginX, p.MarginY
	case TopRight:
		x, y = canvasW-s.OverlaySize-p.MarginX, p.MarginY
	case BottomLeft:
		x, y = p.MarginX, canvasH-s.OverlaySize-p.MarginY
	case BottomRight:
		x, y = canvasW-s.OverlaySize-p.MarginX, canvasH-s.OverlaySize-p.MarginY
	default:
		return image.Point{}, fmt.Errorf("%w: unknown anchor %q", ErrInvalidSpec, p.Anchor)
	}

	return image.Pt(clamp(x, 0, canvasW-s.OverlaySize), clamp(y, 0, canvasH-s.OverlaySize)), nil
}

// cornerOf returns the given corner of the square box of side size at p.
func cornerOf(p image.Point, size int, a Anchor) image.Point {
	switch a {
	case TopRight:
		return image.Pt(p.X+size, p.Y)
	case BottomLeft:
		return image.Pt(p.X, p.Y+size)
	case BottomRight:
		return image.Pt(p.X+size, p.Y+size)
	default:
		return p
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
