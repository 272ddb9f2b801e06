package compositor

import "image/color"

var (
	white  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	orange = color.NRGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff}
)

// Postcard: large soft-edged photo top-right with a white ring, a drop shadow
// and a caption underneath.
func Postcard() Spec {
	return Spec{
		CanvasWidth:  800,
		CanvasHeight: 600,
		OverlaySize:  150,
		Position:     Position{Anchor: TopRight, MarginX: 30, MarginY: 30},
		BorderWidth:  4,
		BorderColor:  white,
		MaskBlur:     3,
		Shadow:       &Shadow{Offset: 3, Color: color.NRGBA{A: 100}},
		Caption:      &Caption{Text: "You're here!", OffsetY: 10, Color: white},
	}
}

// TravelBadge: smaller photo bottom-right on a darkened canvas, with an
// orange travel badge on the photo's top-right corner.
func TravelBadge() Spec {
	return Spec{
		CanvasWidth:  800,
		CanvasHeight: 600,
		OverlaySize:  120,
		Position:     Position{Anchor: BottomRight, MarginX: 20, MarginY: 20},
		BorderWidth:  3,
		BorderColor:  white,
		Tint:         &color.NRGBA{A: 50},
		Badge: &Badge{
			Size:         40,
			Fill:         orange,
			Outline:      white,
			OutlineWidth: 2,
			Label:        "GO",
			LabelColor:   white,
			Corner:       TopRight,
		},
	}
}
