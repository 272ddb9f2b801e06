package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func testImageReader(t *testing.T, w, h int, format imaging.Format, c color.NRGBA) *bytes.Reader {
	t.Helper()

	img := imaging.New(w, h, c)

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, format)
	require.NoError(t, err)

	return bytes.NewReader(buf.Bytes())
}

func mustDecode(t *testing.T, r io.Reader) image.Image {
	t.Helper()

	img, format, err := image.Decode(r)
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)

	return img
}

func TestOptimize(t *testing.T) {
	blue := color.NRGBA{R: 100, G: 100, B: 200, A: 255}

	tests := []struct {
		name         string
		reader       io.Reader
		wantW, wantH int
		wantErr      bool
	}{
		{
			name:   "landscape shrunk to width",
			reader: testImageReader(t, 2400, 1200, imaging.PNG, blue),
			wantW:  1200,
			wantH:  600,
		},
		{
			name:   "portrait shrunk to height",
			reader: testImageReader(t, 1000, 3000, imaging.JPEG, blue),
			wantW:  400,
			wantH:  1200,
		},
		{
			name:   "small image kept",
			reader: testImageReader(t, 300, 200, imaging.GIF, blue),
			wantW:  300,
			wantH:  200,
		},
		{
			name:    "nil reader",
			reader:  nil,
			wantErr: true,
		},
		{
			name:    "broken image",
			reader:  bytes.NewReader([]byte("not-an-image")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size, err := Optimize(tt.reader, MaxWidth, MaxHeight, Quality)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Greater(t, size, int64(0))

			img := mustDecode(t, r)
			require.Equal(t, tt.wantW, img.Bounds().Dx())
			require.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}
}

func TestOptimize_DecodeErrorIsTyped(t *testing.T) {
	_, _, err := Optimize(bytes.NewReader([]byte("broken")), MaxWidth, MaxHeight, Quality)
	require.ErrorIs(t, err, ErrDecode)
}

func TestOptimize_TransparencyOnWhite(t *testing.T) {
	transparent := testImageReader(t, 40, 40, imaging.PNG, color.NRGBA{})

	r, _, err := Optimize(transparent, MaxWidth, MaxHeight, Quality)
	require.NoError(t, err)

	px := imaging.Clone(mustDecode(t, r)).NRGBAAt(20, 20)
	require.InDelta(t, 255, px.R, 3)
	require.InDelta(t, 255, px.G, 3)
	require.InDelta(t, 255, px.B, 3)
}
