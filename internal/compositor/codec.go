package compositor

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers webp with image.Decode
)

// DefaultQuality is the JPEG quality used for composed output.
const DefaultQuality = 85

func Decode(r io.Reader) (image.Image, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrDecode)
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// EncodeJPEG writes img as an opaque JPEG.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEncode)
	}
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// ComposeBytes decodes both inputs, composes them and returns the JPEG bytes.
// Nothing is returned unless every step succeeded.
func ComposeBytes(background, overlay []byte, spec Spec, quality int) ([]byte, error) {
	bg, err := Decode(bytes.NewReader(background))
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	ov, err := Decode(bytes.NewReader(overlay))
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	out, err := Compose(bg, ov, spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, out, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
