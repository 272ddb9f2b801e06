// Package imageproc prepares uploaded photos for storage: decoding, flattening to RGB and fitting into a bounding box.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp uploads
)

const (
	MaxWidth  = 1200
	MaxHeight = 1200
	Quality   = 85
)

var ErrDecode = errors.New("failed to decode image")

// Optimize decodes r, drops transparency onto white, shrinks the picture to fit
// into maxW x maxH keeping its ratio and re-encodes it as JPEG.
// Pictures already inside the box are not upscaled.
func Optimize(r io.Reader, maxW, maxH, quality int) (io.Reader, int64, error) {
	if r == nil {
		return nil, 0, errors.New("nil-reader provided to Optimize")
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var out image.Image = flat
	if flat.Bounds().Dx() > maxW || flat.Bounds().Dy() > maxH {
		out = imaging.Fit(flat, maxW, maxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, 0, fmt.Errorf("failed to encode optimized image: %w", err)
	}
	return &buf, int64(buf.Len()), nil
}
