// Package visualizer places a user's photo into a destination picture, trying each strategy in order
package visualizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhanaviii/AI-Travel-Agent/internal/compositor"
)

var ErrAllFailed = errors.New("every visualization strategy failed")

// Strategy turns the two source pictures into the final JPEG
type Strategy interface {
	Name() string
	Render(ctx context.Context, userImage, destImage []byte) ([]byte, error)
}

// Fetcher downloads a remote picture
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Result struct {
	Image    []byte
	Strategy string
}

type Visualizer struct {
	fetcher    Fetcher
	strategies []Strategy
}

func New(f Fetcher, strategies ...Strategy) *Visualizer {
	return &Visualizer{fetcher: f, strategies: strategies}
}

// Visualize fetches both pictures once and returns the first strategy output that succeeds.
// On total failure the returned error joins every strategy error.
func (v *Visualizer) Visualize(ctx context.Context, userPhotoURL, destImageURL string) (*Result, error) {
	user, err := v.fetcher.Fetch(ctx, userPhotoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: user photo: %w", ErrAllFailed, err)
	}
	dest, err := v.fetcher.Fetch(ctx, destImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: destination image: %w", ErrAllFailed, err)
	}

	errs := []error{ErrAllFailed}
	for _, s := range v.strategies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		out, err := s.Render(ctx, user, dest)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		return &Result{Image: out, Strategy: s.Name()}, nil
	}

	return nil, errors.Join(errs...)
}

// FaceSwapper is the hosted face-swap API
type FaceSwapper interface {
	FaceSwapEnabled() bool
	FaceSwap(ctx context.Context, userImage, destImage []byte) ([]byte, error)
}

type remote struct {
	api FaceSwapper
}

// Remote skips itself with an error when the API is not configured
func Remote(api FaceSwapper) Strategy {
	return remote{api: api}
}

func (remote) Name() string { return "remote" }

func (r remote) Render(ctx context.Context, userImage, destImage []byte) ([]byte, error) {
	if r.api == nil || !r.api.FaceSwapEnabled() {
		return nil, errors.New("face swap API not configured")
	}
	return r.api.FaceSwap(ctx, userImage, destImage)
}

type composed struct {
	name    string
	spec    compositor.Spec
	quality int
}

// Composed renders locally: the destination is the background, the user photo the overlay
func Composed(name string, spec compositor.Spec) Strategy {
	return composed{name: name, spec: spec, quality: compositor.DefaultQuality}
}

func Postcard() Strategy { return Composed("postcard", compositor.Postcard()) }

func Badge() Strategy { return Composed("badge", compositor.TravelBadge()) }

func (c composed) Name() string { return c.name }

func (c composed) Render(_ context.Context, userImage, destImage []byte) ([]byte, error) {
	return compositor.ComposeBytes(destImage, userImage, c.spec, c.quality)
}
