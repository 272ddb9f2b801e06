package visualizer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/jhanaviii/AI-Travel-Agent/internal/compositor"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 30, G: 120, B: 200, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func staticFetcher(files map[string][]byte) *mockFetcher {
	return &mockFetcher{fetchFn: func(ctx context.Context, url string) ([]byte, error) {
		if b, ok := files[url]; ok {
			return b, nil
		}
		return nil, errors.New("404")
	}}
}

func okStrategy(name string, out []byte) *mockStrategy {
	return &mockStrategy{name: name, renderFn: func(ctx context.Context, u, d []byte) ([]byte, error) {
		return out, nil
	}}
}

func failStrategy(name string, err error) *mockStrategy {
	return &mockStrategy{name: name, renderFn: func(ctx context.Context, u, d []byte) ([]byte, error) {
		return nil, err
	}}
}

func TestVisualize_FirstSuccessWins(t *testing.T) {
	f := staticFetcher(map[string][]byte{"u": []byte("user"), "d": []byte("dest")})

	first := failStrategy("remote", errors.New("quota"))
	second := okStrategy("postcard", []byte("card"))
	third := okStrategy("badge", []byte("badge"))

	res, err := New(f, first, second, third).Visualize(context.Background(), "u", "d")
	require.NoError(t, err)
	require.Equal(t, "postcard", res.Strategy)
	require.Equal(t, []byte("card"), res.Image)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 0, third.calls)
}

func TestVisualize_AllFail(t *testing.T) {
	f := staticFetcher(map[string][]byte{"u": []byte("user"), "d": []byte("dest")})
	errA := errors.New("a broke")
	errB := errors.New("b broke")

	res, err := New(f, failStrategy("a", errA), failStrategy("b", errB)).Visualize(context.Background(), "u", "d")
	require.Nil(t, res)
	require.ErrorIs(t, err, ErrAllFailed)
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
}

func TestVisualize_FetchFailure(t *testing.T) {
	f := staticFetcher(map[string][]byte{"d": []byte("dest")})
	s := okStrategy("postcard", []byte("x"))

	_, err := New(f, s).Visualize(context.Background(), "missing", "d")
	require.ErrorIs(t, err, ErrAllFailed)
	require.Equal(t, 0, s.calls)
}

func TestVisualize_FetchesOnce(t *testing.T) {
	calls := 0
	f := &mockFetcher{fetchFn: func(ctx context.Context, url string) ([]byte, error) {
		calls++
		return []byte(url), nil
	}}

	_, err := New(f, failStrategy("a", errors.New("x")), failStrategy("b", errors.New("y"))).Visualize(context.Background(), "u", "d")
	require.Error(t, err)
	require.Equal(t, 2, calls)
}

func TestRemote(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, err := Remote(&mockFaceSwapper{}).Render(context.Background(), nil, nil)
		require.Error(t, err)

		_, err = Remote(nil).Render(context.Background(), nil, nil)
		require.Error(t, err)
	})

	t.Run("enabled", func(t *testing.T) {
		api := &mockFaceSwapper{enabled: true, swapFn: func(ctx context.Context, u, d []byte) ([]byte, error) {
			require.Equal(t, []byte("u"), u)
			require.Equal(t, []byte("d"), d)
			return []byte("swapped"), nil
		}}
		out, err := Remote(api).Render(context.Background(), []byte("u"), []byte("d"))
		require.NoError(t, err)
		require.Equal(t, []byte("swapped"), out)
	})
}

func TestLocalChain_RealImages(t *testing.T) {
	f := staticFetcher(map[string][]byte{
		"user": jpegBytes(t, 400, 500),
		"dest": jpegBytes(t, 1024, 768),
	})

	v := New(f, Remote(&mockFaceSwapper{}), Postcard(), Badge())
	res, err := v.Visualize(context.Background(), "user", "dest")
	require.NoError(t, err)
	require.Equal(t, "postcard", res.Strategy)

	img, format, err := image.Decode(bytes.NewReader(res.Image))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 600, img.Bounds().Dy())
}

func TestLocalChain_UndecodableFallsThrough(t *testing.T) {
	f := staticFetcher(map[string][]byte{"user": []byte("not an image"), "dest": jpegBytes(t, 100, 100)})

	_, err := New(f, Postcard(), Badge()).Visualize(context.Background(), "user", "dest")
	require.ErrorIs(t, err, ErrAllFailed)
	require.ErrorIs(t, err, compositor.ErrDecode)
}
