package visualizer

import "context"

type mockFetcher struct {
	fetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return m.fetchFn(ctx, url)
}

type mockStrategy struct {
	name     string
	renderFn func(ctx context.Context, u, d []byte) ([]byte, error)
	calls    int
}

func (m *mockStrategy) Name() string { return m.name }

func (m *mockStrategy) Render(ctx context.Context, u, d []byte) ([]byte, error) {
	m.calls++
	return m.renderFn(ctx, u, d)
}

type mockFaceSwapper struct {
	enabled bool
	swapFn  func(ctx context.Context, u, d []byte) ([]byte, error)
}

func (m *mockFaceSwapper) FaceSwapEnabled() bool { return m.enabled }

func (m *mockFaceSwapper) FaceSwap(ctx context.Context, u, d []byte) ([]byte, error) {
	return m.swapFn(ctx, u, d)
}
