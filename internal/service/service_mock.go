package service

import (
	"bytes"
	"context"
	"io"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/visualizer"
)

// MOCK RESPOSITORY

type mockRepo struct {
	listDestinationsFn    func(ctx context.Context, continent string, limit int) ([]model.Destination, error)
	getDestinationFn      func(ctx context.Context, id string) (*model.Destination, error)
	listContinentsFn      func(ctx context.Context) ([]model.Continent, error)
	createVisualizationFn func(ctx context.Context, v *model.Visualization) error
	listVisualizationsFn  func(ctx context.Context, limit int) ([]model.Visualization, error)
	pingFn                func(ctx context.Context) error
}

func (m *mockRepo) ListDestinations(ctx context.Context, continent string, limit int) ([]model.Destination, error) {
	return m.listDestinationsFn(ctx, continent, limit)
}

func (m *mockRepo) GetDestination(ctx context.Context, id string) (*model.Destination, error) {
	return m.getDestinationFn(ctx, id)
}

func (m *mockRepo) ListContinents(ctx context.Context) ([]model.Continent, error) {
	return m.listContinentsFn(ctx)
}

func (m *mockRepo) CreateVisualization(ctx context.Context, v *model.Visualization) error {
	return m.createVisualizationFn(ctx, v)
}

func (m *mockRepo) ListVisualizations(ctx context.Context, limit int) ([]model.Visualization, error) {
	return m.listVisualizationsFn(ctx, limit)
}

func (m *mockRepo) Ping(ctx context.Context) error {
	return m.pingFn(ctx)
}

// MOCK STORAGE

type mockStorage struct {
	putFn  func(ctx context.Context, key string, size int64, ct string, r io.Reader) error
	pingFn func(ctx context.Context) error
}

func (m *mockStorage) Put(ctx context.Context, key string, size int64, ct string, r io.Reader) error {
	return m.putFn(ctx, key, size, ct, r)
}

func (m *mockStorage) PublicURL(key string) string {
	return "http://storage.test/bucket/" + key
}

func (m *mockStorage) Ping(ctx context.Context) error {
	return m.pingFn(ctx)
}

// MOCK MODELS

type mockText struct {
	generateFn func(ctx context.Context, system, prompt string, maxTokens int32) (string, error)
}

func (m *mockText) GenerateText(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
	return m.generateFn(ctx, system, prompt, maxTokens)
}

type mockImages struct {
	generateFn func(ctx context.Context, prompt string) ([]byte, string, error)
}

func (m *mockImages) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	return m.generateFn(ctx, prompt)
}

type mockText2Img struct {
	enabled bool
	callFn  func(ctx context.Context, prompt, imageType string) (string, error)
}

func (m *mockText2Img) TextToImageEnabled() bool { return m.enabled }

func (m *mockText2Img) TextToImage(ctx context.Context, prompt, imageType string) (string, error) {
	return m.callFn(ctx, prompt, imageType)
}

// MOCK VISUALIZER

type mockVisualizer struct {
	visualizeFn func(ctx context.Context, userURL, destURL string) (*visualizer.Result, error)
}

func (m *mockVisualizer) Visualize(ctx context.Context, userURL, destURL string) (*visualizer.Result, error) {
	return m.visualizeFn(ctx, userURL, destURL)
}

// MOCK для multipart.File
type fakeMultipartFile struct {
	*bytes.Reader
}

func (f *fakeMultipartFile) Close() error {
	return nil
}
