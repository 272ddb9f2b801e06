package transport

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

type mockTravelService struct {
	healthFn                func(ctx context.Context) model.Health
	uploadPhotoFn           func(ctx context.Context, up *model.PhotoUpload) (*model.PhotoUploadResult, error)
	listDestinationsFn      func(ctx context.Context, continent string, limit int) (*model.DestinationList, error)
	listContinentsFn        func(ctx context.Context) ([]model.Continent, error)
	generateVisualizationFn func(ctx context.Context, req *model.VisualizationRequest) (*model.VisualizationResult, error)
	listVisualizationsFn    func(ctx context.Context, limit int) (*model.VisualizationList, error)
	textToImageFn           func(ctx context.Context, req *model.TextToImageRequest) (*model.TextToImageResult, error)
	suggestionsFn           func(ctx context.Context, query string) []string
	recommendationsFn       func(ctx context.Context, req *model.RecommendationsRequest) (*model.RecommendationsResult, error)
	searchBookingsFn        func(ctx context.Context, req *model.BookingSearchRequest) (*model.BookingSearchResult, error)
}

func (m *mockTravelService) Health(ctx context.Context) model.Health {
	return m.healthFn(ctx)
}

func (m *mockTravelService) UploadPhoto(ctx context.Context, up *model.PhotoUpload) (*model.PhotoUploadResult, error) {
	return m.uploadPhotoFn(ctx, up)
}

func (m *mockTravelService) ListDestinations(ctx context.Context, continent string, limit int) (*model.DestinationList, error) {
	return m.listDestinationsFn(ctx, continent, limit)
}

func (m *mockTravelService) ListContinents(ctx context.Context) ([]model.Continent, error) {
	return m.listContinentsFn(ctx)
}

func (m *mockTravelService) GenerateVisualization(ctx context.Context, req *model.VisualizationRequest) (*model.VisualizationResult, error) {
	return m.generateVisualizationFn(ctx, req)
}

func (m *mockTravelService) ListVisualizations(ctx context.Context, limit int) (*model.VisualizationList, error) {
	return m.listVisualizationsFn(ctx, limit)
}

func (m *mockTravelService) GenerateTextToImage(ctx context.Context, req *model.TextToImageRequest) (*model.TextToImageResult, error) {
	return m.textToImageFn(ctx, req)
}

func (m *mockTravelService) DestinationSuggestions(ctx context.Context, query string) []string {
	return m.suggestionsFn(ctx, query)
}

func (m *mockTravelService) Recommendations(ctx context.Context, req *model.RecommendationsRequest) (*model.RecommendationsResult, error) {
	return m.recommendationsFn(ctx, req)
}

func (m *mockTravelService) SearchBookings(ctx context.Context, req *model.BookingSearchRequest) (*model.BookingSearchResult, error) {
	return m.searchBookingsFn(ctx, req)
}

func init() {
	gin.SetMode(gin.TestMode)
}
