package main

import (
	"context"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

type TravelAPIService interface {
	Health(ctx context.Context) model.Health
	UploadPhoto(ctx context.Context, up *model.PhotoUpload) (*model.PhotoUploadResult, error)
	ListDestinations(ctx context.Context, continent string, limit int) (*model.DestinationList, error)
	ListContinents(ctx context.Context) ([]model.Continent, error)
	GenerateVisualization(ctx context.Context, req *model.VisualizationRequest) (*model.VisualizationResult, error)
	ListVisualizations(ctx context.Context, limit int) (*model.VisualizationList, error)
	GenerateTextToImage(ctx context.Context, req *model.TextToImageRequest) (*model.TextToImageResult, error)
	DestinationSuggestions(ctx context.Context, query string) []string
	Recommendations(ctx context.Context, req *model.RecommendationsRequest) (*model.RecommendationsResult, error)
	SearchBookings(ctx context.Context, req *model.BookingSearchRequest) (*model.BookingSearchResult, error)
}
