// Package transport provides methods for processing requests from endpoints
package transport

import (
	"context"
	"strconv"
	"time"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/wb-go/wbf/ginext"
)

const (
	appMessage = "AI Travel App API v1.0"
	appVersion = "1.0.0"
)

type TravelHandler struct {
	service TravelService
}

type TravelService interface {
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

func NewTravelHandler(svc TravelService) *TravelHandler {
	return &TravelHandler{
		service: svc,
	}
}

func (h TravelHandler) SimplePinger(ctx *ginext.Context) {
	ctx.JSON(200, map[string]string{"message": "pong"})
}

func (h TravelHandler) Root(ctx *ginext.Context) {
	ctx.JSON(200, map[string]any{
		"message":   appMessage,
		"status":    "running",
		"timestamp": time.Now().UTC(),
		"version":   appVersion,
	})
}

func (h TravelHandler) Health(ctx *ginext.Context) {
	ctx.JSON(200, h.service.Health(ctx.Request.Context()))
}

func (h TravelHandler) UploadPhoto(ctx *ginext.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		writeError(ctx, 400, "file is required")
		return
	}
	defer closeFileFlow(file)

	res, err := h.service.UploadPhoto(ctx.Request.Context(), &model.PhotoUpload{
		File:        file,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) ListDestinations(ctx *ginext.Context) {
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}

	res, err := h.service.ListDestinations(ctx.Request.Context(), ctx.Query("continent"), limit)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) ListContinents(ctx *ginext.Context) {
	res, err := h.service.ListContinents(ctx.Request.Context())
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, map[string]any{"success": true, "data": res})
}

func (h TravelHandler) GenerateVisualization(ctx *ginext.Context) {
	var req model.VisualizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, 400, "failed to parse request body")
		return
	}

	res, err := h.service.GenerateVisualization(ctx.Request.Context(), &req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) ListVisualizations(ctx *ginext.Context) {
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}

	res, err := h.service.ListVisualizations(ctx.Request.Context(), limit)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) TextToImage(ctx *ginext.Context) {
	var req model.TextToImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, 400, "failed to parse request body")
		return
	}

	res, err := h.service.GenerateTextToImage(ctx.Request.Context(), &req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) Suggestions(ctx *ginext.Context) {
	res := h.service.DestinationSuggestions(ctx.Request.Context(), ctx.Query("query"))
	ctx.JSON(200, map[string][]string{"suggestions": res})
}

func (h TravelHandler) Recommendations(ctx *ginext.Context) {
	var req model.RecommendationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, 400, "failed to parse request body")
		return
	}

	res, err := h.service.Recommendations(ctx.Request.Context(), &req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

func (h TravelHandler) SearchBookings(ctx *ginext.Context) {
	var req model.BookingSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, 400, "failed to parse request body")
		return
	}

	res, err := h.service.SearchBookings(ctx.Request.Context(), &req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(200, res)
}

// queryLimit returns 0 when the parameter is absent so the service picks its default
func queryLimit(ctx *ginext.Context) (int, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit == 0 {
		writeError(ctx, 400, model.ErrIncorrectQuery.Error())
		return 0, false
	}
	return limit, true
}
