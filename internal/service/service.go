// Package service provides business-logic for the app
package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhanaviii/AI-Travel-Agent/internal/catalog"
	"github.com/jhanaviii/AI-Travel-Agent/internal/llm"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
	"github.com/jhanaviii/AI-Travel-Agent/internal/repository"
	"github.com/jhanaviii/AI-Travel-Agent/internal/visualizer"
)

// ImageStorage - контракт для работы с хранилищем
type ImageStorage interface {
	Put(ctx context.Context, key string, size int64, contentType string, r io.Reader) error
	PublicURL(key string) string
	Ping(ctx context.Context) error
}

// TextGenerator - языковая модель
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string, maxTokens int32) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// TextToImageAPI - внешний text2img сервис
type TextToImageAPI interface {
	TextToImageEnabled() bool
	TextToImage(ctx context.Context, prompt, imageType string) (string, error)
}

type Visualizer interface {
	Visualize(ctx context.Context, userPhotoURL, destImageURL string) (*visualizer.Result, error)
}

// Deps - every field is optional, a nil collaborator switches its strategy off
type Deps struct {
	Repo             repository.DestinationRepo
	Photos           ImageStorage
	Results          ImageStorage
	Text             TextGenerator
	Images           ImageGenerator
	TextToImage      TextToImageAPI
	Visualizer       Visualizer
	FaceSwapEnabled  bool
	PlaceholderImage string
	PlaceholderPhoto string
}

type TravelService struct {
	repo             repository.DestinationRepo
	photos           ImageStorage
	results          ImageStorage
	text             TextGenerator
	images           ImageGenerator
	text2img         TextToImageAPI
	viz              Visualizer
	faceSwap         bool
	placeholderImage string
	placeholderPhoto string
	now              func() time.Time
}

func NewTravelService(d Deps) *TravelService {
	return &TravelService{
		repo:             d.Repo,
		photos:           d.Photos,
		results:          d.Results,
		text:             d.Text,
		images:           d.Images,
		text2img:         d.TextToImage,
		viz:              d.Visualizer,
		faceSwap:         d.FaceSwapEnabled,
		placeholderImage: d.PlaceholderImage,
		placeholderPhoto: d.PlaceholderPhoto,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

const (
	defaultDestinationsLimit   = 50
	defaultVisualizationsLimit = 20
	maxListLimit               = 100
	maxGeneratedDestinations   = 12
)

func (s *TravelService) Health(ctx context.Context) model.Health {
	services := map[string]bool{
		"database":  s.repo != nil && s.repo.Ping(ctx) == nil,
		"storage":   s.photos != nil && s.photos.Ping(ctx) == nil,
		"llm":       s.text != nil,
		"face_swap": s.faceSwap,
	}

	status := "healthy"
	if !services["database"] {
		status = "degraded"
	}

	return model.Health{Status: status, Timestamp: s.now(), Services: services}
}

func (s *TravelService) ListDestinations(ctx context.Context, continent string, limit int) (*model.DestinationList, error) {
	logger := mwlogger.LoggerFromContext(ctx)
	continent = strings.TrimSpace(continent)
	if limit == 0 {
		limit = defaultDestinationsLimit
	}
	if limit < 1 || limit > maxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", model.ErrIncorrectQuery, maxListLimit)
	}

	list := &model.DestinationList{Success: true, Limit: limit}
	if continent != "" {
		list.Continent = &continent
	}

	// база
	if s.repo != nil {
		res, err := s.repo.ListDestinations(ctx, continent, limit)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("Failed to fetch destinations from DB, trying LLM")
		case len(res) > 0:
			for i := range res {
				catalog.ApplyDefaults(&res[i])
			}
			return fillList(list, res, model.SourceDatabase), nil
		}
	}

	// модель
	if s.text != nil {
		n := min(limit, maxGeneratedDestinations)
		res, err := s.generateDestinations(ctx, continent, n)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to generate destinations with LLM, using built-in data")
		} else {
			return fillList(list, res, model.SourceLLM), nil
		}
	}

	// встроенные данные
	return fillList(list, catalog.Destinations(continent, limit), model.SourceMock), nil
}

func (s *TravelService) generateDestinations(ctx context.Context, continent string, n int) ([]model.Destination, error) {
	text, err := s.text.GenerateText(ctx, llm.DestinationsSystem, llm.DestinationsPrompt(continent, n), 2000)
	if err != nil {
		return nil, err
	}

	res, err := llm.ParseDestinations(text)
	if err != nil {
		return nil, err
	}
	if len(res) > n {
		res = res[:n]
	}
	for i := range res {
		if res[i].ID == "" {
			res[i].ID = uuid.NewString()
		}
		catalog.ApplyDefaults(&res[i])
	}
	return res, nil
}

func fillList(list *model.DestinationList, data []model.Destination, src model.Source) *model.DestinationList {
	list.Data = data
	list.Count = len(data)
	list.Source = src
	return list
}

func (s *TravelService) ListContinents(ctx context.Context) ([]model.Continent, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if s.repo != nil {
		res, err := s.repo.ListContinents(ctx)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("Failed to fetch continents from DB, using built-in data")
		case len(res) > 0:
			return res, nil
		}
	}

	return catalog.Continents(), nil
}

func (s *TravelService) GenerateVisualization(ctx context.Context, req *model.VisualizationRequest) (*model.VisualizationResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if err := validateVisualizationRequest(req); err != nil {
		return nil, err
	}

	dest, err := s.findDestination(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}

	res := &model.VisualizationResult{
		Success:     true,
		Destination: dest.Summary(),
	}

	var out *visualizer.Result
	if s.viz != nil {
		out, err = s.viz.Visualize(ctx, req.UserPhotoURL, dest.ImageURL)
	} else {
		err = errors.New("visualizer is not configured")
	}

	switch {
	case err == nil:
		res.Strategy = out.Strategy
		res.VisualizationURL = s.storeResult(ctx, out.Image, sniffImageType(out.Image))
	case s.placeholderImage != "":
		logger.Error().Err(err).Msg("All visualization strategies failed, answering with placeholder")
		res.Strategy = "placeholder"
		res.VisualizationURL = s.placeholderImage
	default:
		logger.Error().Err(err).Msg("All visualization strategies failed")
		return nil, model.ErrVisualizationFailed
	}

	res.GeneratedAt = s.now()

	// запись в историю не критична
	if s.repo != nil {
		rec := &model.Visualization{
			ID:                uuid.New(),
			DestinationID:     dest.ID,
			UserPhotoURL:      req.UserPhotoURL,
			GeneratedImageURL: res.VisualizationURL,
			Strategy:          res.Strategy,
			CreatedAt:         &res.GeneratedAt,
		}
		if err := s.repo.CreateVisualization(ctx, rec); err != nil {
			logger.Warn().Err(err).Msg("Failed to save visualization record")
		}
	}

	logger.Info().Str("strategy", res.Strategy).Str("destination", dest.Name).Msg("Visualization generated")
	return res, nil
}

func (s *TravelService) findDestination(ctx context.Context, id string) (*model.Destination, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if s.repo != nil {
		d, err := s.repo.GetDestination(ctx, id)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, model.ErrDestinationNotFound) {
			logger.Warn().Err(err).Msg(fmt.Sprintf("Failed to fetch destination %q from DB", id))
		}
	}

	if d, ok := catalog.Destination(id); ok {
		return &d, nil
	}
	return nil, model.ErrDestinationNotFound
}

// storeResult returns a public URL, or an inline data URL when the results bucket is unavailable
func (s *TravelService) storeResult(ctx context.Context, data []byte, contentType string) string {
	logger := mwlogger.LoggerFromContext(ctx)

	if s.results != nil {
		key := "generated_" + strings.ReplaceAll(uuid.NewString(), "-", "") + extFor(contentType)
		err := s.results.Put(ctx, key, int64(len(data)), contentType, bytes.NewReader(data))
		if err == nil {
			return s.results.PublicURL(key)
		}
		logger.Error().Err(err).Msg("Failed to save generated image in Storage, inlining it")
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (s *TravelService) ListVisualizations(ctx context.Context, limit int) (*model.VisualizationList, error) {
	logger := mwlogger.LoggerFromContext(ctx)
	if limit == 0 {
		limit = defaultVisualizationsLimit
	}
	if limit < 1 || limit > maxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", model.ErrIncorrectQuery, maxListLimit)
	}

	if s.repo != nil {
		res, err := s.repo.ListVisualizations(ctx, limit)
		if err == nil {
			return &model.VisualizationList{Success: true, Data: res, Count: len(res), Limit: limit, Source: model.SourceDatabase}, nil
		}
		logger.Warn().Err(err).Msg("Failed to fetch visualizations from DB, using built-in data")
	}

	res := catalog.Visualizations()
	if len(res) > limit {
		res = res[:limit]
	}
	return &model.VisualizationList{Success: true, Data: res, Count: len(res), Limit: limit, Source: model.SourceMock}, nil
}
