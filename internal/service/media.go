package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jhanaviii/AI-Travel-Agent/internal/imageproc"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
)

func (s *TravelService) UploadPhoto(ctx context.Context, up *model.PhotoUpload) (*model.PhotoUploadResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if up == nil || up.File == nil {
		return nil, model.ErrInvalidImage
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, model.ErrNotAnImage
	}
	if up.Size > model.MaxUploadSize {
		return nil, model.ErrFileTooLarge
	}

	// размер из заголовка может врать
	raw, err := io.ReadAll(io.LimitReader(up.File, model.MaxUploadSize+1))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read uploaded file")
		return nil, model.ErrInvalidImage
	}
	if len(raw) > model.MaxUploadSize {
		return nil, model.ErrFileTooLarge
	}

	optimized, size, err := imageproc.Optimize(bytes.NewReader(raw), imageproc.MaxWidth, imageproc.MaxHeight, imageproc.Quality)
	if err != nil {
		return nil, model.ErrInvalidImage
	}

	filename := "user_" + uuid.NewString() + ".jpg"
	res := &model.PhotoUploadResult{
		Success:    true,
		Filename:   filename,
		Size:       int(size),
		UploadedAt: s.now(),
	}

	if s.photos != nil {
		err = s.photos.Put(ctx, filename, size, model.JPEG, optimized)
		if err == nil {
			res.PhotoURL = s.photos.PublicURL(filename)
			res.Storage = "minio"
			return res, nil
		}
		logger.Error().Err(err).Msg("Failed to save user photo in Storage")
	}

	if s.placeholderPhoto != "" {
		res.PhotoURL = s.placeholderPhoto
		res.Storage = "mock"
		return res, nil
	}
	return nil, model.ErrCommon500
}

func (s *TravelService) GenerateTextToImage(ctx context.Context, req *model.TextToImageRequest) (*model.TextToImageResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	prompt, err := validateTextToImage(req)
	if err != nil {
		return nil, err
	}

	styled := prompt
	if req.Style != "" {
		styled += " " + model.Styles[req.Style]
	}

	// Imagen
	if s.images != nil {
		img, mime, err := s.images.GenerateImage(ctx, styled)
		if err == nil {
			return s.textToImageResult(s.storeResult(ctx, img, mime), "imagen", ""), nil
		}
		logger.Warn().Err(err).Msg("Imagen generation failed, trying text2img API")
	}

	// внешний API
	if s.text2img != nil && s.text2img.TextToImageEnabled() {
		imageType := req.Style
		if imageType == "" {
			imageType = "photo"
		}
		url, err := s.text2img.TextToImage(ctx, prompt, imageType)
		if err == nil {
			return s.textToImageResult(url, "deepai", ""), nil
		}
		logger.Warn().Err(err).Msg("text2img API failed")
	}

	if s.placeholderImage != "" {
		return s.textToImageResult(s.placeholderImage, "placeholder", "Using placeholder image due to API issues"), nil
	}

	return nil, fmt.Errorf("%w: no image provider available", model.ErrImageGeneration)
}

func (s *TravelService) textToImageResult(url, provider, note string) *model.TextToImageResult {
	return &model.TextToImageResult{
		Success:     true,
		ImageURL:    url,
		Provider:    provider,
		Note:        note,
		GeneratedAt: s.now(),
	}
}
