package service

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

const (
	minPromptLen = 10
	maxPromptLen = 500
)

func validateVisualizationRequest(req *model.VisualizationRequest) error {
	req.UserPhotoURL = strings.TrimSpace(req.UserPhotoURL)
	req.DestinationID = strings.TrimSpace(req.DestinationID)

	if !strings.HasPrefix(req.UserPhotoURL, "http://") && !strings.HasPrefix(req.UserPhotoURL, "https://") {
		return model.ErrInvalidPhotoURL
	}
	if req.DestinationID == "" {
		return model.ErrEmptyDestinationID
	}
	return nil
}

// validateTextToImage returns the trimmed prompt
func validateTextToImage(req *model.TextToImageRequest) (string, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if n := utf8.RuneCountInString(prompt); n < minPromptLen || n > maxPromptLen {
		return "", model.ErrInvalidPrompt
	}

	req.Style = strings.TrimSpace(req.Style)
	if _, ok := model.Styles[req.Style]; req.Style != "" && !ok {
		return "", model.ErrInvalidStyle
	}
	return prompt, nil
}

func validatePreferences(req *model.RecommendationsRequest) error {
	switch {
	case !model.AgeGroups[req.AgeGroup]:
		return fmt.Errorf("%w: invalid age group", model.ErrInvalidPreferences)
	case !model.GroupSizes[req.GroupSize]:
		return fmt.Errorf("%w: invalid group size", model.ErrInvalidPreferences)
	case req.BudgetRange < model.MinBudget || req.BudgetRange > model.MaxBudget:
		return fmt.Errorf("%w: budget must be between $%d and $%d", model.ErrInvalidPreferences, model.MinBudget, model.MaxBudget)
	case !model.TripDurations[req.TripDuration]:
		return fmt.Errorf("%w: invalid trip duration", model.ErrInvalidPreferences)
	case len(req.Interests) == 0:
		return fmt.Errorf("%w: at least one interest must be selected", model.ErrInvalidPreferences)
	}

	for _, in := range req.Interests {
		if !model.Interests[in] {
			return fmt.Errorf("%w: invalid interest: %s", model.ErrInvalidPreferences, in)
		}
	}
	return nil
}

// validateBookingSearch fills the defaults: one economy passenger searching flights
func validateBookingSearch(req *model.BookingSearchRequest) error {
	req.FromLocation = strings.TrimSpace(req.FromLocation)
	req.ToLocation = strings.TrimSpace(req.ToLocation)
	req.DepartureDate = strings.TrimSpace(req.DepartureDate)
	req.ReturnDate = strings.TrimSpace(req.ReturnDate)
	req.ClassType = strings.ToLower(strings.TrimSpace(req.ClassType))
	req.SearchType = strings.ToLower(strings.TrimSpace(req.SearchType))

	if req.Passengers == 0 {
		req.Passengers = 1
	}
	if req.ClassType == "" {
		req.ClassType = "economy"
	}
	if req.SearchType == "" {
		req.SearchType = "flights"
	}

	switch {
	case req.Passengers < 1 || req.Passengers > model.MaxPassengers:
		return fmt.Errorf("%w: passengers must be between 1 and %d", model.ErrInvalidBookingQuery, model.MaxPassengers)
	case !model.ClassTypes[req.ClassType]:
		return fmt.Errorf("%w: invalid class type: %s", model.ErrInvalidBookingQuery, req.ClassType)
	case !model.SearchTypes[req.SearchType]:
		return fmt.Errorf("%w: invalid search type: %s", model.ErrInvalidBookingQuery, req.SearchType)
	}
	return nil
}

func extFor(contentType string) string {
	switch contentType {
	case model.PNG:
		return ".png"
	case model.WEBP:
		return ".webp"
	case model.GIF:
		return ".gif"
	default:
		return ".jpg"
	}
}

// sniffImageType reads the format from the image bytes, JPEG when it is not recognised
func sniffImageType(data []byte) string {
	switch ct := http.DetectContentType(data); ct {
	case model.JPEG, model.PNG, model.WEBP, model.GIF:
		return ct
	default:
		return model.JPEG
	}
}
