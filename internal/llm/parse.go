package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

var ErrIncomplete = errors.New("model output is missing required keys")

// ParseDestinations reads a JSON array of destinations out of free text.
// When the array itself is malformed the flat objects carrying a "name" are salvaged one by one.
func ParseDestinations(text string) ([]model.Destination, error) {
	var res []model.Destination
	if err := DecodeArray(text, &res); err == nil && len(res) > 0 {
		return res, nil
	}

	res = SalvageNamed[model.Destination](text)
	if len(res) == 0 {
		return nil, ErrNoJSON
	}
	return res, nil
}

// ParseSuggestions keeps at most max non-empty names
func ParseSuggestions(text string, max int) ([]string, error) {
	var raw []string
	if err := DecodeArray(text, &raw); err != nil {
		return nil, err
	}

	res := make([]string, 0, max)
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		res = append(res, s)
		if len(res) == max {
			break
		}
	}
	return res, nil
}

// ParseRecommendations requires all four top-level keys to be present
func ParseRecommendations(text string) (*model.Recommendations, error) {
	var keys map[string]any
	if err := DecodeObject(text, &keys); err != nil {
		return nil, err
	}
	for _, k := range []string{"destinations", "itinerary", "travelTips", "budgetBreakdown"} {
		if _, ok := keys[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncomplete, k)
		}
	}

	var rec model.Recommendations
	if err := DecodeObject(text, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ParseBookings keeps the non-empty objects of a JSON array, at most max of them
func ParseBookings(text string, max int) ([]model.BookingOption, error) {
	var raw []model.BookingOption
	if err := DecodeArray(text, &raw); err != nil {
		return nil, err
	}

	res := make([]model.BookingOption, 0, len(raw))
	for _, opt := range raw {
		if len(opt) == 0 {
			continue
		}
		res = append(res, opt)
		if len(res) == max {
			break
		}
	}
	if len(res) == 0 {
		return nil, ErrNoJSON
	}
	return res, nil
}
