package catalog

import (
	"strings"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

const MaxSuggestions = 8

// checked in order, first matching prefix wins
var prefixSuggestions = []struct {
	prefix string
	names  []string
}{
	{"par", []string{"Paris, France", "Barcelona, Spain", "Milan, Italy", "Bangkok, Thailand"}},
	{"tok", []string{"Tokyo, Japan", "Toronto, Canada", "Stockholm, Sweden", "Istanbul, Turkey"}},
	{"lon", []string{"London, UK", "Los Angeles, USA", "Lyon, France", "Lima, Peru"}},
	{"new", []string{"New York, USA", "New Delhi, India", "Newcastle, UK", "New Orleans, USA"}},
	{"san", []string{"San Francisco, USA", "Santorini, Greece", "Santiago, Chile", "San Diego, USA"}},
	{"dub", []string{"Dubai, UAE", "Dublin, Ireland", "Dubrovnik, Croatia", "Durban, South Africa"}},
	{"bea", []string{"Bali, Indonesia", "Barcelona, Spain", "Bangkok, Thailand", "Berlin, Germany"}},
	{"rom", []string{"Rome, Italy", "Roma, Italy", "Romania", "Romantic destinations"}},
	{"sea", []string{"Seattle, USA", "Seoul, South Korea", "Seville, Spain"}},
	{"chi", []string{"Chicago, USA", "China", "Chile", "Chiang Mai, Thailand"}},
}

var popular = []string{
	"Paris, France", "Tokyo, Japan", "New York, USA", "London, UK",
	"Barcelona, Spain", "Rome, Italy", "Bali, Indonesia", "Dubai, UAE",
	"Singapore", "Sydney, Australia", "Amsterdam, Netherlands", "Prague, Czech Republic",
}

// Suggestions matches query against the prefix table, then by substring against the popular list
func Suggestions(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	for _, p := range prefixSuggestions {
		if strings.HasPrefix(q, p.prefix) {
			return limit(append([]string(nil), p.names...))
		}
	}

	res := make([]string, 0, MaxSuggestions)
	for _, name := range popular {
		if strings.Contains(strings.ToLower(name), q) {
			res = append(res, name)
		}
	}
	return limit(res)
}

// Recommendations is the canned plan with the budget split 40/25/20/15
func Recommendations(budget int) model.Recommendations {
	return model.Recommendations{
		Destinations: []model.RecommendedDestination{
			{Name: "Bali, Indonesia", Country: "Indonesia", Continent: "Asia", Description: "Perfect for relaxation and cultural experiences with beautiful beaches and temples.", Rating: 4.5, Price: "$$"},
			{Name: "Barcelona, Spain", Country: "Spain", Continent: "Europe", Description: "Great for food, culture, and architecture with vibrant nightlife.", Rating: 4.3, Price: "$$"},
			{Name: "Costa Rica", Country: "Costa Rica", Continent: "North America", Description: "Ideal for adventure and nature with rainforests and beaches.", Rating: 4.4, Price: "$$"},
		},
		Itinerary: []model.ItineraryDay{
			{Title: "Day 1: Arrival and Exploration", Activities: []string{"Check into hotel", "Local market visit", "Welcome dinner"}},
			{Title: "Day 2: Cultural Immersion", Activities: []string{"Museum visit", "Local cooking class", "Evening entertainment"}},
			{Title: "Day 3: Adventure Day", Activities: []string{"Outdoor activity", "Scenic viewpoints", "Relaxation time"}},
		},
		TravelTips: []string{
			"Book accommodations in advance for better rates",
			"Pack according to the local climate",
			"Learn basic local phrases for better experience",
			"Keep copies of important documents",
		},
		BudgetBreakdown: &model.BudgetBreakdown{
			Accommodation:  budget * 40 / 100,
			Transportation: budget * 25 / 100,
			Food:           budget * 20 / 100,
			Activities:     budget * 15 / 100,
			Total:          budget,
		},
	}
}

func limit(s []string) []string {
	if len(s) > MaxSuggestions {
		return s[:MaxSuggestions]
	}
	return s
}
