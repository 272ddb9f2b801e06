package llm

import (
	"fmt"
	"strings"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

const (
	DestinationsSystem    = "You are a travel expert. Generate realistic, exciting travel destinations with detailed information."
	RecommendationsSystem = "You are an expert travel consultant specializing in personalized travel recommendations. Provide detailed, realistic, and exciting travel suggestions tailored to specific user preferences."
)

func DestinationsPrompt(continent string, limit int) string {
	from := ""
	if continent != "" {
		from = " from " + continent
	}

	return fmt.Sprintf(`Generate %d diverse and exciting travel destinations from around the world%s. Include destinations from different countries and cultures.

For each destination provide a unique name, country, city, continent, a compelling 2-3 sentence description, a realistic rating (4.0-5.0), a price level ($, $$ or $$$), the best time to visit and 4 key highlights.

Format the answer as a valid JSON array of objects with exactly these fields:
id, name, country, city, continent, description, image_url, rating, price, bestTime, highlights (array of 4 strings).

Example:
[
  {
    "id": "uuid-here",
    "name": "Destination Name",
    "country": "Country",
    "city": "City",
    "continent": "Continent",
    "description": "Description here",
    "image_url": "https://images.unsplash.com/photo-1234567890?w=800&h=600&fit=crop",
    "rating": 4.5,
    "price": "$$",
    "bestTime": "Month-Month",
    "highlights": ["Highlight 1", "Highlight 2", "Highlight 3", "Highlight 4"]
  }
]
Return JSON only, with no trailing commas.`, limit, from)
}

func SuggestionsPrompt(query string) string {
	return fmt.Sprintf(`Given the user input %q, suggest 8 popular travel destinations (cities, countries, or regions) that match or are related to this query.

Return only a JSON array of strings with destination names in this exact format:
["Destination 1", "Destination 2", "Destination 3", ...]

Examples:
- For "par" -> ["Paris, France", "Barcelona, Spain", "Milan, Italy", "Bangkok, Thailand", "Mumbai, India", "Buenos Aires, Argentina", "Cairo, Egypt", "Osaka, Japan"]
- For "beach" -> ["Bali, Indonesia", "Maldives", "Hawaii, USA", "Santorini, Greece", "Phuket, Thailand", "Cancun, Mexico", "Fiji", "Seychelles"]

Focus on popular, well-known destinations that travelers would actually search for.`, query)
}

func RecommendationsPrompt(req *model.RecommendationsRequest) string {
	notes := ""
	if req.AdditionalNotes != "" {
		notes = " Additional notes: " + req.AdditionalNotes
	}

	return fmt.Sprintf(`Generate personalized travel recommendations for a %s age group traveling as %s with a budget of $%d for a %s trip. Their interests include: %s.%s

Provide 3-5 recommended destinations with descriptions, a custom itinerary for the trip duration, travel tips and a budget breakdown.

Format the response as a valid JSON object with this exact structure:
{
  "destinations": [{"name": "Destination Name", "country": "Country", "continent": "Continent", "description": "Detailed description", "rating": 4.5, "price": "$$"}],
  "itinerary": [{"title": "Day Title", "activities": ["Activity 1", "Activity 2", "Activity 3"]}],
  "travelTips": ["Tip 1", "Tip 2", "Tip 3"],
  "budgetBreakdown": {"accommodation": 1200, "transportation": 800, "food": 600, "activities": 400, "total": 3000}
}

Consider the age group, group size, budget, and interests when making suggestions.`,
		req.AgeGroup, req.GroupSize, req.BudgetRange, req.TripDuration, strings.Join(req.Interests, ", "), notes)
}

// bookingFields lists the keys each search type is asked to return
var bookingFields = map[string]string{
	"flights":    `id, airline, flightNumber ("XX1234"), from, to, departureTime ("HH:MM AM/PM"), departureDate ("YYYY-MM-DD"), duration ("Xh Ym"), price, aircraft, stops, class`,
	"hotels":     `id, name, location ("City, Country"), rating (4.0-5.0), price, amenities (array of strings), description, image, distance ("0.5 km from center")`,
	"activities": `id, name, location ("City, Country"), rating, price, duration ("3 hours"), description, image, category (Adventure, Culture, Food...)`,
	"packages":   `id, name, from, to, duration ("7 days"), price, description, inclusions (array of strings), image`,
}

func BookingsPrompt(req *model.BookingSearchRequest) string {
	var route string
	switch {
	case req.FromLocation != "" && req.ToLocation != "":
		route = fmt.Sprintf(" from %s to %s", req.FromLocation, req.ToLocation)
	case req.ToLocation != "":
		route = " in " + req.ToLocation
	case req.FromLocation != "":
		route = " from " + req.FromLocation
	}

	dates := ""
	if req.DepartureDate != "" {
		dates = " departing " + req.DepartureDate
		if req.ReturnDate != "" {
			dates += " and returning " + req.ReturnDate
		}
	}

	return fmt.Sprintf(`Generate 6 realistic %s options%s%s for %d passenger(s) in %s class.

Prices are in USD for the whole group. Return only a valid JSON array of objects with these fields:
%s.`, req.SearchType, route, dates, req.Passengers, req.ClassType, bookingFields[req.SearchType])
}
