// Package catalog holds the built-in travel data served when the database and the model are unavailable
package catalog

import (
	"strings"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

var defaultHighlights = []string{"Local Attractions", "Cultural Sites", "Natural Beauty", "Local Cuisine"}

var destinations = []model.Destination{
	{
		ID:          "550e8400-e29b-41d4-a716-446655440001",
		Name:        "Santorini, Greece",
		Country:     "Greece",
		City:        "Santorini",
		Continent:   "Europe",
		Description: "Famous for its stunning sunsets, white-washed buildings, and crystal-clear waters. Perfect for romantic getaways and photography enthusiasts.",
		ImageURL:    "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800&h=600&fit=crop",
		Rating:      4.8,
		Price:       "$$$",
		BestTime:    "May-October",
		Highlights:  model.StringSlice{"Oia Sunset", "Blue Domes", "Wine Tasting", "Beach Hopping"},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440002",
		Name:        "Kyoto, Japan",
		Country:     "Japan",
		City:        "Kyoto",
		Continent:   "Asia",
		Description: "Ancient capital with traditional temples, beautiful gardens, and cherry blossoms. A perfect blend of history and natural beauty.",
		ImageURL:    "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=800&h=600&fit=crop",
		Rating:      4.7,
		Price:       "$$",
		BestTime:    "March-May, October-November",
		Highlights:  model.StringSlice{"Cherry Blossoms", "Temples", "Tea Ceremony", "Bamboo Forest"},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440003",
		Name:        "Banff National Park",
		Country:     "Canada",
		City:        "Banff",
		Continent:   "North America",
		Description: "Stunning mountain landscapes, turquoise lakes, and abundant wildlife. A paradise for nature lovers and outdoor enthusiasts.",
		ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Rating:      4.9,
		Price:       "$$",
		BestTime:    "June-September",
		Highlights:  model.StringSlice{"Lake Louise", "Hiking", "Wildlife", "Hot Springs"},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440004",
		Name:        "Machu Picchu",
		Country:     "Peru",
		City:        "Cusco",
		Continent:   "South America",
		Description: "Ancient Incan citadel set high in the Andes Mountains. One of the most impressive archaeological sites in the world.",
		ImageURL:    "https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=800&h=600&fit=crop",
		Rating:      4.8,
		Price:       "$$",
		BestTime:    "April-October",
		Highlights:  model.StringSlice{"Inca Trail", "Sun Gate", "Temple of the Sun", "Huayna Picchu"},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440005",
		Name:        "Safari in Serengeti",
		Country:     "Tanzania",
		City:        "Serengeti",
		Continent:   "Africa",
		Description: "Experience the wild beauty of Africa with incredible wildlife viewing, including the Great Migration.",
		ImageURL:    "https://images.unsplash.com/photo-1549366021-9f761d450615?w=800&h=600&fit=crop",
		Rating:      4.9,
		Price:       "$$$",
		BestTime:    "June-October",
		Highlights:  model.StringSlice{"Wildlife Safari", "Great Migration", "Lion Spotting", "Sunset Drives"},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440006",
		Name:        "Sydney Opera House",
		Country:     "Australia",
		City:        "Sydney",
		Continent:   "Oceania",
		Description: "Iconic performing arts center with stunning harbor views. A masterpiece of modern architecture.",
		ImageURL:    "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800&h=600&fit=crop",
		Rating:      4.6,
		Price:       "$$",
		BestTime:    "September-May",
		Highlights:  model.StringSlice{"Opera Performances", "Harbor Bridge", "Bondi Beach", "Royal Botanic Garden"},
	},
}

var visualizations = []model.CannedVisualization{
	{
		ID:              "550e8400-e29b-41d4-a716-446655440007",
		Title:           "Santorini Sunset Analysis",
		Location:        "Oia, Greece",
		Date:            "2024-01-15",
		Image:           "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=400&h=300&fit=crop",
		Type:            "sunset",
		Confidence:      0.95,
		Recommendations: []string{"Best viewing spots", "Optimal timing", "Photography tips"},
	},
	{
		ID:              "550e8400-e29b-41d4-a716-446655440008",
		Title:           "Kyoto Temple Architecture",
		Location:        "Kyoto, Japan",
		Date:            "2024-01-10",
		Image:           "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=400&h=300&fit=crop",
		Type:            "architecture",
		Confidence:      0.92,
		Recommendations: []string{"Historical significance", "Cultural context", "Visit timing"},
	},
}

// Destinations filters by continent (case-insensitive, empty means all) and truncates to limit
func Destinations(continent string, limit int) []model.Destination {
	res := make([]model.Destination, 0, len(destinations))
	for _, d := range destinations {
		if continent != "" && !strings.EqualFold(d.Continent, continent) {
			continue
		}
		res = append(res, clone(d))
	}
	if limit >= 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

func Destination(id string) (model.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return clone(d), true
		}
	}
	return model.Destination{}, false
}

// Continents counts the built-in destinations per continent, sorted by name
func Continents() []model.Continent {
	return []model.Continent{
		{Name: "Africa", Count: 1},
		{Name: "Asia", Count: 1},
		{Name: "Europe", Count: 1},
		{Name: "North America", Count: 1},
		{Name: "Oceania", Count: 1},
		{Name: "South America", Count: 1},
	}
}

func Visualizations() []model.CannedVisualization {
	res := make([]model.CannedVisualization, len(visualizations))
	copy(res, visualizations)
	return res
}

// ApplyDefaults fills the optional fields a stored or generated destination may lack
func ApplyDefaults(d *model.Destination) {
	if d.Rating == 0 {
		d.Rating = 4.5
	}
	if d.Price == "" {
		d.Price = "$$"
	}
	if d.BestTime == "" {
		d.BestTime = "Year-round"
	}
	if len(d.Highlights) == 0 {
		d.Highlights = append(model.StringSlice(nil), defaultHighlights...)
	}
}

func clone(d model.Destination) model.Destination {
	d.Highlights = append(model.StringSlice(nil), d.Highlights...)
	return d
}
