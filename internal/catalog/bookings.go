package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
)

// MaxBookings is the size of every booking search answer
const MaxBookings = 6

var (
	airlines = []string{"Delta", "United", "American", "Emirates", "Lufthansa", "British Airways", "Air France", "KLM", "Singapore Airlines", "Qatar Airways"}
	aircraft = []string{"Boeing 737", "Airbus A320", "Boeing 787", "Airbus A350", "Boeing 777", "Airbus A380"}

	hotelChains    = []string{"Marriott", "Hilton", "Hyatt", "InterContinental", "Four Seasons", "Ritz-Carlton", "W Hotels", "Sheraton", "Westin", "Renaissance"}
	hotelAmenities = [][]string{
		{"WiFi", "Pool", "Spa"},
		{"WiFi", "Gym", "Restaurant"},
		{"WiFi", "Pool", "Gym", "Spa"},
		{"WiFi", "Restaurant", "Bar"},
		{"WiFi", "Pool", "Gym", "Restaurant", "Spa"},
	}

	activityNames      = []string{"City Tour", "Museum Visit", "Adventure Hike", "Cooking Class", "Wine Tasting", "Boat Cruise", "Photography Tour", "Historical Walk", "Food Tour", "Spa Treatment"}
	activityCategories = []string{"Culture", "Adventure", "Food", "Nature", "Wellness", "History"}

	packageTypes      = []string{"All-Inclusive Beach", "City Break", "Adventure Tour", "Cultural Experience", "Luxury Escape", "Family Fun"}
	packageInclusions = []string{"Flight", "Hotel", "Transfers", "Some Meals", "Guided Tours"}
)

var classMultiplier = map[string]float64{"economy": 1, "premium": 1.5, "business": 2.5, "first": 4}

// Bookings builds the canned options for req.SearchType.
// departure is used as the flight date when the request carries none.
func Bookings(req *model.BookingSearchRequest, departure time.Time) []model.BookingOption {
	passengers := max(req.Passengers, 1)
	res := make([]model.BookingOption, 0, MaxBookings)

	for i := range MaxBookings {
		switch req.SearchType {
		case "hotels":
			res = append(res, hotel(i, req.ToLocation, passengers))
		case "activities":
			res = append(res, activity(i, req.ToLocation, passengers))
		case "packages":
			res = append(res, travelPackage(i, req.FromLocation, req.ToLocation, passengers))
		default:
			date := req.DepartureDate
			if date == "" {
				date = departure.Format(time.DateOnly)
			}
			res = append(res, flight(i, req, date, passengers))
		}
	}
	return res
}

func flight(i int, req *model.BookingSearchRequest, date string, passengers int) model.BookingOption {
	class := req.ClassType
	mult, ok := classMultiplier[class]
	if !ok {
		class, mult = "economy", 1
	}

	airline := airlines[i%len(airlines)]
	hour := 8 + (i*2)%12
	minute := 30 + (i*15)%30
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	}

	return model.BookingOption{
		"id":            fmt.Sprintf("flight_%d", i+1),
		"airline":       airline,
		"flightNumber":  fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 1000+i),
		"from":          valueOr(req.FromLocation, "New York"),
		"to":            valueOr(req.ToLocation, "London"),
		"departureTime": fmt.Sprintf("%d:%02d %s", hour, minute, period),
		"departureDate": date,
		"duration":      fmt.Sprintf("%dh %dm", 2+i%4, (i*15)%60),
		"price":         int(float64(200+i*50) * mult * float64(passengers)),
		"aircraft":      aircraft[i%len(aircraft)],
		"stops":         i % 2,
		"class":         class,
	}
}

func hotel(i int, to string, passengers int) model.BookingOption {
	chain := hotelChains[i%len(hotelChains)]
	return model.BookingOption{
		"id":          fmt.Sprintf("hotel_%d", i+1),
		"name":        chain + " " + valueOr(to, "Grand Hotel"),
		"location":    valueOr(to, "New York, USA"),
		"rating":      bookingRating(i),
		"price":       (150 + i*75) * passengers,
		"amenities":   append([]string(nil), hotelAmenities[i%len(hotelAmenities)]...),
		"description": fmt.Sprintf("Luxurious %s property in the heart of %s", chain, valueOr(to, "the city")),
		"image":       bookingImage(1550000000, i),
		"distance":    fmt.Sprintf("%.1f km from center", 0.5+float64(i)*0.3),
	}
}

func activity(i int, to string, passengers int) model.BookingOption {
	name := activityNames[i%len(activityNames)]
	return model.BookingOption{
		"id":          fmt.Sprintf("activity_%d", i+1),
		"name":        name,
		"location":    valueOr(to, "New York, USA"),
		"rating":      bookingRating(i),
		"price":       (50 + i*25) * passengers,
		"duration":    fmt.Sprintf("%d hours", 2+i%4),
		"description": fmt.Sprintf("Experience the best %s in %s", strings.ToLower(name), valueOr(to, "the city")),
		"image":       bookingImage(1560000000, i),
		"category":    activityCategories[i%len(activityCategories)],
	}
}

func travelPackage(i int, from, to string, passengers int) model.BookingOption {
	kind := packageTypes[i%len(packageTypes)]
	from, to = valueOr(from, "New York"), valueOr(to, "Paris")
	return model.BookingOption{
		"id":          fmt.Sprintf("package_%d", i+1),
		"name":        kind + " Package",
		"from":        from,
		"to":          to,
		"duration":    fmt.Sprintf("%d days", 5+i%7),
		"price":       (800 + i*200) * passengers,
		"description": fmt.Sprintf("Complete %s experience from %s to %s", strings.ToLower(kind), from, to),
		"inclusions":  append([]string(nil), packageInclusions...),
		"image":       bookingImage(1570000000, i),
	}
}

func bookingRating(i int) float64 {
	return math.Round((4.0+float64(i)*0.1)*10) / 10
}

func bookingImage(base, i int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=300&fit=crop", base+i*100000)
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
