// Package model provides data-structs for internal app-usage
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// Source tells the caller which strategy produced a list
type Source string

const (
	SourceDatabase Source = "database"
	SourceLLM      Source = "llm"
	SourceMock     Source = "mock"
)

//---------------------

type Destination struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	Continent   string      `json:"continent"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	Rating      float64     `json:"rating"`
	Price       string      `json:"price"`
	BestTime    string      `json:"bestTime"`
	Highlights  StringSlice `json:"highlights"`
}

type DestinationSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Continent string `json:"continent"`
}

func (d Destination) Summary() DestinationSummary {
	return DestinationSummary{
		ID:        d.ID,
		Name:      d.Name,
		Country:   d.Country,
		City:      d.City,
		Continent: d.Continent,
	}
}

type Continent struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DestinationList struct {
	Success   bool          `json:"success"`
	Data      []Destination `json:"data"`
	Count     int           `json:"count"`
	Continent *string       `json:"continent"`
	Limit     int           `json:"limit"`
	Source    Source        `json:"source"`
}

//---------------------

type Visualization struct {
	ID                uuid.UUID           `json:"id"`
	DestinationID     string              `json:"destination_id"`
	UserPhotoURL      string              `json:"user_photo_url"`
	GeneratedImageURL string              `json:"generated_image_url"`
	Strategy          string              `json:"strategy,omitempty"`
	CreatedAt         *time.Time          `json:"created_at,omitempty"`
	Destination       *DestinationSummary `json:"destinations,omitempty"`
}

type VisualizationRequest struct {
	UserPhotoURL  string `json:"user_photo_url"`
	DestinationID string `json:"destination_id"`
}

type VisualizationResult struct {
	Success          bool               `json:"success"`
	VisualizationURL string             `json:"visualization_url"`
	Strategy         string             `json:"strategy"`
	Destination      DestinationSummary `json:"destination"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

type VisualizationList struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Count   int    `json:"count"`
	Limit   int    `json:"limit"`
	Source  Source `json:"source"`
}

// CannedVisualization is the sample gallery entry shown when the DB is unavailable
type CannedVisualization struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	Date            string   `json:"date"`
	Image           string   `json:"image"`
	Type            string   `json:"type"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

//---------------------

type PhotoUpload struct {
	File        multipart.File
	ContentType string
	Size        int64
}

type PhotoUploadResult struct {
	Success    bool      `json:"success"`
	PhotoURL   string    `json:"photo_url"`
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Storage    string    `json:"storage"`
}

//---------------------

type TextToImageRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}

type TextToImageResult struct {
	Success     bool      `json:"success"`
	ImageURL    string    `json:"image_url"`
	Provider    string    `json:"provider"`
	Note        string    `json:"note,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Styles maps an allowed style to the phrase appended to the prompt
var Styles = map[string]string{
	"artistic":     "in an artistic style",
	"cartoon":      "in a cartoon style",
	"photographic": "in a realistic photographic style",
	"painting":     "in a painting style",
	"sketch":       "in a sketch style",
}

//---------------------

var (
	AgeGroups     = map[string]bool{"18-25": true, "26-35": true, "36-50": true, "51-65": true, "65+": true}
	GroupSizes    = map[string]bool{"solo": true, "couple": true, "family": true, "friends": true, "large-group": true}
	TripDurations = map[string]bool{"weekend": true, "week": true, "two-weeks": true, "month": true, "long-term": true}
	Interests     = map[string]bool{
		"romantic": true, "adventure": true, "culture": true, "relaxation": true,
		"food": true, "history": true, "nature": true, "shopping": true,
		"nightlife": true, "photography": true, "sports": true, "luxury": true,
	}
)

const (
	MinBudget = 500
	MaxBudget = 10000
)

type RecommendationsRequest struct {
	AgeGroup        string   `json:"ageGroup"`
	GroupSize       string   `json:"groupSize"`
	BudgetRange     int      `json:"budgetRange"`
	TripDuration    string   `json:"tripDuration"`
	Interests       []string `json:"interests"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
}

type RecommendedDestination struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Continent   string  `json:"continent"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Price       string  `json:"price"`
}

type ItineraryDay struct {
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type BudgetBreakdown struct {
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Food           int `json:"food"`
	Activities     int `json:"activities"`
	Total          int `json:"total"`
}

type Recommendations struct {
	Destinations    []RecommendedDestination `json:"destinations"`
	Itinerary       []ItineraryDay           `json:"itinerary"`
	TravelTips      []string                 `json:"travelTips"`
	BudgetBreakdown *BudgetBreakdown         `json:"budgetBreakdown"`
}

type RecommendationsResult struct {
	Success     bool            `json:"success"`
	Data        Recommendations `json:"data"`
	GeneratedAt time.Time       `json:"generated_at"`
	Note        string          `json:"note,omitempty"`
}

//---------------------

var (
	ClassTypes  = map[string]bool{"economy": true, "premium": true, "business": true, "first": true}
	SearchTypes = map[string]bool{"flights": true, "hotels": true, "activities": true, "packages": true}
)

const MaxPassengers = 9

type BookingSearchRequest struct {
	FromLocation  string `json:"from_location,omitempty"`
	ToLocation    string `json:"to_location,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
	ClassType     string `json:"class_type"`
	SearchType    string `json:"search_type"`
}

// BookingOption is one flight, hotel, activity or package; the fields depend on the search type
type BookingOption map[string]any

type BookingSearchResult struct {
	Success    bool            `json:"success"`
	SearchType string          `json:"search_type"`
	Results    []BookingOption `json:"results"`
	Provider   Source          `json:"provider"`
	SearchedAt time.Time       `json:"searched_at"`
}

//---------------------

type Health struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}

type ErrorResponse struct {
	Detail    string    `json:"detail"`
	ErrorCode string    `json:"error_code"`
	Timestamp time.Time `json:"timestamp"`
}

// ------------------

var (
	ErrCommon500           error = errors.New("something went wrong. Try again later")        // 500
	ErrIncorrectQuery      error = errors.New("incorrect query parameters")                   // 400
	ErrDestinationNotFound error = errors.New("destination not found")                        // 404
	ErrInvalidPhotoURL     error = errors.New("invalid photo URL")                            // 400
	ErrEmptyDestinationID  error = errors.New("destination ID is required")                   // 400
	ErrNotAnImage          error = errors.New("file must be an image (JPEG, PNG, WebP)")      // 400
	ErrFileTooLarge        error = errors.New("file too large (max 10MB)")                    // 400
	ErrInvalidImage        error = errors.New("Invalid image file")                           // 400
	ErrInvalidPrompt       error = errors.New("prompt must be between 10 and 500 characters") // 400
	ErrInvalidStyle        error = errors.New("invalid style")                                // 400
	ErrInvalidPreferences  error = errors.New("invalid travel preferences")                   // 400
	ErrInvalidBookingQuery error = errors.New("invalid booking search")                       // 400
	ErrVisualizationFailed error = errors.New("Visualization generation failed")              // 500
	ErrImageGeneration     error = errors.New("failed to generate image")                     // 500
	ErrRateLimited         error = errors.New("Rate limit exceeded. Please try again later.") // 429
)

//--------------------

const (
	JPEG = "image/jpeg"
	PNG  = "image/png"
	GIF  = "image/gif"
	WEBP = "image/webp"
)

// MaxUploadSize caps uploaded photos and fetched remote images
const MaxUploadSize = 10 << 20

//--------------------

type StringSlice []string

func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = []string{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("invalid type for StringSlice")
	}

	if err := json.Unmarshal(b, s); err != nil {
		return fmt.Errorf("failed to unmarshal JSONB to []StringSlice: %w", err)
	}
	return nil
}

func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 || s == nil {
		return []byte(`[]`), nil
	}
	res, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal []StringSlice to JSONB: %w", err)
	}

	return res, nil
}
