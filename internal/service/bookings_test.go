package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/stretchr/testify/require"
)

func TestTravelService_SearchBookings(t *testing.T) {
	t.Run("llm results", func(t *testing.T) {
		text := &mockText{generateFn: func(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
			require.Equal(t, int32(1000), maxTokens)
			require.Contains(t, prompt, "hotels")
			require.Contains(t, prompt, "Lisbon")
			require.Contains(t, prompt, "2 passenger(s)")
			return "Here you go:\n" + `[{"id":"h1","name":"Tivoli Lisbon","price":260},{}]`, nil
		}}

		res, err := newService(Deps{Text: text}).SearchBookings(context.Background(), &model.BookingSearchRequest{
			ToLocation: " Lisbon ",
			Passengers: 2,
			SearchType: "Hotels",
		})
		require.NoError(t, err)
		require.True(t, res.Success)
		require.Equal(t, model.SourceLLM, res.Provider)
		require.Equal(t, "hotels", res.SearchType)
		require.Len(t, res.Results, 1)
		require.Equal(t, "Tivoli Lisbon", res.Results[0]["name"])
		require.Equal(t, fixedNow, res.SearchedAt)
	})

	t.Run("llm error", func(t *testing.T) {
		text := &mockText{generateFn: func(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
			return "", errors.New("quota")
		}}

		res, err := newService(Deps{Text: text}).SearchBookings(context.Background(), &model.BookingSearchRequest{SearchType: "activities"})
		require.NoError(t, err)
		require.Equal(t, model.SourceMock, res.Provider)
		require.Len(t, res.Results, 6)
		require.Equal(t, "City Tour", res.Results[0]["name"])
	})

	t.Run("no json in answer", func(t *testing.T) {
		text := &mockText{generateFn: func(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
			return "Sorry, no flights today.", nil
		}}

		res, err := newService(Deps{Text: text}).SearchBookings(context.Background(), &model.BookingSearchRequest{})
		require.NoError(t, err)
		require.Equal(t, model.SourceMock, res.Provider)
		require.Equal(t, "flights", res.SearchType)
	})

	t.Run("no llm uses defaults", func(t *testing.T) {
		res, err := newService(Deps{}).SearchBookings(context.Background(), &model.BookingSearchRequest{})
		require.NoError(t, err)
		require.Equal(t, model.SourceMock, res.Provider)
		require.Len(t, res.Results, 6)

		first := res.Results[0]
		require.Equal(t, "flight_1", first["id"])
		require.Equal(t, "economy", first["class"])
		require.Equal(t, 200, first["price"])
		require.Equal(t, "2026-03-15", first["departureDate"])
	})
}

func TestTravelService_SearchBookings_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  model.BookingSearchRequest
	}{
		{"too many passengers", model.BookingSearchRequest{Passengers: 10}},
		{"negative passengers", model.BookingSearchRequest{Passengers: -1}},
		{"class", model.BookingSearchRequest{ClassType: "cargo"}},
		{"search type", model.BookingSearchRequest{SearchType: "cars"}},
	}

	svc := newService(Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchBookings(context.Background(), &tt.req)
			require.ErrorIs(t, err, model.ErrInvalidBookingQuery)
		})
	}
}
