package service

import (
	"context"

	"github.com/jhanaviii/AI-Travel-Agent/internal/catalog"
	"github.com/jhanaviii/AI-Travel-Agent/internal/llm"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
)

// canned flights leave two weeks from today
const bookingLeadDays = 14

// SearchBookings asks the model for options and falls back to the canned ones on any model failure
func (s *TravelService) SearchBookings(ctx context.Context, req *model.BookingSearchRequest) (*model.BookingSearchResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if err := validateBookingSearch(req); err != nil {
		return nil, err
	}

	res := &model.BookingSearchResult{Success: true, SearchType: req.SearchType}

	if s.text != nil {
		text, err := s.text.GenerateText(ctx, "", llm.BookingsPrompt(req), 1000)
		if err == nil {
			opts, pErr := llm.ParseBookings(text, catalog.MaxBookings)
			if pErr == nil {
				logger.Info().Str("type", req.SearchType).Int("results", len(opts)).Msg("LLM booking search done")
				res.Results = opts
				res.Provider = model.SourceLLM
				res.SearchedAt = s.now()
				return res, nil
			}
			err = pErr
		}
		logger.Warn().Err(err).Str("type", req.SearchType).Msg("LLM booking search failed, using built-in data")
	}

	res.Results = catalog.Bookings(req, s.now().AddDate(0, 0, bookingLeadDays))
	res.Provider = model.SourceMock
	res.SearchedAt = s.now()
	return res, nil
}
