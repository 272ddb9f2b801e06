package service

import (
	"context"
	"strings"

	"github.com/jhanaviii/AI-Travel-Agent/internal/catalog"
	"github.com/jhanaviii/AI-Travel-Agent/internal/llm"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
)

const (
	notePlanParsing     = "Used fallback recommendations due to API parsing issue"
	notePlanUnavailable = "Used fallback recommendations because the AI service is unavailable"
)

// DestinationSuggestions never fails: model answer, then the prefix table, then the popular list
func (s *TravelService) DestinationSuggestions(ctx context.Context, query string) []string {
	logger := mwlogger.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return []string{}
	}

	if s.text != nil {
		text, err := s.text.GenerateText(ctx, "", llm.SuggestionsPrompt(query), 200)
		if err == nil {
			res, pErr := llm.ParseSuggestions(text, catalog.MaxSuggestions)
			if pErr == nil && len(res) > 0 {
				return res
			}
			err = pErr
		}
		logger.Warn().Err(err).Msg("LLM suggestions failed, using static list")
	}

	return catalog.Suggestions(query)
}

func (s *TravelService) Recommendations(ctx context.Context, req *model.RecommendationsRequest) (*model.RecommendationsResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	if err := validatePreferences(req); err != nil {
		return nil, err
	}

	res := &model.RecommendationsResult{Success: true}

	if s.text == nil {
		res.Data = catalog.Recommendations(req.BudgetRange)
		res.Note = notePlanUnavailable
		res.GeneratedAt = s.now()
		return res, nil
	}

	text, err := s.text.GenerateText(ctx, llm.RecommendationsSystem, llm.RecommendationsPrompt(req), 2500)
	if err != nil {
		logger.Error().Err(err).Msg("LLM recommendations failed")
		res.Data = catalog.Recommendations(req.BudgetRange)
		res.Note = notePlanUnavailable
		res.GeneratedAt = s.now()
		return res, nil
	}

	plan, err := llm.ParseRecommendations(text)
	if err != nil {
		logger.Error().Err(err).Str("raw", text).Msg("Failed to parse LLM recommendations")
		res.Data = catalog.Recommendations(req.BudgetRange)
		res.Note = notePlanParsing
		res.GeneratedAt = s.now()
		return res, nil
	}

	logger.Info().Int("destinations", len(plan.Destinations)).Msg("Generated personalized recommendations")
	res.Data = *plan
	res.GeneratedAt = s.now()
	return res, nil
}
