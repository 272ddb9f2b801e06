package catalog

import (
	"testing"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/stretchr/testify/require"
)

func TestDestinations(t *testing.T) {
	tests := []struct {
		name      string
		continent string
		limit     int
		wantLen   int
	}{
		{"all", "", 50, 6},
		{"limited", "", 2, 2},
		{"continent case-insensitive", "south america", 50, 1},
		{"unknown continent", "Antarctica", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Destinations(tt.continent, tt.limit)
			require.Len(t, got, tt.wantLen)
		})
	}

	got := Destinations("South America", 10)
	require.Equal(t, "Cusco", got[0].City)
}

func TestDestinations_ReturnsCopies(t *testing.T) {
	first := Destinations("", 1)
	first[0].Highlights[0] = "changed"
	first[0].Name = "changed"

	again := Destinations("", 1)
	require.Equal(t, "Santorini, Greece", again[0].Name)
	require.Equal(t, "Oia Sunset", again[0].Highlights[0])
}

func TestDestination(t *testing.T) {
	d, ok := Destination("550e8400-e29b-41d4-a716-446655440002")
	require.True(t, ok)
	require.Equal(t, "Kyoto, Japan", d.Name)

	_, ok = Destination("missing")
	require.False(t, ok)
}

func TestContinents_MatchDestinations(t *testing.T) {
	counts := map[string]int{}
	for _, d := range Destinations("", 100) {
		counts[d.Continent]++
	}

	got := Continents()
	require.Len(t, got, len(counts))
	for i, c := range got {
		require.Equal(t, counts[c.Name], c.Count)
		if i > 0 {
			require.Less(t, got[i-1].Name, c.Name)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	d := model.Destination{Name: "Somewhere"}
	ApplyDefaults(&d)

	require.Equal(t, 4.5, d.Rating)
	require.Equal(t, "$$", d.Price)
	require.Equal(t, "Year-round", d.BestTime)
	require.Equal(t, model.StringSlice{"Local Attractions", "Cultural Sites", "Natural Beauty", "Local Cuisine"}, d.Highlights)

	kept := model.Destination{Rating: 4.1, Price: "$", BestTime: "June", Highlights: model.StringSlice{"x"}}
	ApplyDefaults(&kept)
	require.Equal(t, 4.1, kept.Rating)
	require.Equal(t, model.StringSlice{"x"}, kept.Highlights)
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"Paris", []string{"Paris, France", "Barcelona, Spain", "Milan, Italy", "Bangkok, Thailand"}},
		{"  TOKYO ", []string{"Tokyo, Japan", "Toronto, Canada", "Stockholm, Sweden", "Istanbul, Turkey"}},
		{"ap", []string{"Tokyo, Japan", "Singapore"}},
		{"zz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Suggestions(tt.query)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, len(got), MaxSuggestions)
		})
	}
}

func TestRecommendations_BudgetSplit(t *testing.T) {
	rec := Recommendations(3000)

	require.Len(t, rec.Destinations, 3)
	require.Equal(t, &model.BudgetBreakdown{
		Accommodation:  1200,
		Transportation: 750,
		Food:           600,
		Activities:     450,
		Total:          3000,
	}, rec.BudgetBreakdown)
}
