package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

func TestPasses(t *testing.T) {
	item := &catalog.Item{
		ID:         "emi",
		Category:   "finance",
		Type:       "calculator",
		Difficulty: "beginner",
		Tags:       []string{"loan", "emi", "interest"},
		Rating:     floatPtr(4.2),
	}
	unrated := &catalog.Item{ID: "plain", Category: "finance"}

	tests := []struct {
		name       string
		item       *catalog.Item
		filters    *Filters
		wantFailed string
	}{
		{"nil filters", item, nil, ""},
		{"empty filters", item, &Filters{}, ""},
		{"category match", item, &Filters{Category: "finance"}, ""},
		{"category mismatch", item, &Filters{Category: "media"}, FilterCategory},
		{"type mismatch", item, &Filters{ToolType: "converter"}, FilterToolType},
		{"difficulty mismatch", item, &Filters{Difficulty: "advanced"}, FilterDifficulty},
		{"tags subset", item, &Filters{Tags: []string{"emi", "loan"}}, ""},
		{"tags not subset", item, &Filters{Tags: []string{"emi", "mortgage"}}, FilterTags},
		{"tags on untagged item", unrated, &Filters{Tags: []string{"emi"}}, FilterTags},
		{"empty tag filter ignored", unrated, &Filters{Tags: []string{}}, ""},
		{"min rating met", item, &Filters{MinRating: floatPtr(4.2)}, ""},
		{"min rating not met", item, &Filters{MinRating: floatPtr(4.5)}, FilterMinRating},
		{"min rating zero excludes unrated", unrated, &Filters{MinRating: floatPtr(0)}, FilterMinRating},
		{"first failure reported", item, &Filters{Category: "media", MinRating: floatPtr(5)}, FilterCategory},
		{"all pass", item, &Filters{
			Category:   "finance",
			ToolType:   "calculator",
			Difficulty: "beginner",
			Tags:       []string{"interest"},
			MinRating:  floatPtr(4),
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFailed, FailedFilter(tt.item, tt.filters))
			assert.Equal(t, tt.wantFailed == "", Passes(tt.item, tt.filters))
		})
	}
}

func TestFiltersActive(t *testing.T) {
	var nilFilters *Filters
	assert.Empty(t, nilFilters.Active())
	assert.Empty(t, (&Filters{}).Active())

	f := &Filters{
		Category:   "media",
		Tags:       []string{"image"},
		MinRating:  floatPtr(0),
		MaxResults: 5,
		SortBy:     SortRating,
	}
	assert.Equal(t, []string{FilterCategory, FilterTags, FilterMinRating, FilterMaxResults, FilterSortBy}, f.Active())
}

func TestParseSortMode(t *testing.T) {
	tests := map[string]SortMode{
		"":           SortRelevance,
		"relevance":  SortRelevance,
		"popularity": SortPopularity,
		" Newest ":   SortNewest,
		"RATING":     SortRating,
		"populairty": SortRelevance,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseSortMode(in), "input %q", in)
	}
}
