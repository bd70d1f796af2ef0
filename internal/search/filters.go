package search

import (
	"strings"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

// SortMode selects the ordering of search results.
type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPopularity SortMode = "popularity"
	SortNewest     SortMode = "newest"
	SortRating     SortMode = "rating"
)

// ParseSortMode maps s to a known mode. Anything unrecognized, including
// the empty string, becomes SortRelevance.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SortPopularity, SortNewest, SortRating:
		return mode
	default:
		return SortRelevance
	}
}

// Filters constrains a search. Zero values mean "unconstrained".
type Filters struct {
	Category   string   `json:"category,omitempty"`
	ToolType   string   `json:"toolType,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	// MinRating is a pointer so that a minimum of 0 still excludes unrated items.
	MinRating *float64 `json:"minRating,omitempty"`

	// MaxResults truncates the sorted list when positive.
	MaxResults int `json:"maxResults,omitempty"`

	// SortBy re-orders results when set.
	SortBy SortMode `json:"sortBy,omitempty"`
}

// Filter names reported by FailedFilter and Active.
const (
	FilterCategory   = "category"
	FilterToolType   = "toolType"
	FilterDifficulty = "difficulty"
	FilterTags       = "tags"
	FilterMinRating  = "minRating"
	FilterMaxResults = "maxResults"
	FilterSortBy     = "sortBy"
)

// Active lists the names of the options that are set, in declaration order.
func (f *Filters) Active() []string {
	if f == nil {
		return nil
	}

	var names []string
	if f.Category != "" {
		names = append(names, FilterCategory)
	}
	if f.ToolType != "" {
		names = append(names, FilterToolType)
	}
	if f.Difficulty != "" {
		names = append(names, FilterDifficulty)
	}
	if len(f.Tags) > 0 {
		names = append(names, FilterTags)
	}
	if f.MinRating != nil {
		names = append(names, FilterMinRating)
	}
	if f.MaxResults > 0 {
		names = append(names, FilterMaxResults)
	}
	if f.SortBy != "" {
		names = append(names, FilterSortBy)
	}
	return names
}

// Passes reports whether item satisfies every enabled constraint.
func Passes(item *catalog.Item, f *Filters) bool {
	return FailedFilter(item, f) == ""
}

// FailedFilter returns the name of the first constraint item fails, or ""
// when it passes them all. Constraints are checked in the order category,
// toolType, difficulty, tags, minRating.
func FailedFilter(item *catalog.Item, f *Filters) string {
	if f == nil {
		return ""
	}

	if f.Category != "" && item.Category != f.Category {
		return FilterCategory
	}

	if f.ToolType != "" && item.Type != f.ToolType {
		return FilterToolType
	}

	if f.Difficulty != "" && item.Difficulty != f.Difficulty {
		return FilterDifficulty
	}

	if len(f.Tags) > 0 {
		if len(item.Tags) == 0 {
			return FilterTags
		}
		for _, tag := range f.Tags {
			if !item.HasTag(tag) {
				return FilterTags
			}
		}
	}

	if f.MinRating != nil {
		if item.Rating == nil || *item.Rating < *f.MinRating {
			return FilterMinRating
		}
	}

	return ""
}
