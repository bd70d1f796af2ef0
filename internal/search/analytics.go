package search

import (
	"time"

	"github.com/google/uuid"
)

// maxTopMatches bounds Analytics.TopMatches.
const maxTopMatches = 3

// Analytics is a reporting snapshot of one search. Ranking never reads it.
type Analytics struct {
	// SearchID uniquely identifies this search.
	SearchID string `json:"searchId"`

	Query        string        `json:"query"`
	ResultsCount int           `json:"resultsCount"`
	SearchTime   time.Duration `json:"searchTime"`

	// FiltersApplied lists the names of the filter options that were set.
	FiltersApplied []string `json:"filtersApplied,omitempty"`

	// TopMatches holds at most the first three results.
	TopMatches Results `json:"topMatches"`

	Timestamp time.Time `json:"timestamp"`
}

// TrackOption adds optional detail to an Analytics snapshot.
type TrackOption func(*Analytics)

// WithSearchTime records how long the search took.
func WithSearchTime(d time.Duration) TrackOption {
	return func(a *Analytics) {
		a.SearchTime = d
	}
}

// WithFilters records which filters were in effect.
func WithFilters(f *Filters) TrackOption {
	return func(a *Analytics) {
		a.FiltersApplied = f.Active()
	}
}

// TrackSearch builds an analytics snapshot for query and its results.
func TrackSearch(query string, results Results, opts ...TrackOption) Analytics {
	top := min(len(results), maxTopMatches)

	a := Analytics{
		SearchID:     uuid.NewString(),
		Query:        query,
		ResultsCount: len(results),
		TopMatches:   append(Results(nil), results[:top]...),
		Timestamp:    time.Now(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
