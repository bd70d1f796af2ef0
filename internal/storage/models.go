package storage

import "time"

// SearchRecord is the persisted form of one search analytics snapshot.
type SearchRecord struct {
	// SearchID is a unique identifier for this search (UUID).
	SearchID string `json:"search_id"`

	// QueryHash is the SHA256 hash of the search query for privacy.
	QueryHash string `json:"query_hash"`

	// Timestamp is when the search was performed.
	Timestamp time.Time `json:"timestamp"`

	// ResultsCount is the number of results returned.
	ResultsCount int `json:"results_count"`

	// SearchTimeMs is the wall time spent ranking, in milliseconds.
	SearchTimeMs float64 `json:"search_time_ms"`

	// FiltersApplied names the active filters.
	FiltersApplied []string `json:"filters_applied"`

	// TopMatches holds the ids of the first results.
	TopMatches []string `json:"top_matches"`
}
