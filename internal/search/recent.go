package search

import (
	"slices"
	"strings"
	"sync"
)

// MaxRecentSearches bounds the recent search list.
const MaxRecentSearches = 10

// RecentSearches is a bounded, most-recent-first list of distinct queries.
// It lives in memory only. Each host session owns its own instance.
type RecentSearches struct {
	mu      sync.Mutex
	queries []string
}

// NewRecentSearches creates an empty store.
func NewRecentSearches() *RecentSearches {
	return &RecentSearches{}
}

// Add moves query to the front, dropping any older equal entry and
// anything beyond MaxRecentSearches. Blank queries are ignored.
// Queries are stored trimmed.
func (r *RecentSearches) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = slices.DeleteFunc(r.queries, func(q string) bool { return q == query })
	r.queries = slices.Insert(r.queries, 0, query)
	if len(r.queries) > MaxRecentSearches {
		r.queries = r.queries[:MaxRecentSearches]
	}
}

// Get returns a copy of the list, most recent first.
func (r *RecentSearches) Get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

// Clear empties the list.
func (r *RecentSearches) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = nil
}

// Len returns the number of stored queries.
func (r *RecentSearches) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.queries)
}
