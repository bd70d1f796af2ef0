package search

import (
	"sync/atomic"
	"time"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

// Session ties an engine to one caller's recent searches and tags every
// search with a monotonically increasing request id. Hosts that issue
// overlapping searches (for example on every keystroke) use IsLatest to
// discard stale responses.
type Session struct {
	engine *Engine
	recent *RecentSearches
	seq    atomic.Uint64
}

// Response is the outcome of a session search.
type Response struct {
	RequestID uint64
	Results   Results
	Analytics Analytics
}

// NewSession creates a session with an empty recent search list.
func NewSession(engine *Engine) *Session {
	if engine == nil {
		engine = NewEngine()
	}
	return &Session{
		engine: engine,
		recent: NewRecentSearches(),
	}
}

// Recent returns the session's recent search store.
func (s *Session) Recent() *RecentSearches {
	return s.recent
}

// Search runs a search, records the query as recent and returns the
// results together with an analytics snapshot.
func (s *Session) Search(cat *catalog.Catalog, query string, filters *Filters) Response {
	id := s.seq.Add(1)

	start := time.Now()
	results := s.engine.Search(cat, query, filters)
	elapsed := time.Since(start)

	s.recent.Add(query)

	return Response{
		RequestID: id,
		Results:   results,
		Analytics: TrackSearch(query, results, WithSearchTime(elapsed), WithFilters(filters)),
	}
}

// IsLatest reports whether id belongs to the most recently started search.
func (s *Session) IsLatest(id uint64) bool {
	return s.seq.Load() == id
}
