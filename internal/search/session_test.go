package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

func TestTrackSearch(t *testing.T) {
	items := []catalog.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	results := Results(resultsFor(items, 5, 4, 3, 2, 1))
	filters := &Filters{Category: "media", SortBy: SortRating}

	a := TrackSearch("image", results, WithSearchTime(15*time.Millisecond), WithFilters(filters))

	assert.NotEmpty(t, a.SearchID)
	assert.Equal(t, "image", a.Query)
	assert.Equal(t, 5, a.ResultsCount)
	assert.Equal(t, 15*time.Millisecond, a.SearchTime)
	assert.Equal(t, []string{FilterCategory, FilterSortBy}, a.FiltersApplied)
	assert.Equal(t, []string{"a", "b", "c"}, a.TopMatches.IDs())
	assert.False(t, a.Timestamp.IsZero())
}

func TestTrackSearch_FewResults(t *testing.T) {
	a := TrackSearch("none", nil)

	assert.Equal(t, 0, a.ResultsCount)
	assert.Empty(t, a.TopMatches)
	assert.Empty(t, a.FiltersApplied)

	b := TrackSearch("none", nil)
	assert.NotEqual(t, a.SearchID, b.SearchID)
}

func TestTrackSearch_DoesNotAliasResults(t *testing.T) {
	items := []catalog.Item{{ID: "a"}, {ID: "b"}}
	results := Results(resultsFor(items, 2, 1))

	a := TrackSearch("q", results)
	results[0] = results[1]

	assert.Equal(t, []string{"a", "b"}, a.TopMatches.IDs())
}

func TestSession_Search(t *testing.T) {
	session := NewSession(NewEngine())
	cat := cropperCatalog()

	first := session.Search(cat, "crop", nil)
	require.Len(t, first.Results, 1)
	assert.Equal(t, 1, first.Analytics.ResultsCount)
	assert.True(t, session.IsLatest(first.RequestID))

	second := session.Search(cat, "image", &Filters{MaxResults: 1})
	assert.Greater(t, second.RequestID, first.RequestID)
	assert.False(t, session.IsLatest(first.RequestID))
	assert.True(t, session.IsLatest(second.RequestID))
	assert.Equal(t, []string{FilterMaxResults}, second.Analytics.FiltersApplied)

	assert.Equal(t, []string{"image", "crop"}, session.Recent().Get())
}

func TestSession_BlankQueryNotRecorded(t *testing.T) {
	session := NewSession(nil)

	resp := session.Search(cropperCatalog(), "  ", nil)

	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, session.Recent().Len())
}

func TestSessions_AreIndependent(t *testing.T) {
	engine := NewEngine()
	a, b := NewSession(engine), NewSession(engine)

	a.Search(cropperCatalog(), "crop", nil)

	assert.Equal(t, 1, a.Recent().Len())
	assert.Equal(t, 0, b.Recent().Len())
}
