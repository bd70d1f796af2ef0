/*
Package search implements the tool search and relevance-ranking engine.

Given a free-text query, optional structured filters, and an in-memory
catalog, the engine returns a deterministically ordered list with at most
one result per item. Matching combines case-insensitive substring checks
with normalized Levenshtein similarity; ranking uses weighted per-field
relevance scores and one of four sort modes.

Everything in this package is synchronous and free of I/O. The only
mutable state is RecentSearches, which the caller owns.
*/
package search

import "github.com/khanglvm/toolbox-search/internal/catalog"

// Field names a part of an item that a query matched.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldTags        Field = "tags"
	FieldFuzzy       Field = "fuzzy"
)

// MatchType describes how a result was matched.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchPartial  MatchType = "partial"
	MatchFuzzy    MatchType = "fuzzy"
	MatchCategory MatchType = "category"
	MatchTag      MatchType = "tag"
)

// Result is a single ranked match.
type Result struct {
	// Item points into the catalog that was searched.
	Item *catalog.Item `json:"item"`

	// RelevanceScore is non-negative; higher is more relevant.
	RelevanceScore float64 `json:"relevanceScore"`

	// MatchType is how the winning candidate matched.
	MatchType MatchType `json:"matchType"`

	// MatchedFields is never empty.
	MatchedFields []Field `json:"matchedFields"`
}

// HasField reports whether f is among the matched fields.
func (r Result) HasField(f Field) bool {
	for _, m := range r.MatchedFields {
		if m == f {
			return true
		}
	}
	return false
}

// Results is a slice of Result with helper methods.
type Results []Result

// IDs returns the item ids in order.
func (r Results) IDs() []string {
	ids := make([]string, len(r))
	for i, result := range r {
		ids[i] = result.Item.ID
	}
	return ids
}
