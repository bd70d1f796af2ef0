package search

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

// epoch is the creation time assumed for items whose CreatedAt is missing
// or unparsable.
var epoch = time.Unix(0, 0).UTC()

// createdAtLayouts are tried in order when parsing CreatedAt.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseCreatedAt parses an item's creation time, returning the Unix epoch
// when the value is empty or in no known layout.
func ParseCreatedAt(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return epoch
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return epoch
}

func usageCount(item *catalog.Item) int {
	if item.UsageCount == nil {
		return 0
	}
	return *item.UsageCount
}

func rating(item *catalog.Item) float64 {
	if item.Rating == nil {
		return 0
	}
	return *item.Rating
}

// Sort orders results in place, descending by the key mode selects, and
// returns them. The sort is stable: equal keys keep their relative order.
// Unknown modes sort by relevance.
func Sort(results []Result, mode SortMode) []Result {
	var compare func(a, b Result) int

	switch mode {
	case SortPopularity:
		compare = func(a, b Result) int {
			return cmp.Compare(usageCount(b.Item), usageCount(a.Item))
		}
	case SortNewest:
		compare = func(a, b Result) int {
			return ParseCreatedAt(b.Item.CreatedAt).Compare(ParseCreatedAt(a.Item.CreatedAt))
		}
	case SortRating:
		compare = func(a, b Result) int {
			return cmp.Compare(rating(b.Item), rating(a.Item))
		}
	default:
		compare = func(a, b Result) int {
			return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
		}
	}

	slices.SortStableFunc(results, compare)
	return results
}
