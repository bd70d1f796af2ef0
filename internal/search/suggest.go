package search

import (
	"strings"
	"unicode/utf8"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

// DefaultSuggestionLimit is what hosts pass when the caller gives no limit.
const DefaultSuggestionLimit = 5

// Suggest mines completion candidates for prefix from item names,
// descriptions and tags.
//
// A token qualifies when its lower-cased form starts with the lower-cased
// prefix and it is strictly longer than the prefix. Duplicates are dropped
// case-insensitively, keeping the first spelling seen. Order follows the
// catalog scan, not frequency.
func Suggest(prefix string, items []catalog.Item, limit int) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || limit <= 0 {
		return []string{}
	}

	lowerPrefix := strings.ToLower(prefix)
	prefixLen := utf8.RuneCountInString(prefix)

	suggestions := make([]string, 0, limit)
	seen := make(map[string]bool)

	consider := func(text string) bool {
		for _, token := range strings.Fields(text) {
			lower := strings.ToLower(token)
			if seen[lower] {
				continue
			}
			if !strings.HasPrefix(lower, lowerPrefix) || utf8.RuneCountInString(token) <= prefixLen {
				continue
			}
			seen[lower] = true
			suggestions = append(suggestions, token)
			if len(suggestions) >= limit {
				return true
			}
		}
		return false
	}

	for i := range items {
		item := &items[i]
		if consider(item.Name) || consider(item.Description) {
			return suggestions
		}
		for _, tag := range item.Tags {
			if consider(tag) {
				return suggestions
			}
		}
	}

	return suggestions
}
