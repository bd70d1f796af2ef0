package search

import (
	"strings"
	"unicode/utf8"
)

// Score computes the relevance of content for query when matched through
// field. It is pure and never negative.
//
//	+100 if content contains the whole query, +50 more if it starts with it
//	+30 per query word found in content, +20 more per word it starts with
//	× the field weight
//	× the length penalty factor when content is longer than the cutoff
func (c ScoringConfig) Score(query, content string, field Field) float64 {
	q := strings.ToLower(query)
	text := strings.ToLower(content)

	score := 0.0

	if q != "" && strings.Contains(text, q) {
		score += substringBonus
		if strings.HasPrefix(text, q) {
			score += prefixBonus
		}
	}

	for _, word := range strings.Fields(q) {
		if !strings.Contains(text, word) {
			continue
		}
		score += wordBonus
		if strings.HasPrefix(text, word) {
			score += wordPrefixBonus
		}
	}

	score *= c.Weight(field)

	if utf8.RuneCountInString(content) > c.LengthPenaltyCutoff {
		score *= c.LengthPenaltyFactor
	}

	return score
}
