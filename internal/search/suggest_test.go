package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

func suggestionItems() []catalog.Item {
	return []catalog.Item{
		{ID: "emi", Name: "EMI Calculator", Description: "calculate monthly installments", Tags: []string{"calculator", "loan"}},
		{ID: "pro", Name: "Calc Pro", Description: "Calculations made simple", Tags: []string{"CALCULATE"}},
		{ID: "tts", Name: "Text to Speech", Description: "read text aloud", Tags: []string{"speech"}},
	}
}

func TestSuggest_PrefixTokens(t *testing.T) {
	got := Suggest("calc", suggestionItems(), 5)

	// "Calc" is not longer than the prefix; duplicates keep the first spelling
	assert.Equal(t, []string{"Calculator", "calculate", "Calculations"}, got)
}

func TestSuggest_CaseInsensitivePrefix(t *testing.T) {
	got := Suggest("CALC", suggestionItems(), 5)
	assert.Equal(t, []string{"Calculator", "calculate", "Calculations"}, got)
}

func TestSuggest_Limit(t *testing.T) {
	assert.Equal(t, []string{"Calculator", "calculate"}, Suggest("calc", suggestionItems(), 2))
}

func TestSuggest_NonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		got := Suggest("calc", suggestionItems(), limit)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSuggest_BlankPrefix(t *testing.T) {
	assert.Empty(t, Suggest("", suggestionItems(), 5))
	assert.Empty(t, Suggest("   ", suggestionItems(), 5))
	assert.NotNil(t, Suggest("", suggestionItems(), 5))
}

func TestSuggest_NoMatches(t *testing.T) {
	assert.Empty(t, Suggest("zzz", suggestionItems(), 5))
	assert.Empty(t, Suggest("calc", nil, 5))
}
