package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatch_EmptyInputs(t *testing.T) {
	for _, threshold := range []float64{0, 0.3, 0.6, 1} {
		assert.False(t, IsMatch("", "Image Cropper", threshold))
		assert.False(t, IsMatch("crop", "", threshold))
		assert.False(t, IsMatch("", "", threshold))
	}
}

func TestIsMatch_SubstringIgnoresThreshold(t *testing.T) {
	for _, threshold := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.True(t, IsMatch("CROP", "Image Cropper", threshold), "threshold %v", threshold)
		assert.True(t, IsMatch("image cropper", "Image Cropper", threshold), "threshold %v", threshold)
	}
}

func TestIsMatch_Similarity(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		text      string
		threshold float64
		want      bool
	}{
		{"typo above threshold", "calculater", "Calculator", 0.6, true},
		{"kitten sitting below 0.6", "kitten", "sitting", 0.6, false},
		{"kitten sitting above 0.5", "kitten", "sitting", 0.5, true},
		{"unrelated", "xyznotfound", "Image Cropper", 0.3, false},
		{"exact threshold boundary", "abcd", "abce", 0.75, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMatch(tt.query, tt.text, tt.threshold))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"flaw", "lawn", 2},
		{"kitten", "sitting", 3},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein([]rune(tt.a), []rune(tt.b)))
			assert.Equal(t, tt.want, levenshtein([]rune(tt.b), []rune(tt.a)))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("abc", "abc"))
	assert.InDelta(t, 0.9, Similarity("calculater", "calculator"), 1e-9)
	assert.InDelta(t, 1-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}
