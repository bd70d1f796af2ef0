package search

import "strings"

// IsMatch reports whether query approximately occurs in text.
//
// A case-insensitive substring hit always matches, whatever the threshold.
// Otherwise the normalized Levenshtein similarity of the lower-cased strings,
// 1 - distance/max(len(query), len(text)), must reach threshold.
// Lengths are counted in runes.
func IsMatch(query, text string, threshold float64) bool {
	if query == "" || text == "" {
		return false
	}

	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.Contains(t, q) {
		return true
	}

	return Similarity(q, t) >= threshold
}

// Similarity returns 1 - d/max(len(a), len(b)) where d is the edit distance.
// Comparison is case-sensitive; callers lower-case first. Two empty strings
// are identical.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes the edit distance with unit costs for insert, delete
// and substitute, using the full DP table.
func levenshtein(a, b []rune) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		for j := 0; j <= n; j++ {
			switch {
			case i == 0:
				dp[i][j] = j
			case j == 0:
				dp[i][j] = i
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1]
			default:
				dp[i][j] = 1 + min(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
			}
		}
	}

	return dp[m][n]
}
