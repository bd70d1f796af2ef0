package search

import "github.com/khanglvm/toolbox-search/internal/catalog"

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// resultsFor wraps items in results with the given relevance scores.
func resultsFor(items []catalog.Item, scores ...float64) []Result {
	results := make([]Result, len(items))
	for i := range items {
		results[i] = Result{
			Item:          &items[i],
			MatchType:     MatchPartial,
			MatchedFields: []Field{FieldName},
		}
		if i < len(scores) {
			results[i].RelevanceScore = scores[i]
		}
	}
	return results
}

func ids(results []Result) []string {
	return Results(results).IDs()
}
