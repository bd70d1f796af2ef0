/*
Package benchmark measures search latency against a catalog.

Each query is run a number of times through the same engine a command
would use; per-query and overall latency statistics are reported.
*/
package benchmark

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/khanglvm/toolbox-search/internal/catalog"
	"github.com/khanglvm/toolbox-search/internal/search"
)

// DefaultQueries mixes exact, partial, multi-word and misspelled queries.
var DefaultQueries = []string{
	"image",
	"emi calculator",
	"convert units",
	"jsno formater",
	"speech",
	"text",
}

// DefaultIterations is the number of runs per query.
const DefaultIterations = 100

// QueryResult holds latency statistics for one query.
type QueryResult struct {
	Query   string        `json:"query"`
	Results int           `json:"results"`
	Min     time.Duration `json:"min"`
	Mean    time.Duration `json:"mean"`
	P95     time.Duration `json:"p95"`
	Max     time.Duration `json:"max"`
}

// Result contains the whole benchmark run.
type Result struct {
	CatalogSize int           `json:"catalogSize"`
	Iterations  int           `json:"iterations"`
	Queries     []QueryResult `json:"queries"`
	Total       time.Duration `json:"total"`
	Mean        time.Duration `json:"mean"`
}

// Run searches cat for every query iterations times.
func Run(engine *search.Engine, cat *catalog.Catalog, queries []string, iterations int) *Result {
	if len(queries) == 0 {
		queries = DefaultQueries
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	result := &Result{
		CatalogSize: cat.Len(),
		Iterations:  iterations,
		Queries:     make([]QueryResult, 0, len(queries)),
	}

	samples := make([]time.Duration, iterations)
	for _, q := range queries {
		var count int
		var sum time.Duration
		for i := range samples {
			start := time.Now()
			count = len(engine.Search(cat, q, nil))
			samples[i] = time.Since(start)
			sum += samples[i]
		}
		slices.Sort(samples)

		result.Queries = append(result.Queries, QueryResult{
			Query:   q,
			Results: count,
			Min:     samples[0],
			Mean:    sum / time.Duration(iterations),
			P95:     percentile(samples, 0.95),
			Max:     samples[len(samples)-1],
		})
		result.Total += sum
	}

	result.Mean = result.Total / time.Duration(iterations*len(queries))
	return result
}

// percentile expects sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}

// FormatResult formats the benchmark result for display.
func FormatResult(result *Result) string {
	var sb strings.Builder

	sb.WriteString("╔══════════════════════════════════════════════════════════════╗\n")
	sb.WriteString("║               SEARCH LATENCY BENCHMARK RESULTS               ║\n")
	sb.WriteString("╚══════════════════════════════════════════════════════════════╝\n\n")
	fmt.Fprintf(&sb, "  Catalog:    %d tools\n", result.CatalogSize)
	fmt.Fprintf(&sb, "  Iterations: %d per query\n\n", result.Iterations)

	fmt.Fprintf(&sb, "  %-20s %7s %10s %10s %10s %10s\n", "QUERY", "RESULTS", "MIN", "MEAN", "P95", "MAX")
	for _, q := range result.Queries {
		fmt.Fprintf(&sb, "  %-20s %7d %10s %10s %10s %10s\n",
			truncate(q.Query, 20), q.Results, round(q.Min), round(q.Mean), round(q.P95), round(q.Max))
	}

	fmt.Fprintf(&sb, "\n  Overall mean: %s (total %s)\n", round(result.Mean), round(result.Total))
	return sb.String()
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
