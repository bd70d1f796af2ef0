package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/khanglvm/toolbox-search/internal/catalog"
	"github.com/khanglvm/toolbox-search/internal/search"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResults writes ranked results in human-readable form.
func printResults(w io.Writer, cat *catalog.Catalog, query string, results search.Results) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No tools match %q.\n", query)
		return
	}

	noun := "tools"
	if len(results) == 1 {
		noun = "tool"
	}
	fmt.Fprintf(w, "Found %d %s for %q:\n\n", len(results), noun, query)

	for i, r := range results {
		fields := make([]string, len(r.MatchedFields))
		for j, f := range r.MatchedFields {
			fields[j] = string(f)
		}
		fmt.Fprintf(w, "%3d. %s (%s)  score %.1f  [%s: %s]\n",
			i+1, r.Item.Name, r.Item.ID, r.RelevanceScore, r.MatchType, strings.Join(fields, ", "))
		printItemDetails(w, cat, r.Item)
	}
}

// printItems writes an unranked item list.
func printItems(w io.Writer, cat *catalog.Catalog, items []*catalog.Item) {
	for _, item := range items {
		fmt.Fprintf(w, "  %s (%s)\n", item.Name, item.ID)
		printItemDetails(w, cat, item)
	}
}

func printItemDetails(w io.Writer, cat *catalog.Catalog, item *catalog.Item) {
	if item.Description != "" {
		fmt.Fprintf(w, "     %s\n", item.Description)
	}

	details := []string{"Category: " + cat.CategoryName(item.Category)}
	if len(item.Tags) > 0 {
		details = append(details, "Tags: "+strings.Join(item.Tags, ", "))
	}
	if item.Rating != nil {
		details = append(details, fmt.Sprintf("Rating: %.1f", *item.Rating))
	}
	if item.UsageCount != nil {
		details = append(details, fmt.Sprintf("Used: %d", *item.UsageCount))
	}
	fmt.Fprintf(w, "     %s\n\n", strings.Join(details, " · "))
}
