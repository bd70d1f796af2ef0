package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolbox-search/internal/search"
)

type searchFlags struct {
	category   string
	toolType   string
	difficulty string
	tags       []string
	minRating  float64
	maxResults int
	sortBy     string
	jsonOutput bool
}

// NewSearchCmd creates the 'search' command.
func NewSearchCmd(opts *Options) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the tool catalog",
		Long: `Rank catalog tools against a query. Names, descriptions, categories and
tags are matched case-insensitively; typos are tolerated through fuzzy matching.`,
		Example: `  toolbox-search search image
  toolbox-search search "emi calc" --sort rating
  toolbox-search search convert --category conversion --max-results 3
  toolbox-search search text --tag audio --min-rating 4 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := flags.filters(cmd)
			if err != nil {
				return err
			}
			return runSearch(cmd, opts, strings.Join(args, " "), filters, flags.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "", "Only tools in this category id")
	cmd.Flags().StringVar(&flags.toolType, "type", "", "Only tools of this type")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "Only tools of this difficulty")
	cmd.Flags().StringSliceVar(&flags.tags, "tag", nil, "Require a tag (repeatable; item must carry every listed tag)")
	cmd.Flags().Float64Var(&flags.minRating, "min-rating", 0, "Minimum rating; tools without a rating are excluded")
	cmd.Flags().IntVarP(&flags.maxResults, "max-results", "n", 0, "Maximum results (default from settings.maxResults)")
	cmd.Flags().StringVarP(&flags.sortBy, "sort", "s", "", "Order: relevance, popularity, newest, rating")
	cmd.Flags().BoolVarP(&flags.jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// filters converts flags to search filters. Only flags the user set are applied.
func (f *searchFlags) filters(cmd *cobra.Command) (*search.Filters, error) {
	if f.maxResults < 0 {
		return nil, fmt.Errorf("--max-results must not be negative, got %d", f.maxResults)
	}

	filters := &search.Filters{
		Category:   f.category,
		ToolType:   f.toolType,
		Difficulty: f.difficulty,
		Tags:       f.tags,
		MaxResults: f.maxResults,
	}

	if cmd.Flags().Changed("min-rating") {
		rating := f.minRating
		filters.MinRating = &rating
	}

	if f.sortBy != "" {
		filters.SortBy = search.ParseSortMode(f.sortBy)
		if string(filters.SortBy) != strings.ToLower(strings.TrimSpace(f.sortBy)) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown sort %q, using relevance\n", f.sortBy)
		}
	}

	return filters, nil
}

func runSearch(cmd *cobra.Command, opts *Options, query string, filters *search.Filters, jsonOutput bool) error {
	env, err := opts.load()
	if err != nil {
		return err
	}
	defer env.close()

	if filters.MaxResults == 0 {
		filters.MaxResults = env.cfg.Settings.MaxResults
	}

	start := time.Now()
	results := env.engine.Search(env.catalog, query, filters)
	analytics := search.TrackSearch(query, results,
		search.WithSearchTime(time.Since(start)),
		search.WithFilters(filters),
	)
	env.track(analytics)

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, results)
	}

	printResults(out, env.catalog, strings.TrimSpace(query), results)
	if len(results) == 0 {
		if hints := search.Suggest(lastWord(query), env.catalog.Items, env.cfg.Settings.SuggestionLimit); len(hints) > 0 {
			fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(hints, ", "))
		}
	}
	return nil
}

func lastWord(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
