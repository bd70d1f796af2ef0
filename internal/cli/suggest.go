package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolbox-search/internal/search"
)

// NewSuggestCmd creates the 'suggest' command for prefix completions.
func NewSuggestCmd(opts *Options) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Suggest completions for a partial query",
		Long:  `Print words from tool names, descriptions and tags that extend the given prefix.`,
		Example: `  toolbox-search suggest ima
  toolbox-search suggest con --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			defer env.close()

			if limit <= 0 {
				limit = env.cfg.Settings.SuggestionLimit
			}

			suggestions := search.Suggest(args[0], env.catalog.Items, limit)

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum suggestions (default from settings.suggestionLimit)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
