package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolbox-search/internal/catalog"
	"github.com/khanglvm/toolbox-search/internal/search"
)

// NewListCmd creates the 'list' command for browsing the catalog.
func NewListCmd(opts *Options) *cobra.Command {
	var category string
	var tag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog tools",
		Long:    `Display catalog tools grouped by category, or only those in one category or with one tag.`,
		Example: `  toolbox-search list
  toolbox-search ls --category media
  toolbox-search list --tag image --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, category, tag, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only tools in this category id")
	cmd.Flags().StringVar(&tag, "tag", "", "Only tools carrying this tag")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("category", "tag")

	return cmd
}

func runList(cmd *cobra.Command, opts *Options, category, tag string, jsonOutput bool) error {
	env, err := opts.load()
	if err != nil {
		return err
	}
	defer env.close()

	out := cmd.OutOrStdout()
	cat := env.catalog

	var items []*catalog.Item
	switch {
	case category != "":
		items = search.SearchByCategory(category, cat.Items)
	case tag != "":
		items = search.SearchByTag(tag, cat.Items)
	default:
		if jsonOutput {
			return writeJSON(out, cat)
		}
		fmt.Fprintf(out, "Tools (%d):\n\n", cat.Len())
		for _, c := range cat.Categories {
			group := search.SearchByCategory(c.ID, cat.Items)
			if len(group) == 0 {
				continue
			}
			fmt.Fprintf(out, "%s (%d)\n", c.Name, len(group))
			printItems(out, cat, group)
		}
		return nil
	}

	if jsonOutput {
		return writeJSON(out, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No tools found.")
		return nil
	}
	fmt.Fprintf(out, "Tools (%d):\n\n", len(items))
	printItems(out, cat, items)
	return nil
}
