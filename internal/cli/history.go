package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command group for search analytics.
func NewHistoryCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or prune recorded search analytics",
		Long: `Searches are recorded to a local SQLite database (queries are stored only
as SHA-256 hashes). Disable recording with "settings.disableHistory".`,
	}

	cmd.AddCommand(newHistoryListCmd(opts))
	cmd.AddCommand(newHistoryPruneCmd(opts))

	return cmd
}

func newHistoryListCmd(opts *Options) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show recent searches, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			defer env.close()

			out := cmd.OutOrStdout()
			store := env.historyStore()
			if store == nil {
				fmt.Fprintln(out, "Search history is disabled.")
				return nil
			}
			if err := store.Init(); err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListSearches(limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(out, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No searches recorded.")
				return nil
			}

			fmt.Fprintf(out, "Recent searches (%d):\n\n", len(records))
			for _, r := range records {
				fmt.Fprintf(out, "  %s  %s  %d results  %.2fms\n",
					r.Timestamp.Local().Format(time.DateTime), shortHash(r.QueryHash), r.ResultsCount, r.SearchTimeMs)
				if len(r.FiltersApplied) > 0 {
					fmt.Fprintf(out, "    Filters: %s\n", strings.Join(r.FiltersApplied, ", "))
				}
				if len(r.TopMatches) > 0 {
					fmt.Fprintf(out, "    Top:     %s\n", strings.Join(r.TopMatches, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum records to show (0 for all)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func newHistoryPruneCmd(opts *Options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete searches older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			defer env.close()

			out := cmd.OutOrStdout()
			store := env.historyStore()
			if store == nil {
				fmt.Fprintln(out, "Search history is disabled.")
				return nil
			}
			if err := store.Init(); err != nil {
				return err
			}
			defer store.Close()

			if days <= 0 {
				days = env.cfg.Settings.RetentionDays
			}

			removed, err := store.Cleanup(time.Duration(days) * 24 * time.Hour)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Removed %d searches older than %d days\n", removed, days)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Retention in days (default from settings.retentionDays)")

	return cmd
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
