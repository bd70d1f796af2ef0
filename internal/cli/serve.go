package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khanglvm/toolbox-search/internal/mcp"
)

// NewServeCmd creates the 'serve' command that runs the MCP server.
func NewServeCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio transport)",
		Long: `Start an MCP server on stdin/stdout exposing catalog_search, catalog_suggest,
catalog_list and catalog_recent. Logs go to stderr.`,
		Example: `  # Register with an MCP client
  toolbox-search serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			defer env.close()

			server := mcp.NewServer(env.catalog, env.engine, env.startTracker(), mcp.Defaults{
				MaxResults:      env.cfg.Settings.MaxResults,
				SuggestionLimit: env.cfg.Settings.SuggestionLimit,
			}, env.logger)

			env.logger.Info("MCP server started", zap.Int("tools", env.catalog.Len()))
			return server.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
