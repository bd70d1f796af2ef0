/*
Package cli implements the toolbox-search commands.

Every command loads the configuration (falling back to defaults when
~/.toolbox-search.json does not exist), loads the tool catalog it points at
and runs the search engine in-process. Searches are recorded to the SQLite
history unless disabled in settings.
*/
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khanglvm/toolbox-search/internal/catalog"
	"github.com/khanglvm/toolbox-search/internal/config"
	"github.com/khanglvm/toolbox-search/internal/logging"
	"github.com/khanglvm/toolbox-search/internal/search"
	"github.com/khanglvm/toolbox-search/internal/storage"
	"github.com/khanglvm/toolbox-search/internal/tracking"
	"github.com/khanglvm/toolbox-search/internal/version"
)

// Options holds flags shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
}

// NewRootCmd creates the toolbox-search root command with all subcommands.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "toolbox-search",
		Short: "Search and rank a catalog of utility tools",
		Long: `toolbox-search finds tools in a catalog by name, description, category
and tags, tolerating typos through fuzzy matching.

The catalog defaults to a built-in sample set; point "catalogPath" in
~/.toolbox-search.json at your own JSON or YAML catalog to search it instead.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default ~/.toolbox-search.json)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewSearchCmd(opts))
	rootCmd.AddCommand(NewSuggestCmd(opts))
	rootCmd.AddCommand(NewListCmd(opts))
	rootCmd.AddCommand(NewShellCmd(opts))
	rootCmd.AddCommand(NewHistoryCmd(opts))
	rootCmd.AddCommand(NewConfigCmd(opts))
	rootCmd.AddCommand(NewServeCmd(opts))
	rootCmd.AddCommand(NewBenchmarkCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// environment is what a command needs to run a search.
type environment struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	engine  *search.Engine
	logger  *zap.Logger

	store   *storage.SQLiteStorage
	tracker *tracking.Tracker
}

// load reads config and catalog and builds the engine.
func (o *Options) load() (*environment, error) {
	logger := logging.NewOrNop(o.Debug)

	cfg, err := config.LoadOrCreate(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.ResolvedCatalogPath())
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("tools", cat.Len()),
		zap.Int("categories", len(cat.Categories)),
	)

	engine := search.NewEngine(
		search.WithLogger(logger),
		search.WithScoringConfig(cfg.ScoringConfig()),
	)

	return &environment{
		cfg:     cfg,
		catalog: cat,
		engine:  engine,
		logger:  logger,
	}, nil
}

// close flushes pending history and releases the database.
func (e *environment) close() {
	if e.tracker != nil {
		e.tracker.Stop()
	}
	if e.store != nil {
		e.store.Close()
	}
	_ = e.logger.Sync()
}

// historyStore returns an uninitialized history store, or nil when history
// is disabled in settings.
func (e *environment) historyStore() *storage.SQLiteStorage {
	if e.cfg.Settings.DisableHistory {
		return nil
	}
	return storage.NewStorage(e.cfg.ResolvedHistoryPath(), e.logger)
}

// startTracker starts the background history tracker once.
func (e *environment) startTracker() *tracking.Tracker {
	if e.tracker == nil {
		var s storage.Storage
		if store := e.historyStore(); store != nil {
			e.store = store
			s = store
		}
		e.tracker = tracking.NewTracker(s, e.logger)
	}
	return e.tracker
}

// track records an analytics snapshot in the background.
func (e *environment) track(a search.Analytics) {
	e.startTracker().Track(a)
}
