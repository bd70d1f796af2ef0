/*
Package main is the entry point for the toolbox-search CLI.

toolbox-search ranks a catalog of utility tools against free-text queries,
tolerating typos and supporting filters and alternative orderings.

Usage:
  toolbox-search [command]

Available Commands:
  search      Search the tool catalog
  suggest     Suggest completions for a partial query
  list        List catalog tools
  shell       Interactive search prompt
  history     Inspect or prune recorded search analytics
  config      Create or inspect the configuration file
  version     Show version information

Examples:
  # Rank tools for a query
  toolbox-search search "image crop"

  # Highest rated finance tools
  toolbox-search search calculator --category finance --sort rating

  # Interactive prompt
  toolbox-search shell
*/
package main

import (
	"fmt"
	"os"

	"github.com/khanglvm/toolbox-search/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
