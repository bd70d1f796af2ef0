package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolbox-search/internal/search"
)

const shellPrompt = "search> "

const shellHelp = `Type a query to search. Commands:
  :recent            show recent searches
  :clear             forget recent searches
  :suggest <prefix>  suggest completions
  :help              show this help
  :quit              exit
`

// NewShellCmd creates the 'shell' command: an interactive search loop that
// remembers recent queries.
func NewShellCmd(opts *Options) *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive search prompt",
		Long: `Read queries line by line and print ranked results for each.
Recent queries are kept for the session (up to 10, newest first).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts, maxResults)
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 0, "Maximum results per query (default from settings.maxResults)")

	return cmd
}

func runShell(cmd *cobra.Command, opts *Options, maxResults int) error {
	env, err := opts.load()
	if err != nil {
		return err
	}
	defer env.close()

	if maxResults <= 0 {
		maxResults = env.cfg.Settings.MaxResults
	}
	filters := &search.Filters{MaxResults: maxResults}

	session := search.NewSession(env.engine)
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, shellHelp)
	for {
		fmt.Fprint(out, shellPrompt)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := runShellCommand(out, env, session, line); quit {
				return nil
			}
			continue
		}

		resp := session.Search(env.catalog, line, filters)
		env.track(resp.Analytics)
		printResults(out, env.catalog, line, resp.Results)
	}
}

// runShellCommand handles a ':' command and reports whether the shell should exit.
func runShellCommand(out io.Writer, env *environment, session *search.Session, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":recent":
		recent := session.Recent().Get()
		if len(recent) == 0 {
			fmt.Fprintln(out, "No recent searches.")
			break
		}
		for i, q := range recent {
			fmt.Fprintf(out, "%3d. %s\n", i+1, q)
		}
	case ":clear":
		session.Recent().Clear()
		fmt.Fprintln(out, "Recent searches cleared.")
	case ":suggest":
		for _, s := range search.Suggest(arg, env.catalog.Items, env.cfg.Settings.SuggestionLimit) {
			fmt.Fprintln(out, s)
		}
	case ":help":
		fmt.Fprint(out, shellHelp)
	default:
		fmt.Fprintf(out, "Unknown command %s. Type :help for commands.\n", name)
	}
	return false
}
