// ABOUTME: search command runs one gist search from the terminal
// ABOUTME: Prints matching gist URLs, or the whole result as JSON

package main

import (
	"encoding/json"
	"fmt"

	gistsearch "gist-search-api/gistsearch-lib"
	"gist-search-api/infrastructure/logger/logrus"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	json    bool
	noCache bool
	verbose bool
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <username> <pattern>",
		Short: "Search one user's public gists",
		Long: `Search one user's public gists and print the URL of every gist whose
content matches the pattern, in listing order.

The pattern uses RE2 syntax and matches anywhere in a file.

Examples:
  gistsearch search octocat 'hello\s+world'
  gistsearch search octocat '(?i)todo' --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Skip the response cache")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, username, pattern string, opts searchOptions) error {
	// Logs go to stderr so stdout stays clean for piping
	level := "warn"
	if opts.verbose {
		level = root.cfg.Log.Level
	}
	logger := logrus.NewLoggerWithOptions(logrus.Options{
		Level:  level,
		Format: root.cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	options := gistsearch.OptionsFromConfig(root.cfg, logger)
	if opts.noCache {
		options = append(options, gistsearch.WithoutCache())
	}

	client, err := gistsearch.NewClient(options...)
	if err != nil {
		return err
	}
	defer closeAndLog(client, "search client", logger)

	result, err := client.Search(cmd.Context(), username, pattern)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, url := range result.Matches {
		fmt.Fprintln(out, url)
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", s.ID, s.Reason)
	}
	return nil
}
