// ABOUTME: Root cobra command shared by every subcommand
// ABOUTME: Loads configuration from an optional file plus environment and builds the logger

package main

import (
	"fmt"

	"gist-search-api/infrastructure/logger/logrus"
	"gist-search-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootOptions carries global flags and what PersistentPreRunE derives from them
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gistsearch",
		Short: "Search a GitHub user's public gists with a regular expression",
		Long: `gistsearch lists a user's public gists, fetches each gist's files and
reports the gists whose content matches a regular expression.

Run 'gistsearch serve' for the HTTP API or 'gistsearch search' for a one-off
query. Settings come from environment variables (PORT, CACHE_TYPE,
HTTP_TIMEOUT, ...) optionally layered over a --config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Override LOG_FORMAT (text, json)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))

	return cmd
}

// load reads and validates configuration, then builds the logger
func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	o.cfg = cfg
	o.logger = logrus.NewLoggerWithOptions(logrus.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	return nil
}
