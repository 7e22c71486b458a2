// ABOUTME: serve command wires every component together and runs the HTTP server
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gist-search-api/api"
	"gist-search-api/api/middleware"
	"gist-search-api/core/interfaces"
	gistsearch "gist-search-api/gistsearch-lib"
	"gist-search-api/infrastructure/metrics"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 30 * time.Second
	rateWindow      = time.Minute
)

const banner = `
   _____ _     __     _____                      __
  / ___/(_)___/ /_   / ___/___  ____ ___________/ /_
 / / __/ / ___/ __/  \__ \/ _ \/ __ '/ ___/ ___/ __ \
/ /_/ / (__  ) /_   ___/ /  __/ /_/ / /  / /__/ / / /
\____/_/____/\__/  /____/\___/\__,_/_/   \___/_/ /_/
`

func newServeCmd(root *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Routes:
  GET  /ping            liveness check
  POST /api/v1/search   legacy search
  POST /api/v2/search   search with skipped gists and HTTP error codes
  GET  /metrics         Prometheus metrics
  GET  /docs            API documentation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				root.cfg.Server.Port = port
			}
			fmt.Fprint(cmd.OutOrStdout(), banner+"\n")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", ":"+root.cfg.Server.Port)
			if err != nil {
				return fmt.Errorf("failed to listen on port %s: %w", root.cfg.Server.Port, err)
			}
			return runServer(ctx, root, ln)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Override PORT")

	return cmd
}

// runServer serves on ln until ctx is done, then drains in-flight requests
func runServer(ctx context.Context, root *rootOptions, ln net.Listener) error {
	cfg := root.cfg
	logger := root.logger

	logger.Info("Starting Gist Search API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"cache_ttl":   cfg.Cache.TTL.String(),
		"concurrency": cfg.Search.Concurrency,
	})

	collector := metrics.New()
	client, err := gistsearch.NewClient(append(
		gistsearch.OptionsFromConfig(cfg, logger),
		gistsearch.WithMetrics(collector),
	)...)
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("failed to create search client: %w", err)
	}
	defer closeAndLog(client, "search client", logger)

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, rateWindow)
	defer limiter.Close()

	router := api.NewRouter(api.APIConfig{
		Logger:      logger,
		RateLimiter: limiter,
		Metrics:     collector,
	}, client.SearchService())

	// A search fans out into many upstream calls, so writes get more room
	// than reads
	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": ln.Addr().String(),
		})
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

func closeAndLog(c io.Closer, what string, logger interfaces.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close "+what, map[string]interface{}{
			"error": err.Error(),
		})
	}
}
