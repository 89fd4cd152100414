package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/holiday-engine/api"
	"github.com/warp/holiday-engine/store/sqlite"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:        "serve",
		Short:      "Start the holiday HTTP API",
		Long:       "This command opens the custom holiday database and serves the holiday API until SIGINT or SIGTERM.",
		Aliases:    []string{"s"},
		SuggestFor: []string{"start", "up"},
		Example:    "holidays serve --config /etc/holidays.yml --listen :3000",
		Args:       cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen != "" {
				a.cfg.Listen = listen
			}
			return a.serve()
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "override the configured listen address")
	return cmd
}

// serve runs the HTTP server and shuts it down gracefully:
//  1. Stop accepting new connections
//  2. Wait for active requests to complete (30s timeout)
//  3. Close database connection
func (a *app) serve() error {
	store, err := sqlite.New(a.cfg.Database, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	handler := api.NewHandler(store, a.cfg.Calendar, a.logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         a.cfg.Listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			zap.String("listen", a.cfg.Listen),
			zap.String("database", a.cfg.Database))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case sig := <-quit:
		a.logger.Info("shutting down server", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	a.logger.Info("server stopped")
	return nil
}
