// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/router"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the election API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, slog.Default())
	},
}

func serve(ctx context.Context, cfg cliparse.Config, logger *slog.Logger) error {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	logger.Info("Database schema ready", "type", cfg.DatabaseType)

	rec := metrics.NewRecorder()
	eventLog := db.NewEventLog(conn, logger)
	el, err := eventLog.Restore(ctx, cfg.Admin(), []election.Sink{rec},
		election.WithLogger(logger))
	if err != nil {
		return err
	}
	rec.Sync(el)

	server := &http.Server{
		Handler:           middleware.CORS(router.NewRouter(el, cfg, rec)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", "port", cfg.Port, "admin", cfg.AdminAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if ferr := eventLog.Flush(flushCtx); ferr != nil {
		logger.Error("Unwritten election events at shutdown", "error", ferr, "pending", eventLog.Pending())
	}

	logger.Info("Server closed", "error", err, "status", el.Status().String())
	return err
}
