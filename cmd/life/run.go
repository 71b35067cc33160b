package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/logging"
	"lifegrid/internal/metrics"
)

var runFlags = app.NewFlags()

var runCmd = &cobra.Command{
	Use:   "run INPUT OUTPUT",
	Short: "Simulate the grid in INPUT and write every generation to OUTPUT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runFlags.Config(cmd.Flags())
		if err != nil {
			return err
		}
		lvl, _ := cfg.Level()
		logger := logging.New(lvl)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rec := metrics.NewRecorder()
		if cfg.MetricsAddr != "" {
			_, shutdown, err := serveMetrics(cfg.MetricsAddr, rec, logger)
			if err != nil {
				return err
			}
			defer shutdown()
		}

		if _, err := app.New(cfg, logger, rec).RunFiles(ctx, args[0], args[1]); err != nil {
			logger.Error("run failed", "input", args[0], "output", args[1], "error", err)
			return err
		}
		return nil
	},
}

// serveMetrics listens on addr and serves the recorder on /metrics until the
// returned function is called. It returns the bound address.
func serveMetrics(addr string, rec *metrics.Recorder, logger *slog.Logger) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	bound := ln.Addr().String()
	logger.Info("serving metrics", "addr", bound)

	return bound, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func init() {
	runFlags.Bind(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}
