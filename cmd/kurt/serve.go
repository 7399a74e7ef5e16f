package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurt-labs/kurt/pkg/api"
	"github.com/kurt-labs/kurt/pkg/cleanup"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/events"
	"github.com/kurt-labs/kurt/pkg/queue"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server and workflow workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := serve(cmd.Context()); err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			return nil
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("Starting kurt server", "pod_id", a.podID)

	// Runs claimed by a previous incarnation of this pod are requeued once
	// at startup, before workers begin claiming.
	if err := queue.CleanupStartupOrphans(ctx, a.db.Client, a.podID); err != nil {
		slog.Error("Startup orphan cleanup failed", "error", err)
	}

	// Streaming: hub with durable catchup, LISTEN connection, publisher.
	hub := events.NewHub(a.eventService, 10*time.Second)
	listener := events.NewNotifyListener(a.dbConfig.DSN(), hub)
	if err := listener.Start(ctx); err != nil {
		return err
	}
	defer listener.Stop(ctx)
	hub.SetListener(listener)

	queueCfg := a.cfg.Queue
	if queueCfg == nil {
		queueCfg = config.DefaultQueueConfig()
	}
	pool := queue.NewWorkerPool(a.podID, a.db.Client, queuePoolConfig(queueCfg), a.runtime.Runner(), a.runtime)
	if err := pool.Start(ctx); err != nil {
		return err
	}

	retention := a.cfg.Retention
	if retention == nil {
		retention = config.DefaultRetentionConfig()
	}
	cleaner := cleanup.NewService(retention, a.db.Client)
	cleaner.Start(ctx)
	defer cleaner.Stop()

	server := api.NewServer(a.db, a.runtime, pool, hub, a.cfg.Server)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	slog.Info("Kurt started", "workers", queueCfg.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil {
			slog.Error("Server error triggered shutdown", "error", err)
		}
	}

	// Workers drain active runs before the HTTP server closes; in-flight
	// requests keep seeing consistent state.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), queueCfg.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be orphan-recovered")
	}

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

// queuePoolConfig maps the TOML queue section onto the worker pool's config.
func queuePoolConfig(cfg *config.QueueConfig) queue.Config {
	return queue.Config{
		WorkerCount:             cfg.WorkerCount,
		MaxConcurrentRuns:       cfg.MaxConcurrentRuns,
		PollInterval:            cfg.PollInterval,
		PollIntervalJitter:      cfg.PollIntervalJitter,
		RunTimeout:              cfg.RunTimeout,
		HeartbeatInterval:       cfg.HeartbeatInterval,
		OrphanDetectionInterval: cfg.OrphanDetectionInterval,
		OrphanThreshold:         cfg.OrphanThreshold,
		OrphanMaxRequeues:       cfg.OrphanMaxRequeues,
	}
}
