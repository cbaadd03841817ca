package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hangout_backend/internal/archive"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting archive worker", "env", cfg.Env, "file", cfg.GetArchiveFilePath())

	if cfg.GetRedisURL() == "" {
		panic("REDIS_URL is required for the archive worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := archive.NewStore(cfg.GetArchiveFilePath())

	worker, err := archive.NewWorker(cfg, store, log)
	if err != nil {
		log.Error("failed to initialize archive worker", "error", err)
		panic("failed to initialize archive worker: " + err.Error())
	}

	done := make(chan error, 1)
	go func() {
		done <- worker.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, stopping worker")
		worker.Shutdown()
	case err := <-done:
		if err != nil {
			log.Error("worker error", "error", err)
			panic("worker error: " + err.Error())
		}
	}
}
