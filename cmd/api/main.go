package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hangout_backend/internal/archive"
	"hangout_backend/internal/auth"
	"hangout_backend/internal/gps"
	apphttp "hangout_backend/internal/http"
	"hangout_backend/internal/http/router"
	"hangout_backend/internal/places"
	"hangout_backend/internal/webui"
	"hangout_backend/platform/cache"
	"hangout_backend/platform/config"
	"hangout_backend/platform/db"
	"hangout_backend/platform/logger"
	"hangout_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	recommendationCache, err := cache.New(cfg, cfg.GetCacheTTL())
	if err != nil {
		log.Error("failed to initialize cache", "error", err)
		panic("failed to initialize cache: " + err.Error())
	}
	if recommendationCache == nil {
		log.Warn("REDIS_URL not configured; recommendation caching disabled")
	} else {
		defer func() {
			_ = recommendationCache.Close()
		}()
	}

	archiver, closeArchiver := initArchiver(cfg, log)
	if closeArchiver != nil {
		defer closeArchiver()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	yelpClient := places.NewYelpClient(cfg, log)
	if !cfg.IsYelpEnabled() {
		log.Warn("YELP_API_KEY not configured; restaurant search disabled")
	}
	googleClient := places.NewGoogleClient(cfg, log)
	if !cfg.IsGooglePlacesEnabled() {
		log.Warn("GOOGLE_MAPS_API_KEY not configured; activity search disabled")
	}
	recommender := places.NewService(yelpClient, googleClient, log)

	archiveFile := archive.NewStore(cfg.GetArchiveFilePath())

	authModule := auth.NewModule(pool, cfg, log, val)
	gpsModule := gps.NewModule(pool, recommender, recommendationCache, archiver, archiveFile, cfg, log, val)
	webuiModule := webui.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			gpsModule,
			webuiModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initArchiver returns nil when Redis is not configured so result archiving
// degrades to a no-op instead of blocking request processing.
func initArchiver(cfg config.ArchiveConfig, log *logger.Logger) (archive.Archiver, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; result archiving disabled")
		return nil, nil
	}

	client, err := archive.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize archive client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
