package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arvemy/YUScheduler/backend/config"
	"github.com/arvemy/YUScheduler/backend/internal/api/handler"
	"github.com/arvemy/YUScheduler/backend/internal/api/router"
	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/repository"
	"github.com/arvemy/YUScheduler/backend/internal/service"
	"github.com/arvemy/YUScheduler/backend/pkg/database"
	applogger "github.com/arvemy/YUScheduler/backend/pkg/logger"
	"github.com/arvemy/YUScheduler/backend/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Build the catalog provider
	provider, db, err := buildProvider(cfg, logger)
	if err != nil {
		logger.Fatal("building catalog provider failed", zap.Error(err))
	}

	// 4. Connect Redis (optional: the rate limiter degrades to unlimited)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Dependency injection: Provider → Service → Handler
	svc := service.NewService(cfg, catalog.NewCache(provider), logger)
	h := handler.NewHandler(svc)

	// 6. Routes
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 8. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("stopped")
}

// buildProvider picks the catalog source. The file provider reads term JSON
// files from a directory; the postgres provider reads the course_meetings
// table and runs migrations on startup. The returned *gorm.DB is nil for the
// file source.
func buildProvider(cfg *config.Config, logger *zap.Logger) (catalog.Provider, *gorm.DB, error) {
	if cfg.Catalog.Source == "file" {
		logger.Info("using file catalog", zap.String("dir", cfg.Catalog.TermsDir))
		return catalog.NewFileProvider(cfg.Catalog.TermsDir, logger), nil, nil
	}

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	repo := repository.NewRepository(db)
	logger.Info("using postgres catalog")
	return catalog.NewDBProvider(repo.CourseMeeting, logger), db, nil
}
