package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/config"
	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/repository"
	"github.com/arvemy/YUScheduler/backend/pkg/database"
	applogger "github.com/arvemy/YUScheduler/backend/pkg/logger"
)

// importer loads term JSON files into the course_meetings table, so a
// deployment with catalog.source=postgres serves the same data the file
// source reads directly:
//
//	importer 2024_2025spring.json [more term files...]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <term-file.json> [more term files...]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connecting to database failed", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrapping sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("running migrations failed", zap.Error(err))
	}

	repo := repository.NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, path := range os.Args[1:] {
		term, rows, err := catalog.ImportTermFile(ctx, path, repo.CourseMeeting)
		if err != nil {
			logger.Fatal("import failed", zap.String("file", path), zap.Error(err))
		}
		logger.Info("term imported",
			zap.String("file", path),
			zap.String("term", term),
			zap.Int("rows", rows))
	}
}
