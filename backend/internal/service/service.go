package service

import (
	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/config"
	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/scheduler"
)

// Service aggregates the business services.
type Service struct {
	Catalog  CatalogService
	Schedule ScheduleService
	Export   ExportService
}

// NewService wires the services onto the shared catalog provider.
func NewService(cfg *config.Config, provider catalog.Provider, logger *zap.Logger) *Service {
	engine := scheduler.New(cfg.Scheduler.MaxCombinations)
	return &Service{
		Catalog:  NewCatalogService(provider, logger),
		Schedule: NewScheduleService(provider, engine, logger),
		Export:   NewExportService(logger),
	}
}
