package handler

import "github.com/arvemy/YUScheduler/backend/internal/service"

// Handler aggregates the HTTP handlers.
type Handler struct {
	Catalog  *CatalogHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(svc.Catalog),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export),
	}
}
