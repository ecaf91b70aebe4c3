package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/service"
	"github.com/arvemy/YUScheduler/backend/pkg/response"
)

// CatalogHandler serves the term catalog endpoints.
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListTerms lists the available terms, newest first.
// GET /api/terms
func (h *CatalogHandler) ListTerms(c *gin.Context) {
	terms, err := h.catalogSvc.Terms(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"terms": terms})
}

// ListCourses groups the term's courses by department prefix.
// GET /api/courses?term=xxx
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalogSvc.Courses(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, courses)
}

// ListSections maps the term's courses to their section ids.
// GET /api/sections?term=xxx
func (h *CatalogHandler) ListSections(c *gin.Context) {
	sections, err := h.catalogSvc.Sections(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, sections)
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNoTermData) {
		response.NotFound(c, "No course data is available for the requested term.")
		return
	}
	response.InternalError(c)
}
