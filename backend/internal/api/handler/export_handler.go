package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/arvemy/YUScheduler/backend/internal/dto"
	"github.com/arvemy/YUScheduler/backend/internal/service"
	"github.com/arvemy/YUScheduler/backend/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportXLSX downloads one generated schedule as a timetable workbook.
// POST /api/export/schedule.xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request. Send the schedule to export.")
		return
	}

	buf, filename, err := h.exportSvc.ExportXLSX(&req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, xlsxContentType, filename, buf.Bytes())
}

// ExportICS downloads one generated schedule as an iCalendar file.
// POST /api/export/schedule.ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request. Send the schedule to export.")
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(&req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, icsContentType, filename, buf.Bytes())
}

func writeAttachment(c *gin.Context, contentType, filename string, body []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportInvalidSchedule):
		response.BadRequest(c, "The schedule to export is invalid.")
	default:
		response.InternalError(c)
	}
}
