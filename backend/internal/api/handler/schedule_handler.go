package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/dto"
	"github.com/arvemy/YUScheduler/backend/internal/service"
	"github.com/arvemy/YUScheduler/backend/pkg/response"
)

// ScheduleHandler serves schedule generation.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GenerateSchedule enumerates every conflict-free timetable for the
// requested courses.
// POST /api/generate_schedule
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request. Select at least one course.")
		return
	}

	result, err := h.scheduleSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		response.BadRequest(c, "Invalid request. Check the selected courses and blocked hours.")
	case errors.Is(err, catalog.ErrNoTermData):
		response.NotFound(c, "No course data is available for the requested term.")
	case errors.Is(err, service.ErrTooManyCombinations):
		response.UnprocessableEntity(c, "Too many possible combinations. Pin sections for some courses and try again.")
	default:
		response.InternalError(c)
	}
}
