package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/catalog"
	"github.com/arvemy/YUScheduler/backend/internal/dto"
	"github.com/arvemy/YUScheduler/backend/internal/model"
	"github.com/arvemy/YUScheduler/backend/internal/scheduler"
)

// ── Schedule module business errors ──

var (
	// ErrInvalidRequest means the payload failed value-level validation.
	ErrInvalidRequest = errors.New("invalid schedule request")
	// ErrTooManyCombinations mirrors the engine's ceiling error so the
	// handler layer never imports the engine package directly.
	ErrTooManyCombinations = scheduler.ErrTooManyCombinations
)

// ScheduleService runs the schedule-generation pipeline for the API layer.
type ScheduleService interface {
	// Generate enumerates every conflict-free timetable for the request.
	Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

type scheduleService struct {
	provider catalog.Provider
	engine   *scheduler.Engine
	logger   *zap.Logger
}

// NewScheduleService creates a ScheduleService over the catalog provider
// and engine.
func NewScheduleService(provider catalog.Provider, engine *scheduler.Engine, logger *zap.Logger) ScheduleService {
	return &scheduleService{provider: provider, engine: engine, logger: logger}
}

// Generate validates the payload, loads the term catalog and runs the
// engine. The request either fails before resolution (invalid input,
// missing term data, combination ceiling) or returns a complete result;
// per-course problems surface as warnings inside the result.
func (s *scheduleService) Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	engineReq, err := buildEngineRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	cat, err := s.provider.Load(ctx, req.Term)
	if err != nil {
		if errors.Is(err, catalog.ErrNoTermData) {
			return nil, err
		}
		s.logger.Error("loading catalog failed", zap.String("term", req.Term), zap.Error(err))
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	result, err := s.engine.Generate(cat, engineReq)
	if err != nil {
		if errors.Is(err, scheduler.ErrTooManyCombinations) {
			s.logger.Warn("combination ceiling exceeded",
				zap.String("term", cat.Term()),
				zap.Int("courses", len(req.Courses)))
			return nil, err
		}
		s.logger.Error("schedule generation failed", zap.Error(err))
		return nil, fmt.Errorf("generating schedules: %w", err)
	}

	s.logger.Info("schedules generated",
		zap.String("term", cat.Term()),
		zap.Int("requested_courses", len(req.Courses)),
		zap.Int("schedules", len(result.Schedules)),
		zap.Int("warnings", len(result.Warnings)))

	return toResponse(result), nil
}

func buildEngineRequest(req *dto.GenerateScheduleRequest) (scheduler.Request, error) {
	courses := make([]scheduler.CourseRequest, 0, len(req.Courses))
	for _, c := range req.Courses {
		courses = append(courses, scheduler.CourseRequest{Course: c.Course, Section: c.Section})
	}

	blocked := make([]model.BlockedInterval, 0, len(req.BlockedHours))
	for _, b := range req.BlockedHours {
		interval, err := model.NewBlockedInterval(b.Day, b.Slot)
		if err != nil {
			return scheduler.Request{}, err
		}
		blocked = append(blocked, interval)
	}

	return scheduler.Request{Courses: courses, Blocked: blocked}, nil
}

func toResponse(result *scheduler.Result) *dto.GenerateScheduleResponse {
	schedules := make([]dto.ScheduleResponse, 0, len(result.Schedules))
	for _, s := range result.Schedules {
		sections := make([]dto.ScheduleSectionResponse, 0, len(s.Entries))
		for _, e := range s.Entries {
			meetings := make([]dto.MeetingResponse, 0, len(e.Section.Meetings))
			for _, m := range e.Section.Meetings {
				meetings = append(meetings, dto.MeetingResponse{
					Day:       string(m.Day),
					StartTime: m.StartRaw,
					EndTime:   m.EndRaw,
					Classroom: m.Classroom,
				})
			}
			sections = append(sections, dto.ScheduleSectionResponse{
				Course:   e.Course,
				Section:  e.Section.Code,
				Meetings: meetings,
			})
		}
		schedules = append(schedules, dto.ScheduleResponse{Sections: sections})
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &dto.GenerateScheduleResponse{
		Warnings:   warnings,
		Schedules:  schedules,
		TimeSlots:  result.TimeSlots,
		DaysOfWeek: result.DaysOfWeek,
	}
}
