package dto

import (
	"fmt"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// ── Schedule generation ──

// CourseSelection is one requested course with an optional section pin.
type CourseSelection struct {
	Course  string `json:"course" binding:"required"`
	Section string `json:"section"`
}

// BlockedHour is one user-declared unavailable day/slot pair.
type BlockedHour struct {
	Day  string `json:"day" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// GenerateScheduleRequest is the schedule-generation payload. Shape errors
// are rejected by binding; value errors (bad day names, bad slot labels) by
// Validate, both before any resolution work starts.
type GenerateScheduleRequest struct {
	Courses      []CourseSelection `json:"courses" binding:"required,min=1,dive"`
	BlockedHours []BlockedHour     `json:"blocked_hours" binding:"omitempty,dive"`
	Term         string            `json:"term"`
}

// Validate checks the value-level rules binding tags cannot express.
func (r *GenerateScheduleRequest) Validate() error {
	for i, c := range r.Courses {
		if c.Course == "" {
			return fmt.Errorf("courses[%d]: course must not be empty", i)
		}
	}
	for i, b := range r.BlockedHours {
		if _, err := model.ParseWeekday(b.Day); err != nil {
			return fmt.Errorf("blocked_hours[%d]: %v", i, err)
		}
		if _, err := model.ParseSlotLabel(b.Slot); err != nil {
			return fmt.Errorf("blocked_hours[%d]: %v", i, err)
		}
	}
	return nil
}

// MeetingResponse is one weekly meeting in a response. The key casing
// echoes the registrar export the term files carry, which the frontend
// renders directly.
type MeetingResponse struct {
	Day       string `json:"Day"`
	StartTime string `json:"Start Time"`
	EndTime   string `json:"End Time"`
	Classroom string `json:"Classroom"`
}

// ScheduleSectionResponse is one chosen section within a schedule.
type ScheduleSectionResponse struct {
	Course   string            `json:"course"`
	Section  string            `json:"section"`
	Meetings []MeetingResponse `json:"meetings"`
}

// ScheduleResponse is one complete conflict-free schedule.
type ScheduleResponse struct {
	Sections []ScheduleSectionResponse `json:"sections"`
}

// GenerateScheduleResponse is the full generation answer.
type GenerateScheduleResponse struct {
	Warnings   []string           `json:"warnings"`
	Schedules  []ScheduleResponse `json:"schedules"`
	TimeSlots  []string           `json:"time_slots"`
	DaysOfWeek []string           `json:"days_of_week"`
}
