package dto

import "fmt"

// ExportScheduleRequest asks for one previously generated schedule to be
// serialized. The client sends the chosen schedule back as-is; the server
// keeps no request state to look it up by.
type ExportScheduleRequest struct {
	Term     string           `json:"term"`
	Schedule ScheduleResponse `json:"schedule" binding:"required"`
}

// Validate checks the schedule carries at least one section with meetings.
func (r *ExportScheduleRequest) Validate() error {
	if len(r.Schedule.Sections) == 0 {
		return fmt.Errorf("schedule must contain at least one section")
	}
	for i, s := range r.Schedule.Sections {
		if s.Course == "" {
			return fmt.Errorf("schedule.sections[%d]: course must not be empty", i)
		}
		if len(s.Meetings) == 0 {
			return fmt.Errorf("schedule.sections[%d]: meetings must not be empty", i)
		}
	}
	return nil
}
