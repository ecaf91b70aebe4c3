package scheduler

import (
	"sort"
	"strings"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// CourseRequest is one requested course, optionally pinned to a single
// section. A pin is a hard constraint: if the pinned section does not
// exist, the course is excluded rather than falling back to all sections.
type CourseRequest struct {
	Course  string
	Section string
}

// Request is one validated schedule-generation request. Input validation
// (shape, day names, slot labels) happens before a Request is built; the
// engine assumes it holds well-formed values.
type Request struct {
	Courses []CourseRequest
	Blocked []model.BlockedInterval
}

// Entry is one chosen section within a schedule.
type Entry struct {
	Course  string
	Section model.Section
}

// Schedule is one complete, conflict-free selection: exactly one section
// per course that survived resolution. Entries keep the request's course
// order.
type Schedule struct {
	Entries []Entry
}

// key returns an order-independent identity for deduplication: two
// schedules are the same iff their (course, section) sets are equal.
func (s Schedule) key() string {
	pairs := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		pairs = append(pairs, e.Course+"\x00"+e.Section.Code)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\x01")
}

// Result is the engine's answer for one request.
type Result struct {
	Schedules  []Schedule
	Warnings   []string
	TimeSlots  []string
	DaysOfWeek []string
}
