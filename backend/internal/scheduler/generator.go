package scheduler

import (
	"fmt"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// Engine generates conflict-free timetables for one term catalog. It is a
// pure synchronous computation over immutable inputs: it never mutates the
// catalog, performs no I/O, and keeps no state between calls, so one Engine
// may serve concurrent requests.
type Engine struct {
	maxCombinations int
}

// New creates an Engine with the given combination-exploration ceiling.
func New(maxCombinations int) *Engine {
	return &Engine{maxCombinations: maxCombinations}
}

// Generate runs the full pipeline: resolve the requested courses against
// the catalog, enumerate conflict-free section combinations, and assemble
// the result with its grid metadata and accumulated warnings.
//
// A request either yields a Result (possibly with zero schedules) or fails
// with ErrTooManyCombinations; per-course problems never fail the request,
// they exclude the course and leave a warning.
func (e *Engine) Generate(cat *model.Catalog, req Request) (*Result, error) {
	warns := NewWarningCollector()

	candidates := resolve(cat, req.Courses, req.Blocked, warns)

	// Terminal summary: only when every requested course was excluded.
	// The combination step is skipped entirely.
	if len(candidates) == 0 {
		warns.Add(terminalWarning(req.Blocked))
		return &Result{
			Schedules:  nil,
			Warnings:   warns.Messages(),
			TimeSlots:  model.SlotLabels(),
			DaysOfWeek: weekStrings(model.WeekOrder),
		}, nil
	}

	schedules, conflicts, err := enumerate(candidates, req.Blocked, e.maxCombinations)
	if err != nil {
		return nil, err
	}

	return assemble(schedules, conflicts, req, warns), nil
}

func terminalWarning(blocked []model.BlockedInterval) string {
	if len(blocked) == 0 {
		return "All selected courses were excluded. Please review your course selection or try a different term."
	}

	byDay := make(map[model.Weekday]map[string]struct{})
	for _, b := range blocked {
		if byDay[b.Day] == nil {
			byDay[b.Day] = make(map[string]struct{})
		}
		byDay[b.Day][b.Slot.Label] = struct{}{}
	}
	return fmt.Sprintf(
		"All selected courses were excluded due to conflicts with your blocked hours. Currently blocked: %s. Try unblocking these hours or selecting different courses.",
		formatByDay(byDay))
}
