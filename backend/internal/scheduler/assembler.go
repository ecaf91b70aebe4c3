package scheduler

import (
	"fmt"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// maxConflictWarnings bounds how many concrete collision messages are
// shown when no schedule survives; the rest collapse into a count.
const maxConflictWarnings = 3

// assemble packages the accepted schedules into a Result and computes the
// grid metadata: which canonical slot labels and weekdays the accepted
// schedules actually touch. With no accepted schedule the full default
// grid is returned so the client still has something to draw, and the
// collisions seen during the search are turned into diagnostics.
func assemble(schedules []Schedule, conflicts []conflictPair, req Request, warns *WarningCollector) *Result {
	if len(schedules) == 0 {
		explainEmpty(conflicts, req, warns)
	}

	return &Result{
		Schedules:  schedules,
		Warnings:   warns.Messages(),
		TimeSlots:  usedSlots(schedules),
		DaysOfWeek: usedDays(schedules),
	}
}

func explainEmpty(conflicts []conflictPair, req Request, warns *WarningCollector) {
	switch {
	case len(conflicts) > 0:
		for i, p := range conflicts {
			if i == maxConflictWarnings {
				warns.Add(fmt.Sprintf("... and %d more conflicts", len(conflicts)-maxConflictWarnings))
				break
			}
			warns.Add(fmt.Sprintf(
				"Conflict on %s: %s (Section %s, %s) overlaps with %s (Section %s, %s)",
				p.day, p.course1, p.section1, p.time1, p.course2, p.section2, p.time2))
		}
		warns.Add("No valid schedule could be generated due to course time conflicts. Try selecting different course sections or fewer courses.")
	case len(req.Blocked) > 0:
		warns.Add("No valid schedule could be generated due to conflicts with your blocked hours. Try unblocking some hours or selecting different courses.")
	default:
		warns.Add("No valid schedule could be generated. Try selecting different course combinations.")
	}
}

// usedSlots returns the canonical labels whose interval intersects at
// least one meeting of any accepted schedule, in grid order.
func usedSlots(schedules []Schedule) []string {
	if len(schedules) == 0 {
		return model.SlotLabels()
	}

	var labels []string
	for _, slot := range model.CanonicalSlots {
		if slotUsed(slot, schedules) {
			labels = append(labels, slot.Label)
		}
	}
	return labels
}

func slotUsed(slot model.Slot, schedules []Schedule) bool {
	for _, s := range schedules {
		for _, e := range s.Entries {
			for _, m := range e.Section.Meetings {
				if model.Overlaps(slot.Start, slot.End, m.Start, m.End) {
					return true
				}
			}
		}
	}
	return false
}

// usedDays returns the weekdays holding at least one meeting of any
// accepted schedule, in canonical week order; the full week when none.
func usedDays(schedules []Schedule) []string {
	if len(schedules) == 0 {
		return weekStrings(model.WeekOrder)
	}

	present := make(map[model.Weekday]struct{})
	for _, s := range schedules {
		for _, e := range s.Entries {
			for _, m := range e.Section.Meetings {
				present[m.Day] = struct{}{}
			}
		}
	}

	var days []model.Weekday
	for _, d := range model.WeekOrder {
		if _, ok := present[d]; ok {
			days = append(days, d)
		}
	}
	return weekStrings(days)
}

func weekStrings(days []model.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}
