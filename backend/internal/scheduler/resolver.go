package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// candidateSet is the non-empty ordered list of sections still in play for
// one requested course after resolution.
type candidateSet struct {
	course   string
	sections []model.Section
}

// resolve maps each requested course to its candidate sections, recording
// a warning for every course it has to exclude. Rules, in order:
//
//  1. course absent from the catalog      -> excluded, "no section data"
//  2. pinned section not found            -> excluded, "section not found"
//  3. pinned section found                -> that single candidate
//  4. no pin                              -> all sections, catalog order
//  5. candidates conflicting with blocked hours are pruned; a course whose
//     every candidate is pruned is excluded with the conflicting day/slot
//     detail
//
// Courses requested more than once are resolved once; a later duplicate is
// ignored so it cannot double a course inside a schedule.
func resolve(cat *model.Catalog, courses []CourseRequest, blocked []model.BlockedInterval, warns *WarningCollector) []candidateSet {
	var out []candidateSet
	resolved := make(map[string]struct{}, len(courses))

	for _, req := range courses {
		if _, dup := resolved[req.Course]; dup {
			continue
		}
		resolved[req.Course] = struct{}{}

		all, ok := cat.SectionsFor(req.Course)
		if !ok || len(all) == 0 {
			warns.Add(fmt.Sprintf(
				"%s: No section data is available for this term. Please check if the course is offered or try another term.",
				req.Course))
			continue
		}

		candidates := all
		if req.Section != "" {
			pinned, found := findSection(all, req.Section)
			if !found {
				warns.Add(fmt.Sprintf(
					"%s: Requested section %s was not found for this term.",
					req.Course, req.Section))
				continue
			}
			candidates = []model.Section{pinned}
		}

		kept := make([]model.Section, 0, len(candidates))
		blockedHits := make(map[model.Weekday]map[string]struct{})
		for _, sec := range candidates {
			hits := sectionBlockedConflicts(sec, blocked)
			if len(hits) == 0 {
				kept = append(kept, sec)
				continue
			}
			for _, h := range hits {
				if blockedHits[h.Day] == nil {
					blockedHits[h.Day] = make(map[string]struct{})
				}
				blockedHits[h.Day][h.Slot.Label] = struct{}{}
			}
		}

		if len(kept) == 0 {
			warns.Add(fmt.Sprintf(
				"%s: All sections conflict with your blocked hours on: %s. Please unblock these hours to include this course.",
				req.Course, formatByDay(blockedHits)))
			continue
		}

		out = append(out, candidateSet{course: req.Course, sections: kept})
	}

	return out
}

func findSection(sections []model.Section, code string) (model.Section, bool) {
	for _, s := range sections {
		if s.Code == code {
			return s, true
		}
	}
	return model.Section{}, false
}

// formatByDay renders per-day slot sets as
// "Monday: 08:40-09:30, 09:40-10:30; Tuesday: 10:40-11:30",
// days in canonical week order, slots sorted within a day.
func formatByDay(byDay map[model.Weekday]map[string]struct{}) string {
	var parts []string
	for _, day := range model.WeekOrder {
		slots, ok := byDay[day]
		if !ok {
			continue
		}
		labels := make([]string, 0, len(slots))
		for label := range slots {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		parts = append(parts, fmt.Sprintf("%s: %s", day, strings.Join(labels, ", ")))
	}
	return strings.Join(parts, "; ")
}
