package scheduler

import (
	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// MeetingsConflict reports whether two meetings collide: same day and
// overlapping time intervals, per the half-open model.Overlaps formula.
func MeetingsConflict(a, b model.Meeting) bool {
	return a.Day == b.Day && model.Overlaps(a.Start, a.End, b.Start, b.End)
}

// firstConflict returns the first meeting in acc that collides with m.
func firstConflict(m model.Meeting, acc []model.Meeting) (model.Meeting, bool) {
	for _, other := range acc {
		if MeetingsConflict(m, other) {
			return other, true
		}
	}
	return model.Meeting{}, false
}

// sectionBlockedConflicts returns the blocked intervals that collide with
// any meeting of the section. An empty result means the section fits the
// caller's availability.
func sectionBlockedConflicts(sec model.Section, blocked []model.BlockedInterval) []model.BlockedInterval {
	var hits []model.BlockedInterval
	for _, b := range blocked {
		bm := b.Meeting()
		for _, m := range sec.Meetings {
			if MeetingsConflict(m, bm) {
				hits = append(hits, b)
				break
			}
		}
	}
	return hits
}
