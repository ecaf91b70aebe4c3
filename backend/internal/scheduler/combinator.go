package scheduler

import (
	"errors"
	"fmt"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// ErrTooManyCombinations means the request would explore more section
// combinations than the configured ceiling allows. It is fatal for the
// request and distinct from "no schedules found": the caller must be able
// to tell "too constrained" apart from "too expensive to compute".
var ErrTooManyCombinations = errors.New("too many section combinations to explore")

// conflictPair records one concrete collision seen while searching, used
// for the diagnostics shown when no schedule survives.
type conflictPair struct {
	course1, section1, time1 string
	course2, section2, time2 string
	day                      model.Weekday
}

// ownedMeeting ties an accumulated meeting back to the section that
// contributed it, so rejected candidates can name what they collided with.
type ownedMeeting struct {
	course  string
	section string
	meeting model.Meeting
}

// enumerator walks the candidate lists depth-first, course by course in
// request order, extending a partial schedule only with sections that fit
// the meetings accumulated so far and the blocked set. A branch dies on
// its first conflict, which prunes every combination under it; the set of
// schedules found is identical to filtering the full Cartesian product.
type enumerator struct {
	candidates []candidateSet
	blocked    []model.Meeting
	limit      int
	explored   int

	schedules []Schedule
	seen      map[string]struct{}

	conflicts    []conflictPair
	conflictSeen map[conflictPair]struct{}
}

// enumerate returns every conflict-free combination in first-found order,
// plus the deduplicated collisions encountered along the way.
func enumerate(candidates []candidateSet, blocked []model.BlockedInterval, limit int) ([]Schedule, []conflictPair, error) {
	blockedMeetings := make([]model.Meeting, 0, len(blocked))
	for _, b := range blocked {
		blockedMeetings = append(blockedMeetings, b.Meeting())
	}

	e := &enumerator{
		candidates:   candidates,
		blocked:      blockedMeetings,
		limit:        limit,
		seen:         make(map[string]struct{}),
		conflictSeen: make(map[conflictPair]struct{}),
	}

	if err := e.walk(0, nil, nil); err != nil {
		return nil, nil, err
	}
	return e.schedules, e.conflicts, nil
}

func (e *enumerator) walk(depth int, acc []ownedMeeting, entries []Entry) error {
	if depth == len(e.candidates) {
		s := Schedule{Entries: append([]Entry(nil), entries...)}
		if _, dup := e.seen[s.key()]; !dup {
			e.seen[s.key()] = struct{}{}
			e.schedules = append(e.schedules, s)
		}
		return nil
	}

	set := e.candidates[depth]
	for _, sec := range set.sections {
		e.explored++
		if e.explored > e.limit {
			return fmt.Errorf("%w: ceiling of %d exceeded", ErrTooManyCombinations, e.limit)
		}

		if e.fits(set.course, sec, acc) {
			accNext := acc
			for _, m := range sec.Meetings {
				accNext = append(accNext, ownedMeeting{course: set.course, section: sec.Code, meeting: m})
			}
			if err := e.walk(depth+1, accNext, append(entries, Entry{Course: set.course, Section: sec})); err != nil {
				return err
			}
		}
	}
	return nil
}

// fits tests a candidate section against the blocked set and the meetings
// accumulated by earlier courses, recording the collision when it fails.
func (e *enumerator) fits(course string, sec model.Section, acc []ownedMeeting) bool {
	for _, m := range sec.Meetings {
		if _, hit := firstConflict(m, e.blocked); hit {
			// Unreachable for resolver-pruned candidates, kept so the
			// combination check never trusts its inputs about availability.
			return false
		}
		for _, owned := range acc {
			if MeetingsConflict(m, owned.meeting) {
				e.recordConflict(owned, course, sec.Code, m)
				return false
			}
		}
	}
	return true
}

func (e *enumerator) recordConflict(owned ownedMeeting, course, section string, m model.Meeting) {
	p := conflictPair{
		course1:  owned.course,
		section1: owned.section,
		time1:    owned.meeting.StartRaw + "-" + owned.meeting.EndRaw,
		course2:  course,
		section2: section,
		time2:    m.StartRaw + "-" + m.EndRaw,
		day:      m.Day,
	}
	if _, dup := e.conflictSeen[p]; dup {
		return
	}
	e.conflictSeen[p] = struct{}{}
	e.conflicts = append(e.conflicts, p)
}
