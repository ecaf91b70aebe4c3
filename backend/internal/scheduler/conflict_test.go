package scheduler

import (
	"testing"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

func mustMeeting(t *testing.T, day model.Weekday, start, end string) model.Meeting {
	t.Helper()
	m, err := model.NewMeeting(day, start, end, "M101")
	if err != nil {
		t.Fatalf("NewMeeting(%s %s-%s): %v", day, start, end, err)
	}
	return m
}

func TestMeetingsConflict(t *testing.T) {
	cases := []struct {
		name string
		a, b model.Meeting
		want bool
	}{
		{
			name: "identical intervals",
			a:    mustMeeting(t, model.Monday, "08:40", "09:30"),
			b:    mustMeeting(t, model.Monday, "08:40", "09:30"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustMeeting(t, model.Monday, "08:40", "10:30"),
			b:    mustMeeting(t, model.Monday, "09:40", "11:30"),
			want: true,
		},
		{
			name: "containment",
			a:    mustMeeting(t, model.Monday, "08:40", "12:30"),
			b:    mustMeeting(t, model.Monday, "09:40", "10:30"),
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    mustMeeting(t, model.Monday, "08:40", "09:30"),
			b:    mustMeeting(t, model.Monday, "09:30", "10:20"),
			want: false,
		},
		{
			name: "different days never conflict",
			a:    mustMeeting(t, model.Monday, "08:40", "09:30"),
			b:    mustMeeting(t, model.Tuesday, "08:40", "09:30"),
			want: false,
		},
		{
			name: "disjoint same day",
			a:    mustMeeting(t, model.Friday, "08:40", "09:30"),
			b:    mustMeeting(t, model.Friday, "13:40", "14:30"),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetingsConflict(tc.a, tc.b); got != tc.want {
				t.Errorf("MeetingsConflict = %v, want %v", got, tc.want)
			}
			// The predicate is symmetric.
			if got := MeetingsConflict(tc.b, tc.a); got != tc.want {
				t.Errorf("MeetingsConflict(reversed) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSectionBlockedConflicts(t *testing.T) {
	sec := model.Section{
		Course: "COMP 1202",
		Code:   "1",
		Meetings: []model.Meeting{
			mustMeeting(t, model.Monday, "08:40", "09:30"),
			mustMeeting(t, model.Wednesday, "10:40", "12:30"),
		},
	}

	block := func(day, slot string) model.BlockedInterval {
		b, err := model.NewBlockedInterval(day, slot)
		if err != nil {
			t.Fatalf("NewBlockedInterval(%s %s): %v", day, slot, err)
		}
		return b
	}

	hits := sectionBlockedConflicts(sec, []model.BlockedInterval{
		block("Monday", "08:40-09:30"),    // direct hit
		block("Monday", "09:40-10:30"),    // same day, no overlap
		block("Wednesday", "11:40-12:30"), // overlaps the long meeting
		block("Thursday", "08:40-09:30"),  // wrong day
	})

	if len(hits) != 2 {
		t.Fatalf("expected 2 blocked conflicts, got %d: %+v", len(hits), hits)
	}
	if hits[0].Day != model.Monday || hits[0].Slot.Label != "08:40-09:30" {
		t.Errorf("unexpected first hit: %+v", hits[0])
	}
	if hits[1].Day != model.Wednesday || hits[1].Slot.Label != "11:40-12:30" {
		t.Errorf("unexpected second hit: %+v", hits[1])
	}
}

func TestBlockedIntervalAsSyntheticMeeting(t *testing.T) {
	b, err := model.NewBlockedInterval("Tuesday", "13:40-14:30")
	if err != nil {
		t.Fatal(err)
	}
	m := b.Meeting()
	if m.Day != model.Tuesday {
		t.Errorf("Day = %s, want Tuesday", m.Day)
	}
	if m.Start.Clock() != "13:40" || m.End.Clock() != "14:30" {
		t.Errorf("interval = %s-%s, want 13:40-14:30", m.Start.Clock(), m.End.Clock())
	}
	if !MeetingsConflict(m, mustMeeting(t, model.Tuesday, "14:00", "15:00")) {
		t.Error("synthetic meeting should conflict like a real one")
	}
}
