package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday is a canonical English day name ("Monday" … "Sunday").
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekOrder is the canonical week, Monday first. Response day lists and
// timetable columns follow this order.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a canonical day name.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range WeekOrder {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// MinuteOfDay is a time of day in minutes since midnight. Comparing times
// numerically avoids the lexical-ordering trap of comparing "9:40" against
// "10:30" as strings.
type MinuteOfDay int

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (MinuteOfDay, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return MinuteOfDay(hours*60 + minutes), nil
}

// Clock renders the time back as zero-padded "HH:MM".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. This is the single overlap formula in the system: conflict
// checks, blocked-hour pruning, grid metadata and export cells all go
// through it, so a meeting ending at 09:30 never collides with one
// starting at 09:30.
func Overlaps(s1, e1, s2, e2 MinuteOfDay) bool {
	return s1 < e2 && s2 < e1
}

// Meeting is one recurring weekly time block of a section.
// Invariant: Start < End.
//
// StartRaw/EndRaw keep the catalog's original "HH:MM" strings so responses
// echo the source data byte for byte; all comparisons go through the
// numeric fields.
type Meeting struct {
	Day       Weekday
	Start     MinuteOfDay
	End       MinuteOfDay
	StartRaw  string
	EndRaw    string
	Classroom string
}

// NewMeeting parses the time strings and builds a Meeting.
func NewMeeting(day Weekday, start, end, classroom string) (Meeting, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Meeting{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Meeting{}, err
	}
	if s >= e {
		return Meeting{}, fmt.Errorf("meeting on %s: start %s is not before end %s", day, start, end)
	}
	return Meeting{
		Day:       day,
		Start:     s,
		End:       e,
		StartRaw:  start,
		EndRaw:    end,
		Classroom: classroom,
	}, nil
}

// Section is one offered instance of a course with its meeting times.
// Sections are owned by the catalog and never mutated during a request.
type Section struct {
	Course   string
	Code     string
	Meetings []Meeting
}
