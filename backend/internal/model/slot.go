package model

import (
	"fmt"
	"strings"
)

// Slot is one cell of the fixed timetable grid.
type Slot struct {
	Label string
	Start MinuteOfDay
	End   MinuteOfDay
}

// slotLabels is the canonical grid of "HH:MM-HH:MM" labels the frontend
// renders and the blocked-hours picker offers.
var slotLabels = []string{
	"08:40-09:30", "09:40-10:30", "10:40-11:30", "11:40-12:30",
	"12:40-13:30", "13:40-14:30", "14:40-15:30", "15:40-16:30",
	"16:40-17:30", "17:40-18:30", "18:40-19:30", "19:40-20:30",
	"20:40-21:30", "21:40-22:30",
}

// CanonicalSlots is the parsed slot table, in grid order.
var CanonicalSlots = func() []Slot {
	slots := make([]Slot, 0, len(slotLabels))
	for _, label := range slotLabels {
		slot, err := ParseSlotLabel(label)
		if err != nil {
			panic(err) // the canonical table is a compile-time constant
		}
		slots = append(slots, slot)
	}
	return slots
}()

// SlotLabels returns the canonical labels in grid order.
func SlotLabels() []string {
	out := make([]string, len(slotLabels))
	copy(out, slotLabels)
	return out
}

// ParseSlotLabel parses a "HH:MM-HH:MM" label.
func ParseSlotLabel(label string) (Slot, error) {
	startRaw, endRaw, ok := strings.Cut(label, "-")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot %q: want HH:MM-HH:MM", label)
	}
	start, err := ParseClock(startRaw)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid slot %q: %w", label, err)
	}
	end, err := ParseClock(endRaw)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid slot %q: %w", label, err)
	}
	if start >= end {
		return Slot{}, fmt.Errorf("invalid slot %q: start is not before end", label)
	}
	return Slot{Label: label, Start: start, End: end}, nil
}

// BlockedInterval is a caller-declared unavailable day/slot pair.
type BlockedInterval struct {
	Day  Weekday
	Slot Slot
}

// NewBlockedInterval validates the day name and slot label.
func NewBlockedInterval(day, slotLabel string) (BlockedInterval, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return BlockedInterval{}, err
	}
	slot, err := ParseSlotLabel(slotLabel)
	if err != nil {
		return BlockedInterval{}, err
	}
	return BlockedInterval{Day: d, Slot: slot}, nil
}

// Meeting converts the blocked interval into a synthetic meeting so the
// conflict checker treats it like any other class meeting.
func (b BlockedInterval) Meeting() Meeting {
	return Meeting{
		Day:      b.Day,
		Start:    b.Slot.Start,
		End:      b.Slot.End,
		StartRaw: b.Slot.Start.Clock(),
		EndRaw:   b.Slot.End.Clock(),
	}
}
