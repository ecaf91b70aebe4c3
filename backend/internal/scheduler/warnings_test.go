package scheduler

import (
	"reflect"
	"testing"
)

func TestWarningCollectorDeduplicates(t *testing.T) {
	w := NewWarningCollector()

	w.Add("COMP 1202: No section data is available for this term.")
	w.Add("comp 1202: no section data is available for this term.")
	w.Add("  COMP 1202: No section data is available for this term.  ")
	w.Add("MATH 1131: No section data is available for this term.")

	got := w.Messages()
	want := []string{
		"COMP 1202: No section data is available for this term.",
		"MATH 1131: No section data is available for this term.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Messages = %v, want %v", got, want)
	}
}

func TestWarningCollectorKeepsFirstCasing(t *testing.T) {
	w := NewWarningCollector()
	w.Add("Conflict On Monday")
	w.Add("conflict on monday")

	if got := w.Messages(); len(got) != 1 || got[0] != "Conflict On Monday" {
		t.Errorf("Messages = %v, want the first-seen casing only", got)
	}
}

func TestWarningCollectorIgnoresBlank(t *testing.T) {
	w := NewWarningCollector()
	w.Add("")
	w.Add("   ")
	if w.Len() != 0 {
		t.Errorf("blank messages should be dropped, got %v", w.Messages())
	}
}

func TestWarningCollectorPreservesInsertionOrder(t *testing.T) {
	w := NewWarningCollector()
	msgs := []string{"c", "a", "b"}
	for _, m := range msgs {
		w.Add(m)
	}
	if got := w.Messages(); !reflect.DeepEqual(got, msgs) {
		t.Errorf("Messages = %v, want insertion order %v", got, msgs)
	}
}
