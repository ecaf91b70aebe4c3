package scheduler

import "strings"

// WarningCollector accumulates diagnostic messages across the resolve,
// enumerate and assemble stages. Messages are deduplicated on their
// trimmed, lowercased text; the casing of the first occurrence is what the
// caller gets back, in insertion order.
type WarningCollector struct {
	seen map[string]struct{}
	list []string
}

// NewWarningCollector creates an empty collector.
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{seen: make(map[string]struct{})}
}

// Add records a message unless an equivalent one was already recorded.
func (w *WarningCollector) Add(msg string) {
	key := strings.ToLower(strings.TrimSpace(msg))
	if key == "" {
		return
	}
	if _, dup := w.seen[key]; dup {
		return
	}
	w.seen[key] = struct{}{}
	w.list = append(w.list, msg)
}

// Len returns the number of unique messages recorded so far.
func (w *WarningCollector) Len() int { return len(w.list) }

// Messages returns the unique messages in insertion order.
func (w *WarningCollector) Messages() []string {
	out := make([]string, len(w.list))
	copy(out, w.list)
	return out
}
