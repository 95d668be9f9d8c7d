package summary

import (
	"fmt"
	"slices"
)

// WarningID is the bracketed identifier that follows a "Warning:" marker.
type WarningID string

// Entry is one row of the summary.
type Entry struct {
	ID    WarningID
	Count int
}

// String formats the entry as "<count>x: <id>".
func (e Entry) String() string {
	return fmt.Sprintf("%dx: %s", e.Count, e.ID)
}

// FrequencyTable counts occurrences per WarningID and remembers first-seen order.
type FrequencyTable struct {
	counts map[WarningID]int
	order  []WarningID
	total  int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[WarningID]int)}
}

// Tally builds a table from ids in scan order.
func Tally(ids []WarningID) *FrequencyTable {
	t := NewFrequencyTable()
	for _, id := range ids {
		t.Add(id)
	}
	return t
}

// Add records one occurrence of id.
func (t *FrequencyTable) Add(id WarningID) {
	if _, seen := t.counts[id]; !seen {
		t.order = append(t.order, id)
	}
	t.counts[id]++
	t.total++
}

// Count returns the occurrences recorded for id.
func (t *FrequencyTable) Count(id WarningID) int {
	return t.counts[id]
}

// Len returns the number of distinct identifiers.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total returns the number of recorded occurrences.
func (t *FrequencyTable) Total() int {
	return t.total
}

// MostCommon returns entries by descending count. Ties keep first-seen order.
func (t *FrequencyTable) MostCommon() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, id := range t.order {
		entries = append(entries, Entry{ID: id, Count: t.counts[id]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})
	return entries
}

// Report snapshots the table for rendering.
func (t *FrequencyTable) Report() Report {
	return Report{Entries: t.MostCommon(), Total: t.total}
}
