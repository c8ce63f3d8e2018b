// Package tally counts label occurrences into a frequency table.
package tally

import (
	"sort"
)

// Table maps each distinct label to the number of times it occurred and
// remembers the order in which labels first appeared. Every count is at
// least 1. The zero value is an empty table.
type Table struct {
	counts map[string]int
	order  []string // distinct labels, first appearance first
}

// Entry is a single label and its count.
type Entry struct {
	Label string
	Count int
}

// Count tallies labels into a fresh Table. Labels are counted verbatim; an
// empty or nil slice yields an empty table.
func Count(labels []string) Table {
	t := Table{counts: make(map[string]int, len(labels))}
	for _, l := range labels {
		if t.counts[l] == 0 {
			t.order = append(t.order, l)
		}
		t.counts[l]++
	}
	return t
}

// Get returns the count for label, or 0 if it never occurred.
func (t Table) Get(label string) int {
	return t.counts[label]
}

// Len returns the number of distinct labels.
func (t Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts, which equals the length of the
// sequence the table was built from.
func (t Table) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Labels returns the distinct labels in ascending order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.order))
	copy(labels, t.order)
	sort.Strings(labels)
	return labels
}

// Ranked returns the entries ordered by count, highest first. Equal counts
// keep the order in which their labels first appeared.
func (t Table) Ranked() []Entry {
	entries := make([]Entry, len(t.order))
	for i, l := range t.order {
		entries[i] = Entry{Label: l, Count: t.counts[l]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
