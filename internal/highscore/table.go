// Package highscore keeps the top-ten table and the contract for persisting it.
package highscore

import "sort"

// MaxEntries is the table capacity.
const MaxEntries = 10

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score int
}

// Table is an ordered top-N list, highest score first.
// Equal scores keep insertion order, so a newcomer ranks below an existing tie.
type Table struct {
	entries []Entry
}

// NewTable builds a table from loaded entries, sorting and truncating them.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: append([]Entry(nil), entries...)}
	t.normalize()
	return t
}

// Insert adds an entry and returns its 0-based rank, or -1 if it fell off the table.
func (t *Table) Insert(name string, score int) int {
	t.entries = append(t.entries, Entry{Name: name, Score: score})
	newest := len(t.entries) - 1

	// Track the new entry through the stable sort by its index.
	idx := make([]int, len(t.entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return t.entries[idx[a]].Score > t.entries[idx[b]].Score
	})

	sorted := make([]Entry, len(idx))
	rank := -1
	for pos, i := range idx {
		sorted[pos] = t.entries[i]
		if i == newest {
			rank = pos
		}
	}
	t.entries = sorted

	if len(t.entries) > MaxEntries {
		t.entries = t.entries[:MaxEntries]
	}
	if rank >= MaxEntries {
		rank = -1
	}
	return rank
}

// Entries returns a copy of the rows, highest first.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Best returns the top score, or 0 for an empty table.
func (t *Table) Best() int {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Score
}

func (t *Table) normalize() {
	sort.SliceStable(t.entries, func(a, b int) bool {
		return t.entries[a].Score > t.entries[b].Score
	})
	if len(t.entries) > MaxEntries {
		t.entries = t.entries[:MaxEntries]
	}
}
