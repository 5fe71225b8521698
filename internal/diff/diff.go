// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

// State describes the comparison outcome for a single path.
type State int

const (
	Equal State = iota
	Different
	OnlyLeft
	OnlyRight
)

// States lists all states in their canonical report order.
var States = []State{Equal, Different, OnlyLeft, OnlyRight}

func (s State) String() string {
	switch s {
	case Equal:
		return "Equal"
	case Different:
		return "Different"
	case OnlyLeft:
		return "Only left"
	case OnlyRight:
		return "Only right"
	default:
		return "Unknown"
	}
}

// Record is one path's comparison outcome between the two listings.
type Record struct {
	RelPath string
	State   State
}

// ArchiveDiff is the full result of diffing two archives. Records are sorted
// by path and contain every path present in either canonical listing exactly
// once. PrefixLeft/PrefixRight hold the stripped common prefixes ("" when
// prefixes are kept).
type ArchiveDiff struct {
	PrefixLeft  string
	PrefixRight string
	Records     []Record
}

// Stats counts diff records per state.
func (d *ArchiveDiff) Stats() map[State]int {
	counts := make(map[State]int, len(States))
	for _, s := range States {
		counts[s] = 0
	}
	for _, r := range d.Records {
		counts[r.State]++
	}
	return counts
}

// InSync reports whether the two archives have identical content: equal
// prefixes and no record in a state other than Equal.
func (d *ArchiveDiff) InSync() bool {
	if d.PrefixLeft != d.PrefixRight {
		return false
	}
	for _, r := range d.Records {
		if r.State != Equal {
			return false
		}
	}
	return true
}
