// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"slices"

	"github.com/archdiff/archdiff/internal/listing"
)

// Merge computes the per-path diff between two listings in O(n+m). Both
// inputs are sorted copies first, so caller ordering is irrelevant. Since
// both listings are then ordered by path, a parallel walk that always
// advances the lexicographically smaller side visits every path in the union
// exactly once, in sorted order.
//
// Digest comparison is plain string equality: digests are lowercased at
// record construction, and directory entries carry the empty digest, so a
// directory on one side against a file on the other is always Different while
// two directories are Equal.
func Merge(left, right []listing.Record) []Record {
	l := slices.Clone(left)
	r := slices.Clone(right)
	listing.Sort(l)
	listing.Sort(r)

	records := make([]Record, 0, max(len(l), len(r)))
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch cmp := l[i].Compare(r[j]); {
		case cmp == 0:
			state := Different
			if l[i].Digest() == r[j].Digest() {
				state = Equal
			}
			records = append(records, Record{RelPath: l[i].RelPath(), State: state})
			i++
			j++
		case cmp < 0:
			records = append(records, Record{RelPath: l[i].RelPath(), State: OnlyLeft})
			i++
		default:
			records = append(records, Record{RelPath: r[j].RelPath(), State: OnlyRight})
			j++
		}
	}
	// At most one of these loops runs: it drains whichever side the first
	// pass did not exhaust.
	for ; i < len(l); i++ {
		records = append(records, Record{RelPath: l[i].RelPath(), State: OnlyLeft})
	}
	for ; j < len(r); j++ {
		records = append(records, Record{RelPath: r[j].RelPath(), State: OnlyRight})
	}

	return records
}
