// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"iter"
	"slices"
	"strings"
)

// Record represents one archive entry: its normalized path segments and an
// optional content digest. Directory entries carry no digest. Records are
// value-like; once produced by a format handler they are never mutated.
type Record struct {
	segments []string
	digest   string
}

// NewRecord builds a Record from a relative path string. The path is split
// into segments on the separator, dropping empty segments, and the digest is
// normalized to lowercase. An empty digest marks a directory entry.
func NewRecord(digest string, relpath string) Record {
	return FromSegments(digest, SplitPath(relpath))
}

// FromSegments builds a Record from already-split path segments. The segment
// slice is copied so callers cannot alias the record's state.
func FromSegments(digest string, segments []string) Record {
	return Record{
		segments: slices.Clone(segments),
		digest:   strings.ToLower(digest),
	}
}

// Segments returns the path segments identifying this entry.
func (r Record) Segments() []string {
	return r.segments
}

// Digest returns the lowercase hex digest, or "" for a directory entry.
func (r Record) Digest() string {
	return r.digest
}

// IsDir reports whether this is a digest-less directory entry.
func (r Record) IsDir() bool {
	return r.digest == ""
}

// RelPath returns the canonical "/"-joined path identifying this entry. Two
// records are the same path iff their RelPath values are equal.
func (r Record) RelPath() string {
	return strings.Join(r.segments, "/")
}

// Compare orders records segment-wise lexicographically. Since segments never
// contain the separator, this is the order the diff merge relies on.
func (r Record) Compare(other Record) int {
	return slices.Compare(r.segments, other.segments)
}

// Sort sorts records ascending by path, in place.
func Sort(records []Record) {
	slices.SortFunc(records, Record.Compare)
}

// SplitPath splits a "/"-separated path into its non-empty segments.
// Backslashes are treated as separators too, so archive members written on
// Windows normalize the same way.
func SplitPath(path string) []string {
	path = strings.ReplaceAll(path, `\`, "/")
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Seq is a lazy stream of records produced by a format handler. It is
// consumed exactly once; enumeration stops at the first error.
type Seq = iter.Seq2[Record, error]

// Collect fully materializes a record stream, returning the first error the
// producer yields.
func Collect(seq Seq) ([]Record, error) {
	var records []Record
	for record, err := range seq {
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
