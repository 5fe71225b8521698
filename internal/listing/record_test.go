// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "simple",
			path: "root/sub/file.txt",
			want: []string{"root", "sub", "file.txt"},
		},
		{
			name: "leading and trailing separators",
			path: "/root/sub/",
			want: []string{"root", "sub"},
		},
		{
			name: "doubled separator",
			path: "root//file",
			want: []string{"root", "file"},
		},
		{
			name: "single segment",
			path: "file",
			want: []string{"file"},
		},
		{
			name: "backslash separators",
			path: `root\sub\file.txt`,
			want: []string{"root", "sub", "file.txt"},
		},
		{
			name: "empty",
			path: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord("ABCDEF0123", "root/sub/f")

	assert.Equal(t, "abcdef0123", r.Digest(), "digest is lowercased at construction")
	assert.Equal(t, "root/sub/f", r.RelPath())
	assert.Equal(t, []string{"root", "sub", "f"}, r.Segments())
	assert.False(t, r.IsDir())
}

func TestNewRecord_Directory(t *testing.T) {
	r := NewRecord("", "root/sub")

	assert.True(t, r.IsDir())
	assert.Empty(t, r.Digest())
}

func TestFromSegments_CopiesInput(t *testing.T) {
	segments := []string{"a", "b"}
	r := FromSegments("ff", segments)

	segments[0] = "mutated"
	assert.Equal(t, "a/b", r.RelPath())
}

func TestSort(t *testing.T) {
	records := []Record{
		NewRecord("3", "b"),
		NewRecord("1", "a/z"),
		NewRecord("2", "a"),
		NewRecord("4", "a/b/c"),
	}

	Sort(records)

	var paths []string
	for _, r := range records {
		paths = append(paths, r.RelPath())
	}
	assert.Equal(t, []string{"a", "a/b/c", "a/z", "b"}, paths)
}

func TestCompare_SegmentWise(t *testing.T) {
	// "a!" sorts after "a" segment-wise even though "a!" < "a/b" as strings.
	left := NewRecord("1", "a!")
	right := NewRecord("2", "a/b")

	assert.Positive(t, left.Compare(right))
	assert.Negative(t, right.Compare(left))
	assert.Zero(t, left.Compare(NewRecord("other", "a!")))
}

func TestCollect(t *testing.T) {
	seq := func(yield func(Record, error) bool) {
		if !yield(NewRecord("aa", "x"), nil) {
			return
		}
		yield(NewRecord("bb", "y"), nil)
	}

	records, err := Collect(seq)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "x", records[0].RelPath())
}

func TestCollect_ErrorStopsEnumeration(t *testing.T) {
	boom := errors.New("boom")
	seq := func(yield func(Record, error) bool) {
		if !yield(NewRecord("aa", "x"), nil) {
			return
		}
		yield(Record{}, boom)
	}

	records, err := Collect(seq)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, boom)
}
