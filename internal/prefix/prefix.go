// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package prefix

import (
	"fmt"
	"strings"

	"github.com/archdiff/archdiff/internal/listing"
)

// StructureError reports a listing in which the same path appears both as a
// file and as a directory. Such a listing has no well-defined prefix and the
// whole computation is aborted.
type StructureError struct {
	Path string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid listing structure: path %q is used as both a file and a directory", e.Path)
}

// node is one position in the path-segment trie. File leaves are flagged
// distinctly from directory (internal) nodes; a node is marked dir when it is
// named by an explicit directory record or traversed as a parent.
type node struct {
	children map[string]*node
	file     bool
	dir      bool
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

func (n *node) child(name string) *node {
	c, ok := n.children[name]
	if !ok {
		c = newNode()
		n.children[name] = c
	}
	return c
}

// build inserts every record into a trie keyed by path segments. Directory
// records contribute all of their segments as internal nodes; file records
// contribute all but the last, which becomes a file leaf.
func build(records []listing.Record) (*node, error) {
	root := newNode()
	for _, record := range records {
		segments := record.Segments()
		dirs := segments
		if !record.IsDir() {
			dirs = segments[:len(segments)-1]
		}

		cur := root
		for i, segment := range dirs {
			cur = cur.child(segment)
			if cur.file {
				return nil, &StructureError{Path: strings.Join(segments[:i+1], "/")}
			}
			cur.dir = true
		}

		if !record.IsDir() {
			leaf := cur.child(segments[len(segments)-1])
			if leaf.dir || len(leaf.children) > 0 {
				return nil, &StructureError{Path: record.RelPath()}
			}
			leaf.file = true
		}
	}
	return root, nil
}

// Find returns the longest sequence of leading path segments shared by every
// record. Descent follows single-child directory chains and stops as soon as
// a node branches or its sole child is a file leaf, so a filename is never
// absorbed into the prefix. An empty listing yields an empty prefix.
func Find(records []listing.Record) ([]string, error) {
	root, err := build(records)
	if err != nil {
		return nil, err
	}

	var prefix []string
	cur := root
	for len(cur.children) == 1 {
		var name string
		var child *node
		for name, child = range cur.children {
		}
		if child.file {
			break
		}
		prefix = append(prefix, name)
		cur = child
	}
	return prefix, nil
}

// Strip finds the common prefix of the listing and returns it together with a
// new listing in which the prefix directories are dropped and every surviving
// record has the prefix segments removed from the front of its path.
func Strip(records []listing.Record) ([]string, []listing.Record, error) {
	pfx, err := Find(records)
	if err != nil {
		return nil, nil, err
	}

	stripped := make([]listing.Record, 0, len(records))
	for _, record := range records {
		segments := record.Segments()
		if len(segments) <= len(pfx) {
			// These are exactly the directory entries forming the prefix.
			continue
		}
		stripped = append(stripped, listing.FromSegments(record.Digest(), segments[len(pfx):]))
	}

	return pfx, stripped, nil
}
