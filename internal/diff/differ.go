// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/archdiff/archdiff/internal/format"
	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
	"github.com/archdiff/archdiff/internal/log"
	"github.com/archdiff/archdiff/internal/prefix"
	"github.com/archdiff/archdiff/internal/util"
)

// Differ is the archive diffing entry point: it resolves each input through
// the format dispatcher, optionally strips common prefixes and merges the two
// listings into an ArchiveDiff.
type Differ struct {
	keepPrefix bool
	handler    *format.Dispatcher
}

// NewDiffer builds a Differ. The hash algorithm name is validated here,
// before any listing work. keepPrefix true compares listings as they are
// instead of stripping each side's common root.
func NewDiffer(keepPrefix bool, algorithm string, opts ...format.Option) (*Differ, error) {
	hasher, err := hashing.New(algorithm)
	if err != nil {
		return nil, err
	}
	return &Differ{
		keepPrefix: keepPrefix,
		handler:    format.NewDispatcher(hasher, opts...),
	}, nil
}

// ComputeHashListing enumerates and hashes the contents of the archive or
// directory at path. The path is canonicalized first, and digest-less
// directory entries are filtered out of the returned listing.
func (d *Differ) ComputeHashListing(path string) ([]listing.Record, error) {
	resolved, err := util.ResolveInputPath(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("listing input: path=%s", resolved)

	records, err := listing.Collect(d.handler.List(resolved))
	if err != nil {
		return nil, err
	}

	files := records[:0]
	for _, r := range records {
		if !r.IsDir() {
			files = append(files, r)
		}
	}
	log.Debugf("listing done: path=%s entries=%d files=%d", resolved, len(records), len(files))
	return files, nil
}

// ComputeDiff computes the full diff between the archives at the two paths.
// The two listings are independent, so they are computed concurrently and
// joined before the merge.
func (d *Differ) ComputeDiff(ctx context.Context, leftPath, rightPath string) (*ArchiveDiff, error) {
	var left, right []listing.Record

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = d.ComputeHashListing(leftPath)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = d.ComputeHashListing(rightPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var prefixLeft, prefixRight []string
	if !d.keepPrefix {
		var err error
		if prefixLeft, left, err = prefix.Strip(left); err != nil {
			return nil, err
		}
		if prefixRight, right, err = prefix.Strip(right); err != nil {
			return nil, err
		}
	}

	return &ArchiveDiff{
		PrefixLeft:  strings.Join(prefixLeft, "/"),
		PrefixRight: strings.Join(prefixRight, "/"),
		Records:     Merge(left, right),
	}, nil
}
