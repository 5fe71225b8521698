// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
)

// dirHandler treats a plain directory tree as an archive. Every entry is
// named relative to the parent of the root, so the root directory's own name
// is the first segment of every path. Anything that is not a directory is
// hashed as a file.
type dirHandler struct {
	hasher *hashing.Hasher
}

func (h *dirHandler) Name() string { return "directory" }

func (h *dirHandler) Supports(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (h *dirHandler) List(path string) listing.Seq {
	return func(yield func(listing.Record, error) bool) {
		if !h.Supports(path) {
			yield(listing.Record{}, fmt.Errorf("%s: not a directory: %w", path, ErrFormat))
			return
		}

		// The parent is always defined: at a filesystem root, Dir returns
		// the root itself and the relative paths below degrade gracefully.
		root := filepath.Clean(path)
		parent := filepath.Dir(root)

		err := filepath.WalkDir(root, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(parent, entry)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if !yield(listing.NewRecord("", rel), nil) {
					return fs.SkipAll
				}
				return nil
			}

			digest, err := hashFile(h.hasher, entry)
			if err != nil {
				return err
			}
			if !yield(listing.NewRecord(digest, rel), nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(listing.Record{}, fmt.Errorf("failed to walk %s: %w", path, err))
		}
	}
}

func hashFile(hasher *hashing.Hasher, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	digest, err := hasher.Sum(file)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return digest, nil
}
