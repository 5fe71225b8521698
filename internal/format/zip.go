// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"archive/zip"
	"fmt"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
)

// zipHandler lists zip-based archives.
type zipHandler struct {
	hasher *hashing.Hasher
}

func (h *zipHandler) Name() string { return "zip" }

// Supports checks the zip local-file-header signature, not the extension.
func (h *zipHandler) Supports(path string) bool {
	mime := sniff(path)
	return mime != nil && mime.Is("application/zip")
}

func (h *zipHandler) List(path string) listing.Seq {
	return func(yield func(listing.Record, error) bool) {
		if !h.Supports(path) {
			yield(listing.Record{}, fmt.Errorf("%s: not a zip archive: %w", path, ErrFormat))
			return
		}

		archive, err := zip.OpenReader(path)
		if err != nil {
			yield(listing.Record{}, fmt.Errorf("failed to open zip %s: %w", path, err))
			return
		}
		defer archive.Close()

		for _, member := range archive.File {
			if member.FileInfo().IsDir() {
				if !yield(listing.NewRecord("", member.Name), nil) {
					return
				}
				continue
			}

			digest, err := hashZipMember(h.hasher, member)
			if err != nil {
				yield(listing.Record{}, err)
				return
			}
			if !yield(listing.NewRecord(digest, member.Name), nil) {
				return
			}
		}
	}
}

func hashZipMember(hasher *hashing.Hasher, member *zip.File) (string, error) {
	r, err := member.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open zip member %s: %w", member.Name, err)
	}
	defer r.Close()

	digest, err := hasher.Sum(r)
	if err != nil {
		return "", fmt.Errorf("failed to hash zip member %s: %w", member.Name, err)
	}
	return digest, nil
}
