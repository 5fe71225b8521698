// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"

	"github.com/bodgit/sevenzip"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
)

// sevenZipHandler lists 7z archives. Members are streamed one at a time in
// archive order, which keeps solid archives on their single decompression
// pass instead of extracting everything up front.
type sevenZipHandler struct {
	hasher   *hashing.Hasher
	password string
}

func (h *sevenZipHandler) Name() string { return "7z" }

func (h *sevenZipHandler) Supports(path string) bool {
	mime := sniff(path)
	return mime != nil && mime.Is("application/x-7z-compressed")
}

func (h *sevenZipHandler) List(path string) listing.Seq {
	return func(yield func(listing.Record, error) bool) {
		if !h.Supports(path) {
			yield(listing.Record{}, fmt.Errorf("%s: not a 7z archive: %w", path, ErrFormat))
			return
		}

		archive, err := h.open(path)
		if err != nil {
			yield(listing.Record{}, fmt.Errorf("failed to open 7z %s: %w", path, err))
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

			digest, err := hashSevenZipMember(h.hasher, member)
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

func (h *sevenZipHandler) open(path string) (*sevenzip.ReadCloser, error) {
	if h.password != "" {
		return sevenzip.OpenReaderWithPassword(path, h.password)
	}
	return sevenzip.OpenReader(path)
}

func hashSevenZipMember(hasher *hashing.Hasher, member *sevenzip.File) (string, error) {
	r, err := member.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open 7z member %s: %w", member.Name, err)
	}
	defer r.Close()

	digest, err := hasher.Sum(r)
	if err != nil {
		return "", fmt.Errorf("failed to hash 7z member %s: %w", member.Name, err)
	}
	return digest, nil
}
