// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// DefaultBufferSize is the read buffer used when streaming input into the
// digest. Inputs are never loaded into memory whole.
const DefaultBufferSize = 128 * 1024

var registry = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
	"xxh64":  func() hash.Hash { return xxhash.New() },
}

// Algorithms returns the sorted names of all supported digest algorithms.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether the named algorithm is in the registry.
func Supported(algorithm string) bool {
	_, ok := registry[algorithm]
	return ok
}

// Hasher computes lowercase hex digests of byte streams. Identical byte
// sequences always yield identical digests for a given algorithm.
type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
	bufSize   int
}

// New returns a Hasher for the named algorithm. An unknown name fails here,
// before any listing work begins.
func New(algorithm string) (*Hasher, error) {
	newHash, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm %q (supported: %v)", algorithm, Algorithms())
	}
	return &Hasher{
		algorithm: algorithm,
		newHash:   newHash,
		bufSize:   DefaultBufferSize,
	}, nil
}

// Algorithm returns the registry name this Hasher was built with.
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Sum consumes the whole reader in bounded chunks and returns the lowercase
// hex digest of its contents.
func (h *Hasher) Sum(r io.Reader) (string, error) {
	digest := h.newHash()
	buf := make([]byte, h.bufSize)
	if _, err := io.CopyBuffer(digest, r, buf); err != nil {
		return "", fmt.Errorf("failed to hash stream: %w", err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
