// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
)

// tarHandler lists tar archives, plain or wrapped in gzip, bzip2, xz or zstd.
type tarHandler struct {
	hasher *hashing.Hasher
}

func (h *tarHandler) Name() string { return "tar" }

// Supports sniffs the compression envelope, then verifies that the stream
// inside actually starts with a valid tar header. A lone .gz of a non-tar
// payload is rejected here.
func (h *tarHandler) Supports(path string) bool {
	kind, ok := sniffCompression(sniff(path))
	if !ok {
		return false
	}

	r, closeAll, err := openTarStream(path, kind)
	if err != nil {
		return false
	}
	defer closeAll()

	_, err = tar.NewReader(r).Next()
	// An empty tar (just end-of-archive blocks) yields io.EOF on the first
	// header and is still a tar file.
	return err == nil || errors.Is(err, io.EOF)
}

func (h *tarHandler) List(path string) listing.Seq {
	return func(yield func(listing.Record, error) bool) {
		if !h.Supports(path) {
			yield(listing.Record{}, fmt.Errorf("%s: not a tar archive: %w", path, ErrFormat))
			return
		}

		kind, _ := sniffCompression(sniff(path))
		r, closeAll, err := openTarStream(path, kind)
		if err != nil {
			yield(listing.Record{}, fmt.Errorf("failed to open tar %s: %w", path, err))
			return
		}
		defer closeAll()

		reader := tar.NewReader(r)
		for {
			header, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(listing.Record{}, fmt.Errorf("failed to read tar %s: %w", path, err))
				return
			}

			if header.Typeflag != tar.TypeReg {
				// Directories and special members yield digest-less records,
				// matching how the container itself classifies them.
				if !yield(listing.NewRecord("", header.Name), nil) {
					return
				}
				continue
			}

			digest, err := h.hasher.Sum(reader)
			if err != nil {
				yield(listing.Record{}, fmt.Errorf("failed to hash tar member %s: %w", header.Name, err))
				return
			}
			if !yield(listing.NewRecord(digest, header.Name), nil) {
				return
			}
		}
	}
}

// openTarStream opens the file and unwraps the detected compression
// envelope. The returned closeAll releases the decompressor (when it has a
// Close) and the underlying file.
func openTarStream(path string, kind compression) (io.Reader, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	closeFile := func() { _ = file.Close() }

	switch kind {
	case compressionNone:
		return file, closeFile, nil
	case compressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return gz, func() { _ = gz.Close(); closeFile() }, nil
	case compressionBzip2:
		bz, err := bzip2.NewReader(file, nil)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return bz, func() { _ = bz.Close(); closeFile() }, nil
	case compressionXz:
		xzr, err := xz.NewReader(file)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return xzr, closeFile, nil
	case compressionZstd:
		zr, err := zstd.NewReader(file)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return zr, func() { zr.Close(); closeFile() }, nil
	default:
		closeFile()
		return nil, nil, fmt.Errorf("unknown compression kind %d", kind)
	}
}
