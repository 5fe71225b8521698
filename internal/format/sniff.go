// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// compression identifies the envelope wrapped around a tar stream.
type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionBzip2
	compressionXz
	compressionZstd
)

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// sniff detects the MIME type of the file via its magic bytes. A nil return
// means the file could not be read or identified.
func sniff(path string) *mimetype.MIME {
	if !isRegularFile(path) {
		return nil
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil
	}
	return mime
}

// sniffCompression maps a detected MIME type onto the tar compression
// envelopes the tar handler can unwrap. The second result is false when the
// type is none of them.
func sniffCompression(mime *mimetype.MIME) (compression, bool) {
	switch {
	case mime == nil:
		return compressionNone, false
	case mime.Is("application/x-tar"):
		return compressionNone, true
	case mime.Is("application/gzip"):
		return compressionGzip, true
	case mime.Is("application/x-bzip2"):
		return compressionBzip2, true
	case mime.Is("application/x-xz"):
		return compressionXz, true
	case mime.Is("application/zstd"):
		return compressionZstd, true
	default:
		return compressionNone, false
	}
}
