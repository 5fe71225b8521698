// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package format

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
)

func newTestHasher(t *testing.T) *hashing.Hasher {
	t.Helper()
	h, err := hashing.New("md5")
	require.NoError(t, err)
	return h
}

func md5Hex(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// relPaths collects the sorted RelPaths of a listing.
func relPaths(records []listing.Record) []string {
	var paths []string
	for _, r := range records {
		paths = append(paths, r.RelPath())
	}
	sort.Strings(paths)
	return paths
}

func digestByPath(records []listing.Record) map[string]string {
	m := make(map[string]string, len(records))
	for _, r := range records {
		m[r.RelPath()] = r.Digest()
	}
	return m
}

func TestDispatcher_NoHandlerMatches(t *testing.T) {
	junk := filepath.Join(t.TempDir(), "junk.bin")
	require.NoError(t, os.WriteFile(junk, []byte("definitely not an archive"), 0644))

	d := NewDispatcher(newTestHasher(t))

	_, err := d.HandlerFor(junk)
	assert.ErrorIs(t, err, ErrFormat)
	assert.False(t, d.Supports(junk))

	_, err = listing.Collect(d.List(junk))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDispatcher_MissingPath(t *testing.T) {
	d := NewDispatcher(newTestHasher(t))
	_, err := listing.Collect(d.List(filepath.Join(t.TempDir(), "nope")))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDispatcher_SelectsByContentNotExtension(t *testing.T) {
	// A zip file with a .tar extension must still land on the zip handler.
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.tar")
	writeZipFixture(t, path, map[string]string{"a.txt": "hello"})

	d := NewDispatcher(newTestHasher(t))
	h, err := d.HandlerFor(path)
	require.NoError(t, err)
	assert.Equal(t, "zip", h.Name())
}

func TestDirHandler_List(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "myroot")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("top"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "inner.txt"), []byte("inner"), 0644))

	h := &dirHandler{hasher: newTestHasher(t)}
	require.True(t, h.Supports(root))

	records, err := listing.Collect(h.List(root))
	require.NoError(t, err)

	// The root directory's own name is included and prefixes every path.
	assert.Equal(t, []string{
		"myroot",
		"myroot/sub",
		"myroot/sub/inner.txt",
		"myroot/top.txt",
	}, relPaths(records))

	digests := digestByPath(records)
	assert.Empty(t, digests["myroot"], "directory entries carry no digest")
	assert.Empty(t, digests["myroot/sub"])
	assert.Equal(t, md5Hex([]byte("top")), digests["myroot/top.txt"])
	assert.Equal(t, md5Hex([]byte("inner")), digests["myroot/sub/inner.txt"])
}

func TestDirHandler_RejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	h := &dirHandler{hasher: newTestHasher(t)}
	assert.False(t, h.Supports(file))

	_, err := listing.Collect(h.List(file))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestZipHandler_List(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.zip")
	writeZipFixture(t, path, map[string]string{
		"root/a.txt":     "alpha",
		"root/sub/b.txt": "beta",
		"root/sub/":      "", // explicit directory entry
	})

	h := &zipHandler{hasher: newTestHasher(t)}
	require.True(t, h.Supports(path))

	records, err := listing.Collect(h.List(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"root/a.txt", "root/sub", "root/sub/b.txt"}, relPaths(records))

	digests := digestByPath(records)
	assert.Equal(t, md5Hex([]byte("alpha")), digests["root/a.txt"])
	assert.Equal(t, md5Hex([]byte("beta")), digests["root/sub/b.txt"])
	assert.Empty(t, digests["root/sub"])
}

func TestZipHandler_RejectsNonZip(t *testing.T) {
	h := &zipHandler{hasher: newTestHasher(t)}

	assert.False(t, h.Supports(t.TempDir()), "directories are not zips")

	tarPath := filepath.Join(t.TempDir(), "a.tar")
	writeTarFixture(t, tarPath, compressionNone, map[string]string{"f": "x"})
	assert.False(t, h.Supports(tarPath))
}

func TestTarHandler_List_AllCompressions(t *testing.T) {
	members := map[string]string{
		"root/a.txt":     "alpha",
		"root/sub/b.txt": "beta",
	}

	tests := []struct {
		name string
		kind compression
	}{
		{"plain", compressionNone},
		{"gzip", compressionGzip},
		{"bzip2", compressionBzip2},
		{"xz", compressionXz},
		{"zstd", compressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fixture.bin")
			writeTarFixture(t, path, tt.kind, members)

			h := &tarHandler{hasher: newTestHasher(t)}
			require.True(t, h.Supports(path), "sniffing must accept the %s variant", tt.name)

			records, err := listing.Collect(h.List(path))
			require.NoError(t, err)

			assert.Equal(t, []string{"root", "root/a.txt", "root/sub", "root/sub/b.txt"}, relPaths(records))

			digests := digestByPath(records)
			assert.Equal(t, md5Hex([]byte("alpha")), digests["root/a.txt"])
			assert.Equal(t, md5Hex([]byte("beta")), digests["root/sub/b.txt"])
			assert.Empty(t, digests["root"])
		})
	}
}

func TestTarHandler_RejectsGzippedNonTar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.gz")
	writeGzipFixture(t, path, []byte("just some compressed text, not a tar stream"))

	h := &tarHandler{hasher: newTestHasher(t)}
	assert.False(t, h.Supports(path))

	d := NewDispatcher(newTestHasher(t))
	assert.False(t, d.Supports(path), "a gzip of a non-tar payload matches no handler")
}

func TestSevenZipHandler_SupportsBySignature(t *testing.T) {
	h := &sevenZipHandler{hasher: newTestHasher(t)}

	assert.True(t, h.Supports(filepath.Join("testdata", "archive.7z")))

	zipPath := filepath.Join(t.TempDir(), "a.zip")
	writeZipFixture(t, zipPath, map[string]string{"f": "x"})
	assert.False(t, h.Supports(zipPath))
	assert.False(t, h.Supports(t.TempDir()))
}

func TestSevenZipHandler_List(t *testing.T) {
	path := filepath.Join("testdata", "archive.7z")

	h := &sevenZipHandler{hasher: newTestHasher(t)}
	records, err := listing.Collect(h.List(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "root/a.txt", "root/sub", "root/sub/b.txt"}, relPaths(records))

	digests := digestByPath(records)
	assert.Equal(t, md5Hex([]byte("alpha")), digests["root/a.txt"])
	assert.Equal(t, md5Hex([]byte("beta")), digests["root/sub/b.txt"])
	assert.Empty(t, digests["root"])
	assert.Empty(t, digests["root/sub"])
}

func TestDispatcher_SevenZipMatch(t *testing.T) {
	d := NewDispatcher(newTestHasher(t))
	h, err := d.HandlerFor(filepath.Join("testdata", "archive.7z"))
	require.NoError(t, err)
	assert.Equal(t, "7z", h.Name())
}

func TestNewDispatcher_PasswordReachesSevenZip(t *testing.T) {
	d := NewDispatcher(newTestHasher(t), WithPassword("hunter2"))

	var sz *sevenZipHandler
	for _, h := range d.handlers {
		if cand, ok := h.(*sevenZipHandler); ok {
			sz = cand
		}
	}
	require.NotNil(t, sz)
	assert.Equal(t, "hunter2", sz.password)
}
