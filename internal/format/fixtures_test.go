// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package format

import (
	"archive/tar"
	"archive/zip"
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// writeZipFixture creates a zip archive at path. Member names ending in a
// slash become explicit directory entries.
func writeZipFixture(t *testing.T, path string, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range sortedKeys(members) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if !strings.HasSuffix(name, "/") {
			_, err = w.Write([]byte(members[name]))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
}

// writeTarFixture creates a tar archive at path, wrapped in the given
// compression envelope. Directory headers are emitted for every parent of
// the member paths.
func writeTarFixture(t *testing.T, path string, kind compression, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var w io.Writer = f
	var closers []io.Closer

	switch kind {
	case compressionNone:
	case compressionGzip:
		gw := gzip.NewWriter(f)
		w, closers = gw, append(closers, gw)
	case compressionBzip2:
		bw, err := bzip2.NewWriter(f, nil)
		require.NoError(t, err)
		w, closers = bw, append(closers, bw)
	case compressionXz:
		xw, err := xz.NewWriter(f)
		require.NoError(t, err)
		w, closers = xw, append(closers, xw)
	case compressionZstd:
		zw, err := zstd.NewWriter(f)
		require.NoError(t, err)
		w, closers = zw, append(closers, zw)
	default:
		t.Fatalf("unknown compression kind %d", kind)
	}

	tw := tar.NewWriter(w)
	for _, dir := range parentDirs(members) {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dir + "/",
			Typeflag: tar.TypeDir,
			Mode:     0755,
		}))
	}
	for _, name := range sortedKeys(members) {
		content := members[name]
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())

	for i := len(closers) - 1; i >= 0; i-- {
		require.NoError(t, closers[i].Close())
	}
}

func writeGzipFixture(t *testing.T, path string, payload []byte) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	_, err = gw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parentDirs returns the sorted set of parent directories of the member
// paths.
func parentDirs(members map[string]string) []string {
	set := make(map[string]struct{})
	for name := range members {
		parts := strings.Split(strings.TrimSuffix(name, "/"), "/")
		for i := 1; i < len(parts); i++ {
			set[strings.Join(parts[:i], "/")] = struct{}{}
		}
	}
	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
