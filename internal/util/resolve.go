// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveInputPath canonicalizes an input archive path: it makes the path
// absolute and resolves all symlinks. It returns an error if the path is
// empty or does not exist, so a missing input surfaces as a plain
// "no such file or directory" before any listing work begins.
func ResolveInputPath(path string) (string, error) {

	if path == "" {
		return "", fmt.Errorf("empty input path: %w", os.ErrInvalid)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to absolutize %s: %w", path, err)
	}

	// EvalSymlinks stats every component, which doubles as the existence
	// check.
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return resolved, nil
}
