// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render formats archive diffs for the terminal: a line-per-path
// report, a directory tree view or a quiet one-line summary.
package render
