// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package listing defines the uniform (path, digest) record that all archive
// formats are normalized into, together with its canonical ordering.
package listing
