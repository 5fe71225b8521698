// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package format normalizes heterogeneous archive containers (directories,
// zip, tar and its compressed variants, 7z) into a uniform stream of listing
// records. Formats are recognized by content sniffing, never by file
// extension.
package format
