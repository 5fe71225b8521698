// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff turns two archive listings into a per-path diff. The merge is
// a single ordered pass over both sorted listings, so every path in either
// archive is reported exactly once, in path order.
package diff
