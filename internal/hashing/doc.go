// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package hashing computes streaming content digests used as file equality
// proxies. The digest algorithm is chosen by name from a fixed registry.
package hashing
