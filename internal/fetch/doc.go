// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fetch stages remote archive inputs (s3://, http://, https://) as
// local temporary files so the format handlers can seek in them.
package fetch
