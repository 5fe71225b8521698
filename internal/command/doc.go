// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the archdiff CLI. It wires flags, validators and
// the diff action.
package command
