// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config locates archdiff's user configuration. The configuration is
// a YAML document whose keys mirror the CLI flags (hash-algorithm,
// keep-prefix, suppress-common, tree, quiet, color, aws-profile, aws-region,
// password), located in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/archdiff.yaml or $HOME/.config/archdiff.yaml
//   - Windows: %APPDATA%/archdiff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Flag value sourcing reads the file; this package only finds
// it.
package config
