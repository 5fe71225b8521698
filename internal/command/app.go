// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/archdiff/archdiff/internal/version"
)

// InitApp builds the archdiff CLI.
func InitApp() *cli.Command {
	app := &cli.Command{
		Name:                  "archdiff",
		Usage:                 "compare the contents of two archives",
		ArgsUsage:             "FILE_1 FILE_2",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags:                 NewDiffFlags(),
		Action:                diffAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}
