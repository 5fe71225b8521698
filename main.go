// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/archdiff/archdiff/internal/command"
	"github.com/archdiff/archdiff/internal/log"
	"github.com/archdiff/archdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// realMain runs the CLI and maps its outcome onto the exit status: 0 when
// the archives are in sync, 1 when they differ, 2 on any error.
func realMain(args []string) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	app := command.InitApp()
	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferencesFound) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}
