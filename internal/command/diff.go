// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/archdiff/archdiff/internal/diff"
	"github.com/archdiff/archdiff/internal/fetch"
	"github.com/archdiff/archdiff/internal/format"
	"github.com/archdiff/archdiff/internal/log"
	"github.com/archdiff/archdiff/internal/render"
)

// ErrDifferencesFound signals that the diff ran cleanly but the archives are
// not in sync. The caller maps it to its own exit status.
var ErrDifferencesFound = errors.New("differences found")

func diffAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", args.Len())
	}
	leftInput, rightInput := args.Get(0), args.Get(1)

	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	var fetchOpts []fetch.Option
	if profile := cmd.String("aws-profile"); profile != "" {
		fetchOpts = append(fetchOpts, fetch.WithProfile(profile))
	}
	if region := cmd.String("aws-region"); region != "" {
		fetchOpts = append(fetchOpts, fetch.WithRegion(region))
	}

	leftPath, leftCleanup, err := fetch.Stage(ctx, leftInput, fetchOpts...)
	if err != nil {
		return err
	}
	defer leftCleanup()

	rightPath, rightCleanup, err := fetch.Stage(ctx, rightInput, fetchOpts...)
	if err != nil {
		return err
	}
	defer rightCleanup()

	differ, err := diff.NewDiffer(
		cmd.Bool("keep-prefix"),
		cmd.String("hash-algorithm"),
		format.WithPassword(password))
	if err != nil {
		return err
	}

	result, err := differ.ComputeDiff(ctx, leftPath, rightPath)
	if err != nil {
		return err
	}
	log.Debugf("diff computed: records=%d", len(result.Records))

	printer := render.NewPrinter(cmd.Writer, render.Options{
		SuppressCommon: cmd.Bool("suppress-common"),
		Quiet:          cmd.Bool("quiet"),
		Tree:           cmd.Bool("tree"),
		Color:          cmd.Bool("color"),
	})
	printer.PrintHeader(leftInput, rightInput)
	printer.Print(result)

	if !result.InSync() {
		return ErrDifferencesFound
	}
	return nil
}

// resolvePassword returns the archive password from the flag chain, or reads
// it interactively when --password-prompt is set and no value was supplied.
func resolvePassword(cmd *cli.Command) (string, error) {
	password := cmd.String("password")
	if password != "" || !cmd.Bool("password-prompt") {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Enter password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
