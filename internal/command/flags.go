// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/archdiff/archdiff/internal/config"
	"github.com/archdiff/archdiff/internal/hashing"
)

// NewDiffFlags builds the flag set of the diff command. String and bool
// values resolve through the same chain: explicit flag, ARCHDIFF_* env var,
// then the user config file.
func NewDiffFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "hash-algorithm",
			Aliases: []string{"a"},
			Usage:   "hash algorithm used to compare file contents",
			Value:   "md5",
			Sources: valueChain("hash-algorithm", "ARCHDIFF_HASH_ALGORITHM"),
			Validator: func(value string) error {
				if !hashing.Supported(value) {
					return fmt.Errorf("unknown hash algorithm %q (supported: %s)",
						value, strings.Join(hashing.Algorithms(), ", "))
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:    "keep-prefix",
			Usage:   "compare full paths instead of stripping each side's common root",
			Sources: valueChain("keep-prefix", "ARCHDIFF_KEEP_PREFIX"),
		},
		&cli.BoolFlag{
			Name:    "suppress-common",
			Aliases: []string{"s"},
			Usage:   "only show lines that differ",
			Sources: valueChain("suppress-common", "ARCHDIFF_SUPPRESS_COMMON"),
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "print a one line summary only when the archives differ",
			Sources: valueChain("quiet", "ARCHDIFF_QUIET"),
		},
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "show the diff as a directory tree",
			Sources: valueChain("tree", "ARCHDIFF_TREE"),
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: valueChain("color", "ARCHDIFF_COLOR"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "password for encrypted 7z archives",
			Sources: valueChain("password", "ARCHDIFF_PASSWORD"),
		},
		&cli.BoolFlag{
			Name:        "password-prompt",
			Usage:       "prompt for the archive password instead of passing it on the command line",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "aws-profile",
			Usage:   "AWS shared config profile used for s3:// inputs",
			Sources: valueChain("aws-profile", "ARCHDIFF_AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region override used for s3:// inputs",
			Sources: valueChain("aws-region", "ARCHDIFF_AWS_REGION"),
		},
	}
}

// valueChain resolves a flag through its env var and, when a config file
// exists, the matching YAML key.
func valueChain(key, envVar string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(envVar))
	if path, err := config.Path(); err == nil {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return chain
}
