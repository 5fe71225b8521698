// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archdiff/archdiff/internal/log"
)

// EnvConfigFile overrides the config file location when set.
const EnvConfigFile = "ARCHDIFF_CONFIG"

// Filename is the config file name looked up in the user config directory.
const Filename = "archdiff.yaml"

// Path returns the absolute path to the YAML config file. If the
// ARCHDIFF_CONFIG environment variable is set, it is treated as the full path
// to the config file and must name an existing file. Otherwise the
// OS-specific user configuration directory returned by os.UserConfigDir is
// searched for "archdiff.yaml". An error means no usable config file exists;
// callers treat that as running on flag defaults.
func Path() (string, error) {
	if cfgPath := os.Getenv(EnvConfigFile); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from %s: %s", EnvConfigFile, cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("%s points to a directory: %s", EnvConfigFile, cfgPath)
		}
		return "", fmt.Errorf("config file not found at %s path: %s", EnvConfigFile, cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, Filename)
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("no config file found in standard locations")
}
