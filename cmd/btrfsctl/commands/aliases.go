// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// aliasConfig maps short target names to mount paths. The file is
// authored on disk as JSONC (JSON extended with // line comments,
// /* block comments */, and trailing commas):
//
//	{
//	    // primary data pool
//	    "targets": {
//	        "data": "/mnt/data",
//	        "scratch": "/mnt/scratch",
//	    },
//	}
type aliasConfig struct {
	Targets map[string]string `json:"targets"`
}

// parseAliases strips JSONC comments and trailing commas from data,
// then unmarshals the result.
func parseAliases(data []byte) (*aliasConfig, error) {
	stripped := jsonc.ToJSON(data)

	var config aliasConfig
	if err := json.Unmarshal(stripped, &config); err != nil {
		return nil, fmt.Errorf("parsing alias file: %w", err)
	}
	return &config, nil
}

// loadAliases reads the alias file at path. When path is "" the
// default location is used, and a missing default file yields an
// empty configuration rather than an error — aliases are optional.
// An explicitly named file must exist.
func loadAliases(path string) (*aliasConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultAliasPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &aliasConfig{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	config, err := parseAliases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// defaultAliasPath returns $XDG_CONFIG_HOME/btrfsctl/targets.jsonc,
// falling back to ~/.config when XDG_CONFIG_HOME is unset.
func defaultAliasPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "btrfsctl", "targets.jsonc")
}

// resolveTargetArg turns a CLI target argument into the path to hand
// to the library. Arguments of the form "@name" resolve through the
// alias file; anything else is taken as a literal path.
func resolveTargetArg(argument, aliasPath string) (string, error) {
	if !strings.HasPrefix(argument, "@") {
		return argument, nil
	}

	name := strings.TrimPrefix(argument, "@")
	config, err := loadAliases(aliasPath)
	if err != nil {
		return "", err
	}

	path, ok := config.Targets[name]
	if !ok {
		return "", fmt.Errorf("unknown target alias %q (define it in %s)", name, aliasDisplayPath(aliasPath))
	}
	return path, nil
}

// aliasDisplayPath names the alias file for error messages.
func aliasDisplayPath(aliasPath string) string {
	if aliasPath != "" {
		return aliasPath
	}
	return defaultAliasPath()
}
