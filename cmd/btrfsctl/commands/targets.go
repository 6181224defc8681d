// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
)

type targetsParams struct {
	cli.JSONOutput
	Aliases string `flag:"aliases" desc:"path to the target alias file (JSONC)"`
}

// targetEntry is one row of the targets listing.
type targetEntry struct {
	Alias string `json:"alias"`
	Path  string `json:"path"`
}

func targetsCommand() *cli.Command {
	var params targetsParams

	return &cli.Command{
		Name:    "targets",
		Summary: "List configured target aliases",
		Description: `List the target aliases available for @name arguments.

Aliases are read from the file given by --aliases, or from
$XDG_CONFIG_HOME/btrfsctl/targets.jsonc by default. A missing default
file simply means no aliases are configured.`,
		Usage: "btrfsctl targets [flags]",
		Examples: []cli.Example{
			{
				Description: "Show aliases as a table",
				Command:     "btrfsctl targets",
			},
			{
				Description: "Machine-readable listing",
				Command:     "btrfsctl targets --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("targets", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Usagef("targets takes no arguments, got %d", len(args))
			}

			config, err := loadAliases(params.Aliases)
			if err != nil {
				return err
			}

			entries := make([]targetEntry, 0, len(config.Targets))
			for alias, path := range config.Targets {
				entries = append(entries, targetEntry{Alias: alias, Path: path})
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Alias < entries[j].Alias
			})

			if done, err := params.EmitJSON(entries); done {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("no target aliases configured (looked in %s)\n", aliasDisplayPath(params.Aliases))
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ALIAS\tPATH\n")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", entry.Alias, entry.Path)
			}
			return tw.Flush()
		},
	}
}
