// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete btrfsctl CLI command tree.
package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
	"github.com/btrfsctl/btrfsctl/lib/version"
)

// Root builds and returns the complete btrfsctl CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "btrfsctl",
		Description: `btrfsctl: sync control for btrfs filesystems.

Force a sync, start one asynchronously and obtain its transaction id,
or block until a given transaction is durable. Targets are mount
paths, @aliases from the target alias file, or inherited open file
descriptors.`,
		Subcommands: []*cli.Command{
			syncCommand(),
			startSyncCommand(),
			waitSyncCommand(),
			targetsCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Sync the filesystem mounted at /mnt/data and wait for durability",
				Command:     "btrfsctl sync /mnt/data",
			},
			{
				Description: "Start a sync without waiting, then wait for that exact transaction",
				Command:     "btrfsctl wait-sync /mnt/data --transid $(btrfsctl start-sync /mnt/data)",
			},
			{
				Description: "List configured target aliases",
				Command:     "btrfsctl targets",
			},
		},
	}
}

type versionParams struct {
	Short bool `flag:"short" desc:"print only the version number"`
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if params.Short {
				fmt.Println(version.Short())
				return nil
			}
			fmt.Printf("btrfsctl %s\n", version.Full())
			return nil
		},
	}
}
