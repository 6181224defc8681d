// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
	"github.com/btrfsctl/btrfsctl/lib/btrfs"
)

type syncParams struct {
	targetParams
}

func syncCommand() *cli.Command {
	var params syncParams

	cmd := &cli.Command{
		Name:    "sync",
		Summary: "Force a filesystem sync and wait for durability",
		Description: `Force all pending writes on a btrfs filesystem to stable storage.

The command blocks until the kernel reports that the filesystem's
pending state is durable. The target is a mount path, an @alias from
the target alias file, or an inherited open file descriptor (--fd).`,
		Usage: "btrfsctl sync <target> [flags]",
		Examples: []cli.Example{
			{
				Description: "Sync the filesystem mounted at /mnt/data",
				Command:     "btrfsctl sync /mnt/data",
			},
			{
				Description: "Sync a filesystem by alias",
				Command:     "btrfsctl sync @data",
			},
			{
				Description: "Sync through a descriptor inherited from the shell",
				Command:     "btrfsctl sync --fd 3 3< /mnt/data",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sync", &params)
		},
	}
	cmd.Run = func(args []string) error {
		target, err := params.target(args, cmd.FlagChanged("fd"))
		if err != nil {
			return err
		}

		logger := cli.NewCommandLogger().With("command", "sync")
		start := time.Now()

		if err := btrfs.Sync(target); err != nil {
			return err
		}

		logger.Info("filesystem sync complete",
			"target", describeTarget(target),
			"elapsed", time.Since(start),
		)
		return nil
	}
	return cmd
}
