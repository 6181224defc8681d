// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
	"github.com/btrfsctl/btrfsctl/lib/btrfs"
)

type waitSyncParams struct {
	targetParams
	Transid uint64 `flag:"transid" default:"0" desc:"transaction id to wait for (0 = currently open transaction)"`
}

func waitSyncCommand() *cli.Command {
	var params waitSyncParams

	cmd := &cli.Command{
		Name:    "wait-sync",
		Summary: "Block until a transaction reaches stable storage",
		Description: `Wait for a btrfs transaction to reach stable storage.

With --transid, waits for that specific transaction (typically one
returned by 'btrfsctl start-sync'). Without it, waits for the
filesystem's currently open transaction. The command blocks until the
kernel reports durability; there is no timeout.`,
		Usage: "btrfsctl wait-sync <target> [flags]",
		Examples: []cli.Example{
			{
				Description: "Wait for the currently open transaction",
				Command:     "btrfsctl wait-sync /mnt/data",
			},
			{
				Description: "Start a sync, then wait for exactly that transaction",
				Command:     "btrfsctl wait-sync @data --transid $(btrfsctl start-sync @data)",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("wait-sync", &params)
		},
	}
	cmd.Run = func(args []string) error {
		target, err := params.target(args, cmd.FlagChanged("fd"))
		if err != nil {
			return err
		}

		logger := cli.NewCommandLogger().With("command", "wait-sync")
		start := time.Now()

		if err := btrfs.WaitSync(target, params.Transid); err != nil {
			return err
		}

		logger.Info("transaction durable",
			"target", describeTarget(target),
			"transid", params.Transid,
			"elapsed", time.Since(start),
		)
		return nil
	}
	return cmd
}
