// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
	"github.com/btrfsctl/btrfsctl/lib/btrfs"
)

type startSyncParams struct {
	cli.JSONOutput
	targetParams
}

// startSyncResult is the machine-readable output of start-sync.
type startSyncResult struct {
	TransactionID uint64 `json:"transaction_id"`
}

func startSyncCommand() *cli.Command {
	var params startSyncParams

	cmd := &cli.Command{
		Name:    "start-sync",
		Summary: "Begin a sync and print its transaction id without waiting",
		Description: `Start a sync on a btrfs filesystem and print the transaction id
the kernel assigned to it, without waiting for durability.

Pass the id to 'btrfsctl wait-sync --transid' to block until that
transaction reaches stable storage.`,
		Usage: "btrfsctl start-sync <target> [flags]",
		Examples: []cli.Example{
			{
				Description: "Kick off a sync and capture the transaction id",
				Command:     "transid=$(btrfsctl start-sync /mnt/data)",
			},
			{
				Description: "Machine-readable output",
				Command:     "btrfsctl start-sync @data --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("start-sync", &params)
		},
	}
	cmd.Run = func(args []string) error {
		target, err := params.target(args, cmd.FlagChanged("fd"))
		if err != nil {
			return err
		}

		transactionID, err := btrfs.StartSync(target)
		if err != nil {
			return err
		}

		if done, err := params.EmitJSON(startSyncResult{TransactionID: transactionID}); done {
			return err
		}
		fmt.Println(transactionID)
		return nil
	}
	return cmd
}
