// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command tree and maps the outcome to an exit code:
// 0 on success, 2 for usage errors, 1 for operation failures. Commands
// that print their own output return a bare ExitError with the desired
// code; no redundant "error:" line is printed for those.
func run(args []string) int {
	err := commands.Root().Execute(args)
	if err == nil {
		return 0
	}

	var silent *cli.ExitError
	if errors.As(err, &silent) {
		return silent.ExitCode()
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
