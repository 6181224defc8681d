// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/btrfsctl/btrfsctl/cmd/btrfsctl/cli"
)

// targetParams holds the flags shared by every sync operation: where
// the alias file lives and the optional descriptor form of the target.
type targetParams struct {
	Aliases string `flag:"aliases" desc:"path to the target alias file (JSONC)"`
	FD      int64  `flag:"fd" default:"-1" desc:"operate on an inherited open file descriptor instead of a path"`
}

// target interprets the positional arguments plus --fd into the value
// handed to the library: an open descriptor when --fd was set on the
// command line, otherwise a single path argument (with @alias
// resolution). fdSet distinguishes an explicitly passed --fd from the
// default, so --fd -1 is rejected rather than treated as unset. Range
// validation of the descriptor itself is the library's job; this layer
// only sorts out which form the user chose.
func (p *targetParams) target(args []string, fdSet bool) (any, error) {
	if fdSet {
		if p.FD < 0 {
			return nil, cli.Usagef("--fd must be non-negative, got %d", p.FD)
		}
		if len(args) != 0 {
			return nil, cli.Usagef("--fd and a path argument are mutually exclusive")
		}
		return p.FD, nil
	}

	if len(args) == 0 {
		return nil, cli.Usagef("target path is required (or pass --fd)")
	}
	if len(args) > 1 {
		return nil, cli.Usagef("expected exactly one target, got %d", len(args))
	}
	return resolveTargetArg(args[0], p.Aliases)
}

// describeTarget renders the chosen target for log output.
func describeTarget(target any) string {
	if fd, ok := target.(int64); ok {
		return fmt.Sprintf("fd %d", fd)
	}
	return fmt.Sprint(target)
}
