// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the btrfsctl binary:
// a pflag-backed command tree with structured help output, typo
// suggestions for unknown commands and flags, struct-tag flag binding,
// JSON output support, and a structured command logger.
package cli
