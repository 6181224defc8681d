// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package btrfs issues control requests against a mounted btrfs
// filesystem: force a sync, start an asynchronous sync and obtain its
// transaction id, and wait for a transaction to reach stable storage.
//
// No cgo is required — all ioctl calls use golang.org/x/sys/unix with
// request numbers matching the upstream Linux kernel UAPI header
// (include/uapi/linux/btrfs.h), which is stable ABI.
//
// Every operation takes a target identifying the filesystem to operate
// on: a path (string or []byte), any value implementing [PathSource],
// or an already-open file descriptor given as a non-negative integer.
// A descriptor supplied by the caller is borrowed and never closed
// here; a descriptor opened internally from a path is closed before
// the operation returns, on every exit path.
//
// All calls are blocking and carry no cancellation: Sync and WaitSync
// return when the kernel reports durability or an error. Resources are
// strictly local to each call, so concurrent use from multiple
// goroutines needs no coordination; ordering of concurrent syncs is
// the filesystem's business, not this package's.
package btrfs
