// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import "unsafe"

// Sync forces all pending writes on the target's filesystem to stable
// storage and blocks until the kernel reports completion. There is no
// partial success: on nil return the whole filesystem's pending state
// is durable.
//
// The target is a path (string or []byte), a [PathSource], an open
// file descriptor (non-negative integer), or a [Target]. The call
// cannot be cancelled; a caller that abandons it from another
// goroutine must accept that an internally opened descriptor stays
// pending closure until the kernel returns.
func Sync(target any) error {
	resolved, err := resolve(target, OpSync)
	if err != nil {
		return err
	}
	defer resolved.close()

	if err := ioctl(resolved.fd, iocSync, nil); err != nil {
		return &OpError{Op: OpSync, Path: resolved.path, Err: err}
	}
	return nil
}

// StartSync begins a sync on the target's filesystem and returns the
// transaction id the kernel assigned to it, without waiting for
// durability. Pass the id to [WaitSync] to block until that
// transaction is on stable storage.
//
// Transaction ids are assigned monotonically by the filesystem;
// uniqueness and ordering are the kernel's guarantee, not this
// package's.
func StartSync(target any) (uint64, error) {
	resolved, err := resolve(target, OpStartSync)
	if err != nil {
		return 0, err
	}
	defer resolved.close()

	var transactionID uint64
	if err := ioctl(resolved.fd, iocStartSync, unsafe.Pointer(&transactionID)); err != nil {
		return 0, &OpError{Op: OpStartSync, Path: resolved.path, Err: err}
	}
	return transactionID, nil
}

// WaitSync blocks until the given transaction on the target's
// filesystem reaches stable storage. A transactionID of zero waits
// for the currently open transaction. Waiting on a transaction id
// returned by [StartSync] on the same filesystem does not race in the
// sequential case: already-committed transactions satisfy the wait
// immediately.
func WaitSync(target any, transactionID uint64) error {
	resolved, err := resolve(target, OpWaitSync)
	if err != nil {
		return err
	}
	defer resolved.close()

	if err := ioctl(resolved.fd, iocWaitSync, unsafe.Pointer(&transactionID)); err != nil {
		return &OpError{Op: OpWaitSync, Path: resolved.path, Err: err}
	}
	return nil
}
