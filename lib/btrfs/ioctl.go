// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Btrfs ioctl request numbers derived from the upstream Linux kernel
// UAPI header (include/uapi/linux/btrfs.h). These are stable ABI —
// the kernel guarantees backward compatibility for UAPI ioctls.
//
// Bit layout: direction << 30 | size << 16 | type << 8 | nr, where
// the btrfs ioctl type byte is 0x94 and direction is 0 for _IO,
// 1 (write) for _IOW, 2 (read) for _IOR.
const (
	// iocSync encodes _IO(0x94, 8) — BTRFS_IOC_SYNC. No argument;
	// blocks until the filesystem's pending state is durable.
	iocSync = 0x9408

	// iocStartSync encodes _IOR(0x94, 24, __u64) —
	// BTRFS_IOC_START_SYNC. The kernel writes the transaction id of
	// the sync it started into the argument.
	iocStartSync = 0x80089418

	// iocWaitSync encodes _IOW(0x94, 22, __u64) —
	// BTRFS_IOC_WAIT_SYNC. The argument is the transaction id to wait
	// for; zero means the currently open transaction.
	iocWaitSync = 0x40089416
)

// ioctl issues a single btrfs control request on fd. The argument is
// a pointer to the request's __u64 payload, or nil for requests that
// take none. Returns the raw unix.Errno on failure so callers can
// wrap it with operation context.
func ioctl(fd int, request uintptr, argument unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(argument))
	if errno != 0 {
		return errno
	}
	return nil
}
