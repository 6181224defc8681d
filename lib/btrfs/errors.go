// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Operation identifies which control request an error came from.
type Operation string

const (
	// OpSync is the blocking whole-filesystem sync.
	OpSync Operation = "sync"

	// OpStartSync begins a sync without waiting for durability.
	OpStartSync Operation = "start-sync"

	// OpWaitSync blocks until a transaction is durable.
	OpWaitSync Operation = "wait-sync"
)

// Sentinel errors for input rejected during target resolution. These
// fire before any system call is issued, so a caller that sees one
// knows the filesystem was never touched.
var (
	// ErrInvalidArgument covers values of an accepted type that cannot
	// name a target: a path with an embedded NUL byte (the kernel
	// would silently truncate it) or a negative descriptor.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow covers descriptor values above the platform maximum.
	// Reported separately from ErrInvalidArgument: too-large and
	// negative are different caller mistakes.
	ErrOverflow = errors.New("descriptor overflows platform maximum")

	// ErrBadEncoding covers textual (string) paths that are not valid
	// UTF-8. Paths outside the textual encoding are still usable —
	// pass the raw bytes as []byte instead.
	ErrBadEncoding = errors.New("path is not valid UTF-8")
)

// TypeError reports a target value of an unsupported dynamic type.
// The message names the accepted set for the failing call site, which
// depends on whether that operation accepts open descriptors.
type TypeError struct {
	// Value is the rejected input.
	Value any

	// AcceptsDescriptor records whether the call site accepts an open
	// file descriptor in addition to path forms.
	AcceptsDescriptor bool
}

func (e *TypeError) Error() string {
	accepted := "string, []byte, or PathSource"
	if e.AcceptsDescriptor {
		accepted = "string, []byte, PathSource, or file descriptor"
	}
	return fmt.Sprintf("expected %s, not %T", accepted, e.Value)
}

// OpError reports a failed filesystem control request. It carries the
// operation, the target path when one was supplied, and the system
// error, so a diagnostic can be produced without re-querying the
// target (which may no longer exist by the time the error is seen).
type OpError struct {
	// Op is the control operation that failed.
	Op Operation

	// Path is the target path, or "" when the caller supplied an open
	// descriptor.
	Path string

	// Err is the underlying system error, normally a unix.Errno.
	Err error
}

func (e *OpError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("btrfs: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("btrfs: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the system error so that errors.Is(err, unix.EBADF)
// and friends compose with generic OS-error handling.
func (e *OpError) Unwrap() error { return e.Err }

// Errno returns the system error code behind e, if there is one.
func (e *OpError) Errno() (unix.Errno, bool) {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

// IsControlError reports whether err is a failed control request, as
// opposed to input rejected before any system interaction.
func IsControlError(err error) bool {
	var opError *OpError
	return errors.As(err, &opError)
}

// IsNotFound reports whether err is a control request that failed
// because the target does not exist.
func IsNotFound(err error) bool {
	return IsControlError(err) && errors.Is(err, unix.ENOENT)
}

// IsNotBtrfs reports whether err is a control request that reached the
// target but the target is not on a btrfs filesystem. The kernel
// rejects btrfs ioctls on foreign filesystems with ENOTTY (or EINVAL
// on some older kernels); both are surfaced unreinterpreted and both
// match here.
func IsNotBtrfs(err error) bool {
	return IsControlError(err) &&
		(errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL))
}
