// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// acceptsDescriptor is the fixed per-operation policy for whether a
// target may be an open file descriptor. Every sync operation accepts
// one. Several upstream btrfs ioctls are path-only, so acceptance is
// a per-operation table rather than a blanket rule.
var acceptsDescriptor = map[Operation]bool{
	OpSync:      true,
	OpStartSync: true,
	OpWaitSync:  true,
}

// handle is the per-call resolution of a target: the descriptor a
// control request is issued on, plus whether this call owns it. A
// handle is created for one operation and released at the end of that
// operation's scope; it is never cached or shared.
type handle struct {
	fd int

	// path is the original path for error context, or "" when the
	// caller supplied the descriptor.
	path string

	// owned is set when the descriptor was opened here. Borrowed
	// descriptors (supplied by the caller) are never closed.
	owned bool
}

// close releases the descriptor if this call opened it. Safe to call
// on every exit path; borrowed descriptors pass through untouched.
func (h *handle) close() {
	if h.owned {
		unix.Close(h.fd)
	}
}

// resolve interprets a target value for the given operation and
// produces the descriptor to issue its ioctl on. All input validation
// happens here, before any system call: unsupported types, descriptor
// range, textual encoding, and the embedded-NUL scan. The NUL scan
// runs after every conversion step (string to bytes, PathSource hook)
// since a conversion can itself introduce a NUL.
//
// For path targets the named filesystem object is opened read-only;
// the returned handle owns that descriptor and the caller of resolve
// must close it exactly once, on every exit path. Open failures are
// reported as *OpError — they come from the system, not from input
// validation.
func resolve(value any, op Operation) (*handle, error) {
	target, err := newTarget(value, acceptsDescriptor[op])
	if err != nil {
		return nil, err
	}

	if target.kind == kindDescriptor {
		return &handle{fd: target.fd}, nil
	}

	if index := bytes.IndexByte(target.path, 0); index >= 0 {
		return nil, fmt.Errorf("path has embedded NUL byte at offset %d: %w", index, ErrInvalidArgument)
	}

	path := string(target.path)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &OpError{Op: op, Path: path, Err: err}
	}
	return &handle{fd: fd, path: path, owned: true}, nil
}
