// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// maxDescriptor is the largest file descriptor value accepted from a
// caller. Descriptors are C ints in the kernel ABI, so anything above
// the C int range cannot name an open file.
const maxDescriptor = math.MaxInt32

// PathSource is the conversion hook for path-like values. Any type
// that can produce a filesystem path byte sequence — a mount record, a
// device handle, a typed path wrapper — can be passed directly to the
// control operations. The hook is attempted before a value is
// considered as a descriptor, and an error from it propagates to the
// caller untouched.
type PathSource interface {
	FilesystemPath() ([]byte, error)
}

// targetKind selects which variant of a Target is populated.
type targetKind uint8

const (
	kindPath targetKind = iota
	kindDescriptor
)

// Target identifies the filesystem a control operation applies to:
// a path or an already-open file descriptor. Exactly one variant is
// set. The zero Target is an empty path target.
//
// A path Target owns its byte buffer (constructors copy). A
// descriptor Target does not own the descriptor — the caller keeps
// ownership, and no operation in this package will close it.
type Target struct {
	kind targetKind
	path []byte
	fd   int
}

// PathTarget returns a Target naming a filesystem by textual path.
func PathTarget(path string) Target {
	return Target{kind: kindPath, path: []byte(path)}
}

// BytePathTarget returns a Target naming a filesystem by raw byte
// path. The bytes are copied; the caller's slice is not retained.
func BytePathTarget(path []byte) Target {
	return Target{kind: kindPath, path: append([]byte(nil), path...)}
}

// DescriptorTarget returns a Target naming a filesystem by an open
// file descriptor. The descriptor stays owned by the caller.
func DescriptorTarget(fd int) Target {
	return Target{kind: kindDescriptor, fd: fd}
}

// IsDescriptor reports whether the target is an open descriptor
// rather than a path.
func (t Target) IsDescriptor() bool { return t.kind == kindDescriptor }

// String renders the target for diagnostics.
func (t Target) String() string {
	if t.kind == kindDescriptor {
		return fmt.Sprintf("fd %d", t.fd)
	}
	return string(t.path)
}

// newTarget interprets a dynamically typed target value. The accepted
// shapes are: Target, string, []byte, PathSource, and — only when
// acceptDescriptor is set — any integer kind. PathSource is attempted
// before integer interpretation, matching the path-like hook's
// precedence over descriptors. Anything else is a *TypeError naming
// the accepted set.
func newTarget(value any, acceptDescriptor bool) (Target, error) {
	switch v := value.(type) {
	case Target:
		if v.kind == kindDescriptor {
			if !acceptDescriptor {
				return Target{}, &TypeError{Value: value, AcceptsDescriptor: false}
			}
			// A constructed descriptor target gets the same range split
			// as a raw integer; nothing out of range reaches the kernel.
			return descriptorFromInt(int64(v.fd), value, true)
		}
		return v, nil

	case string:
		if !utf8.ValidString(v) {
			return Target{}, fmt.Errorf("%q: %w", v, ErrBadEncoding)
		}
		return PathTarget(v), nil

	case []byte:
		return BytePathTarget(v), nil

	case PathSource:
		path, err := v.FilesystemPath()
		if err != nil {
			// The hook's failure is the caller's own error type;
			// reinterpreting it as a type mismatch would hide it.
			return Target{}, err
		}
		return BytePathTarget(path), nil

	case int:
		return descriptorFromInt(int64(v), value, acceptDescriptor)
	case int8:
		return descriptorFromInt(int64(v), value, acceptDescriptor)
	case int16:
		return descriptorFromInt(int64(v), value, acceptDescriptor)
	case int32:
		return descriptorFromInt(int64(v), value, acceptDescriptor)
	case int64:
		return descriptorFromInt(v, value, acceptDescriptor)
	case uint:
		return descriptorFromUint(uint64(v), value, acceptDescriptor)
	case uint8:
		return descriptorFromUint(uint64(v), value, acceptDescriptor)
	case uint16:
		return descriptorFromUint(uint64(v), value, acceptDescriptor)
	case uint32:
		return descriptorFromUint(uint64(v), value, acceptDescriptor)
	case uint64:
		return descriptorFromUint(v, value, acceptDescriptor)
	case uintptr:
		return descriptorFromUint(uint64(v), value, acceptDescriptor)

	default:
		return Target{}, &TypeError{Value: value, AcceptsDescriptor: acceptDescriptor}
	}
}

// descriptorFromInt validates a signed integer as a descriptor.
// Negative and too-large values are distinct, separately reported
// conditions — never merged into one generic failure.
func descriptorFromInt(fd int64, original any, acceptDescriptor bool) (Target, error) {
	if !acceptDescriptor {
		return Target{}, &TypeError{Value: original, AcceptsDescriptor: false}
	}
	if fd < 0 {
		return Target{}, fmt.Errorf("descriptor %d is negative: %w", fd, ErrInvalidArgument)
	}
	if fd > maxDescriptor {
		return Target{}, fmt.Errorf("descriptor %d is greater than maximum %d: %w", fd, int64(maxDescriptor), ErrOverflow)
	}
	return DescriptorTarget(int(fd)), nil
}

// descriptorFromUint validates an unsigned integer as a descriptor.
func descriptorFromUint(fd uint64, original any, acceptDescriptor bool) (Target, error) {
	if !acceptDescriptor {
		return Target{}, &TypeError{Value: original, AcceptsDescriptor: false}
	}
	if fd > maxDescriptor {
		return Target{}, fmt.Errorf("descriptor %d is greater than maximum %d: %w", fd, int64(maxDescriptor), ErrOverflow)
	}
	return DescriptorTarget(int(fd)), nil
}
