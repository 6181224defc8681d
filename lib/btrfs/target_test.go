// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// errorSource is a PathSource whose conversion hook fails.
type errorSource struct {
	err error
}

func (s errorSource) FilesystemPath() ([]byte, error) {
	return nil, s.err
}

// mountRecord is a PathSource that produces a path, like a typed
// mount-table entry would.
type mountRecord struct {
	mountpoint string
}

func (m mountRecord) FilesystemPath() ([]byte, error) {
	return []byte(m.mountpoint), nil
}

func TestNewTarget_PathForms(t *testing.T) {
	for _, value := range []any{
		"/mnt/data",
		[]byte("/mnt/data"),
		mountRecord{mountpoint: "/mnt/data"},
		PathTarget("/mnt/data"),
		BytePathTarget([]byte("/mnt/data")),
	} {
		target, err := newTarget(value, true)
		if err != nil {
			t.Fatalf("newTarget(%T) error: %v", value, err)
		}
		if target.IsDescriptor() {
			t.Errorf("newTarget(%T) produced a descriptor target", value)
		}
		if target.String() != "/mnt/data" {
			t.Errorf("newTarget(%T) path = %q, want %q", value, target.String(), "/mnt/data")
		}
	}
}

func TestNewTarget_DescriptorRange(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  error // nil means accepted
	}{
		{"zero", 0, nil},
		{"small", 42, nil},
		{"max", int64(maxDescriptor), nil},
		{"max as uint64", uint64(maxDescriptor), nil},
		{"negative", -1, ErrInvalidArgument},
		{"very negative", int64(math.MinInt64), ErrInvalidArgument},
		{"above max", int64(maxDescriptor) + 1, ErrOverflow},
		{"uint64 above max", uint64(math.MaxUint64), ErrOverflow},
		{"constructed target", DescriptorTarget(42), nil},
		{"negative constructed target", DescriptorTarget(-5), ErrInvalidArgument},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target, err := newTarget(test.value, true)
			if test.want == nil {
				if err != nil {
					t.Fatalf("newTarget(%v) error: %v", test.value, err)
				}
				if !target.IsDescriptor() {
					t.Errorf("newTarget(%v) is not a descriptor target", test.value)
				}
				return
			}
			if !errors.Is(err, test.want) {
				t.Errorf("newTarget(%v) error = %v, want %v", test.value, err, test.want)
			}
			// The two range failures must never be reported as the
			// other kind.
			other := ErrOverflow
			if test.want == ErrOverflow {
				other = ErrInvalidArgument
			}
			if errors.Is(err, other) {
				t.Errorf("newTarget(%v) error matches both range sentinels: %v", test.value, err)
			}
		})
	}
}

func TestNewTarget_DescriptorNotAccepted(t *testing.T) {
	_, err := newTarget(3, false)
	var typeError *TypeError
	if !errors.As(err, &typeError) {
		t.Fatalf("newTarget(int, path-only) error = %v, want *TypeError", err)
	}
	if typeError.AcceptsDescriptor {
		t.Error("TypeError claims descriptors are accepted at a path-only call site")
	}
	if strings.Contains(typeError.Error(), "file descriptor") {
		t.Errorf("path-only TypeError names descriptors: %q", typeError.Error())
	}

	_, err = newTarget(DescriptorTarget(3), false)
	if !errors.As(err, &typeError) {
		t.Fatalf("newTarget(DescriptorTarget, path-only) error = %v, want *TypeError", err)
	}
}

func TestNewTarget_UnsupportedType(t *testing.T) {
	for _, value := range []any{3.14, struct{}{}, nil, true} {
		_, err := newTarget(value, true)
		var typeError *TypeError
		if !errors.As(err, &typeError) {
			t.Fatalf("newTarget(%T) error = %v, want *TypeError", value, err)
		}
		if !strings.Contains(typeError.Error(), "file descriptor") {
			t.Errorf("descriptor-accepting TypeError omits descriptors: %q", typeError.Error())
		}
		if !strings.Contains(typeError.Error(), "PathSource") {
			t.Errorf("TypeError omits the PathSource hook: %q", typeError.Error())
		}
	}
}

func TestNewTarget_PathSourceErrorPropagates(t *testing.T) {
	hookFailure := errors.New("mount table is stale")
	_, err := newTarget(errorSource{err: hookFailure}, true)
	if !errors.Is(err, hookFailure) {
		t.Fatalf("hook error = %v, want %v propagated as-is", err, hookFailure)
	}
	var typeError *TypeError
	if errors.As(err, &typeError) {
		t.Errorf("hook failure was reinterpreted as *TypeError: %v", err)
	}
}

func TestNewTarget_InvalidUTF8String(t *testing.T) {
	_, err := newTarget("/mnt/\xff\xfe", true)
	if !errors.Is(err, ErrBadEncoding) {
		t.Fatalf("invalid UTF-8 string error = %v, want ErrBadEncoding", err)
	}

	// The same bytes are fine as a raw byte path.
	if _, err := newTarget([]byte("/mnt/\xff\xfe"), true); err != nil {
		t.Fatalf("raw byte path rejected: %v", err)
	}
}

func TestBytePathTarget_CopiesBuffer(t *testing.T) {
	source := []byte("/mnt/data")
	target := BytePathTarget(source)
	source[1] = 'X'
	if target.String() != "/mnt/data" {
		t.Errorf("target observed caller mutation: %q", target.String())
	}
}
