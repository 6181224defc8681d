// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package btrfs

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestResolve_DescriptorIsBorrowed(t *testing.T) {
	directory, err := os.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open temp dir: %v", err)
	}
	defer directory.Close()

	fd := int(directory.Fd())
	resolved, err := resolve(fd, OpSync)
	if err != nil {
		t.Fatalf("resolve(fd) error: %v", err)
	}
	if resolved.owned {
		t.Error("caller-supplied descriptor resolved as owned")
	}
	if resolved.fd != fd {
		t.Errorf("resolved fd = %d, want %d", resolved.fd, fd)
	}
	if resolved.path != "" {
		t.Errorf("descriptor handle carries path %q", resolved.path)
	}

	// Releasing the handle must leave the caller's descriptor open.
	resolved.close()
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		t.Errorf("caller's descriptor closed by handle release: %v", err)
	}
}

func TestResolve_PathOpensOwnedDescriptor(t *testing.T) {
	directory := t.TempDir()

	resolved, err := resolve(directory, OpSync)
	if err != nil {
		t.Fatalf("resolve(path) error: %v", err)
	}
	if !resolved.owned {
		t.Fatal("path resolution did not produce an owned descriptor")
	}
	if resolved.path != directory {
		t.Errorf("handle path = %q, want %q", resolved.path, directory)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(resolved.fd, &stat); err != nil {
		t.Fatalf("owned descriptor unusable: %v", err)
	}

	// close must actually release it. No other descriptors are opened
	// between close and the check, so the fd number is not reused.
	resolved.close()
	if err := unix.Fstat(resolved.fd, &stat); !errors.Is(err, unix.EBADF) {
		t.Errorf("Fstat after close = %v, want EBADF", err)
	}
}

func TestResolve_EmbeddedNUL(t *testing.T) {
	paths := [][]byte{
		[]byte("\x00/mnt/data"),
		[]byte("/mnt/\x00data"),
		[]byte("/mnt/data\x00"),
	}
	for _, path := range paths {
		_, err := resolve(path, OpSync)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("resolve(%q) error = %v, want ErrInvalidArgument", path, err)
		}
		if IsControlError(err) {
			t.Errorf("resolve(%q) reached the system: %v", path, err)
		}
	}
}

func TestResolve_NULIntroducedByHook(t *testing.T) {
	// The scan must run after the conversion hook, since the hook can
	// itself introduce a NUL.
	_, err := resolve(mountRecord{mountpoint: "/mnt/\x00data"}, OpSync)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("hook-introduced NUL error = %v, want ErrInvalidArgument", err)
	}
}

func TestResolve_OpenFailureIsControlError(t *testing.T) {
	_, err := resolve("/no/such/path/btrfsctl-test", OpSync)
	var opError *OpError
	if !errors.As(err, &opError) {
		t.Fatalf("open failure error = %v, want *OpError", err)
	}
	if opError.Op != OpSync {
		t.Errorf("OpError.Op = %q, want %q", opError.Op, OpSync)
	}
	if opError.Path == "" {
		t.Error("OpError for a path target carries no path")
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("open failure does not unwrap to ENOENT: %v", err)
	}
}

func TestAcceptsDescriptor_CoversAllOperations(t *testing.T) {
	for _, op := range []Operation{OpSync, OpStartSync, OpWaitSync} {
		if _, ok := acceptsDescriptor[op]; !ok {
			t.Errorf("operation %q missing from the descriptor policy table", op)
		}
	}
}
