// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string —
// the command is expected to have already written its own output.
//
// Useful for commands where a non-zero exit is a valid outcome rather
// than an unexpected error.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError marks a failure in how the command was invoked — an
// unknown command or flag, a missing or conflicting argument — as
// opposed to a failure of the operation itself. main prints the
// message and exits 2 for usage errors, 1 for everything else.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode returns 2, the conventional exit code for usage errors.
func (e *UsageError) ExitCode() int {
	return 2
}

// Usagef returns a formatted *UsageError.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
