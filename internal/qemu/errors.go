// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "errors"

var (
	// ErrEmulatorNotFound is returned when none of the known emulator
	// binaries is installed.
	ErrEmulatorNotFound = errors.New("no emulator binary found")

	// ErrBootSourceMissing is returned when the boot medium is gone by
	// the time the emulator should start.
	ErrBootSourceMissing = errors.New("boot source does not exist")

	// ErrEarlyExit is returned when the emulator process dies within
	// the startup grace window.
	ErrEarlyExit = errors.New("emulator exited during startup")

	// ErrArgumentCollision is returned when an argument clashes with
	// another one in the same invocation.
	ErrArgumentCollision = errors.New("colliding arguments")
)

// LaunchError wraps any error that occurs starting the emulator. Output
// carries whatever the emulator wrote to its error stream before dying,
// if anything.
type LaunchError struct {
	Err    error
	Output string
}

// Error implements the [error] interface.
func (e *LaunchError) Error() string {
	msg := "launch: " + e.Err.Error()
	if e.Output != "" {
		msg += ": " + e.Output
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*LaunchError) Is(other error) bool {
	_, ok := other.(*LaunchError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
