// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

// ValidationFailedError is returned by [Run] when the chosen boot
// source fails validation. The message is the verdict text and is meant
// for the user as is.
type ValidationFailedError struct {
	Message string
}

// Error implements the [error] interface.
func (e *ValidationFailedError) Error() string {
	return "boot source rejected: " + e.Message
}

// Is implements the [errors.Is] interface.
func (*ValidationFailedError) Is(other error) bool {
	_, ok := other.(*ValidationFailedError)
	return ok
}
