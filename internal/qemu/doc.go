// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu composes and launches QEMU invocations for booting live
// media. It resolves the emulator binary and hardware acceleration
// support once at startup, compiles a [LaunchSpec] into an argument
// list, and starts the emulator as a detached process that is watched
// just long enough to catch immediate startup failures.
package qemu
