// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package liveboot ties device discovery and emulation together. It
// classifies and validates boot sources, derives the emulator
// invocation from host capabilities and user options, and runs the
// whole boot flow.
package liveboot
