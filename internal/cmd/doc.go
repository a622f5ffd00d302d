// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI commands for liveboot. It handles flag
// parsing, validation output, and emulator launch.
package cmd
