// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blockdev discovers host block devices of a single device class,
// NVMe by default, and classifies their partitions as boot candidates.
//
// Discovery prefers the host's lsblk tool and parses its JSON output. If
// lsblk is missing or emits garbage, a degraded scan of /dev device nodes
// takes over that works without filesystem metadata. Discovery never
// fails. Errors are logged and the result is whatever could be found,
// possibly nothing.
package blockdev
