// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import "errors"

// ErrUnexpectedOutput is returned when the host's block device listing
// tool responds with something that is not valid JSON.
var ErrUnexpectedOutput = errors.New("unexpected lsblk output")
