// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import "fmt"

// sizeUnits are the suffixes used by [FormatSize] in ascending order of
// magnitude.
var sizeUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// FormatSize renders a byte count with the largest unit that keeps the
// scaled value below 1024, with one decimal place, like "512.0M" for
// 536870912. Values beyond the petabyte range stay in "P".
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	unit := sizeUnits[0]

	for _, next := range sizeUnits[1:] {
		if value < 1024 {
			break
		}

		value /= 1024
		unit = next
	}

	return fmt.Sprintf("%.1f%s", value, unit)
}
