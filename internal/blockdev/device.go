// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

// Device is a whole block device together with its partitions as seen by
// a single discovery pass. It is a plain value. A later pass returns
// fresh instances and never mutates earlier ones.
type Device struct {
	// Path is the device node, like /dev/nvme0n1.
	Path string

	// Name is the kernel name of the device, like nvme0n1.
	Name string

	// SizeBytes is the device size. Zero if it could not be determined.
	SizeBytes uint64

	// Size is the human readable rendering of SizeBytes.
	Size string

	// Partitions holds the device's partitions in discovery order.
	Partitions []Partition
}
