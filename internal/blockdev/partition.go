// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"regexp"
	"strings"
)

// Partition is a single partition of a [Device].
type Partition struct {
	// Path is the partition node, like /dev/nvme0n1p2.
	Path string

	// Name is the kernel name, like nvme0n1p2.
	Name string

	// Parent is the path of the device the partition belongs to. It
	// matches exactly one [Device.Path] of the same discovery pass.
	Parent string

	// SizeBytes is the partition size. Zero if it could not be
	// determined.
	SizeBytes uint64

	// Size is the human readable rendering of SizeBytes.
	Size string

	// FSType is the filesystem type as reported by the host. Empty if
	// unknown, which is always the case in degraded discovery.
	FSType string

	// Label is the filesystem label, if any.
	Label string

	// UUID is the filesystem UUID, if any.
	UUID string

	// PartUUID is the partition table UUID, if any.
	PartUUID string

	// MountPoint is the current mount point. Empty if not mounted.
	MountPoint string

	// Bootable reports whether the partition looks like a boot
	// candidate. See [IsBootCandidate].
	Bootable bool
}

// Mounted reports whether the partition is currently mounted.
func (p *Partition) Mounted() bool {
	return p.MountPoint != ""
}

// partitionIndexRE matches the partition index marker partition names
// carry, like the p2 in nvme0n1p2.
var partitionIndexRE = regexp.MustCompile(`p[0-9]+$`)

// isPartitionName reports whether name denotes a partition of the given
// device class, rather than a whole device node.
func isPartitionName(name, class string) bool {
	return strings.HasPrefix(name, class) && partitionIndexRE.MatchString(name)
}
