// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

import "strings"

const (
	// KindISO is an optical disc image file.
	KindISO SourceKind = "iso"

	// KindPartition is a raw partition device node.
	KindPartition SourceKind = "partition"
)

// SourceKind tells an ISO image apart from a raw partition device.
type SourceKind string

// String implements the [fmt.Stringer] interface.
func (k SourceKind) String() string {
	return string(k)
}

// Source is a boot medium chosen by the user.
type Source struct {
	Kind SourceKind
	Path string
}

// SourceFor classifies the given path. Device nodes under /dev are raw
// partitions, everything else is treated as an ISO image.
func SourceFor(path string) Source {
	kind := KindISO
	if strings.HasPrefix(path, "/dev/") {
		kind = KindPartition
	}

	return Source{Kind: kind, Path: path}
}
