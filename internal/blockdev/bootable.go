// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"slices"
	"strconv"
	"strings"
)

// bootableFilesystems are filesystem types an x86 machine commonly boots
// from.
var bootableFilesystems = []string{
	"fat32", "vfat", "fat16", "ntfs", "ext2", "ext3", "ext4", "btrfs", "xfs",
}

// bootLabelHints are label substrings that usually mark boot, EFI or
// recovery partitions.
var bootLabelHints = []string{
	"boot", "efi", "system", "recovery", "windows", "linux",
}

// Size range of a typical EFI system partition, in megabytes.
const (
	espSizeMinMB = 50
	espSizeMaxMB = 1024
)

// IsBootCandidate reports whether the partition is plausibly bootable.
// It is a pure function of the partition's filesystem type, label and
// rendered size. A known bootable filesystem, a tell-tale label, or a
// FAT partition in the usual EFI system partition size range all count.
// Case of filesystem type and label does not matter.
func IsBootCandidate(p Partition) bool {
	fstype := strings.ToLower(p.FSType)
	if slices.Contains(bootableFilesystems, fstype) {
		return true
	}

	label := strings.ToLower(p.Label)
	for _, hint := range bootLabelHints {
		if strings.Contains(label, hint) {
			return true
		}
	}

	if fstype == "fat32" || fstype == "vfat" {
		if mb, ok := parseMegabytes(p.Size); ok {
			return mb >= espSizeMinMB && mb <= espSizeMaxMB
		}
	}

	return false
}

// parseMegabytes extracts the numeric value from a size string rendered
// in megabytes, like "512.0M" or "200M". It reports false for any other
// unit.
func parseMegabytes(size string) (float64, bool) {
	num, found := strings.CutSuffix(size, "M")
	if !found {
		return 0, false
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
