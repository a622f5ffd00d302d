// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"context"
	"fmt"
	"path/filepath"
)

// scanStrategy enumerates device nodes in /dev directly. It is the
// degraded path used when lsblk is unavailable. No filesystem metadata
// can be read this way. Sizes come from the kernel's block device size
// query and bootability from the MBR boot signature probe.
type scanStrategy struct {
	// dir is the device directory, /dev outside of tests.
	dir string

	// nodeOK and sizeOf are swapped in tests, where regular files stand
	// in for device nodes.
	nodeOK func(string) bool
	sizeOf func(string) uint64
}

func newScanStrategy() *scanStrategy {
	return &scanStrategy{
		dir: devDir,
		nodeOK: func(path string) bool {
			ok, err := blockDeviceNode(path)
			return err == nil && ok
		},
		sizeOf: deviceSize,
	}
}

// discover globs the device directory for nodes matching the class
// prefix. Nodes that are not block devices are ignored, like the NVMe
// controller character devices.
func (s *scanStrategy) discover(
	_ context.Context,
	class string,
) ([]Device, error) {
	pattern := filepath.Join(s.dir, class+"*")

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}

	var devices []Device

	for _, path := range paths {
		name := filepath.Base(path)
		if isPartitionName(name, class) {
			continue
		}

		if !s.nodeOK(path) {
			continue
		}

		size := s.sizeOf(path)
		device := Device{
			Path:      path,
			Name:      name,
			SizeBytes: size,
			Size:      FormatSize(size),
		}
		device.Partitions = s.partitions(device, class)

		devices = append(devices, device)
	}

	return devices, nil
}

// partitions globs for the partition nodes of a single device.
func (s *scanStrategy) partitions(device Device, class string) []Partition {
	// Glob errors mean a malformed pattern, which a device path cannot
	// produce.
	paths, _ := filepath.Glob(device.Path + "p*")

	var partitions []Partition

	for _, path := range paths {
		name := filepath.Base(path)
		if !isPartitionName(name, class) {
			continue
		}

		if !s.nodeOK(path) {
			continue
		}

		size := s.sizeOf(path)
		partitions = append(partitions, Partition{
			Path:      path,
			Name:      name,
			Parent:    device.Path,
			SizeBytes: size,
			Size:      FormatSize(size),
			Bootable:  hasBootSignature(path),
		})
	}

	return partitions
}
