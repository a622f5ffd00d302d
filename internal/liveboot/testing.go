// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/aibor/liveboot/internal/blockdev"
)

// InventoryStub is a canned [Inventory] for tests. Paths absent from
// both Nodes and NodeErrs report [fs.ErrNotExist].
type InventoryStub struct {
	// DeviceClass is the class reported by Class. Empty means
	// [blockdev.DefaultClass].
	DeviceClass string

	// Partitions are the known partitions, looked up by path.
	Partitions []blockdev.Partition

	// Nodes maps paths to their block device answer.
	Nodes map[string]bool

	// NodeErrs maps paths to a stat error.
	NodeErrs map[string]error

	// Unmounted records the paths Unmount was called with.
	Unmounted []string
}

// Class implements the [Inventory] interface.
func (s *InventoryStub) Class() string {
	if s.DeviceClass == "" {
		return blockdev.DefaultClass
	}

	return s.DeviceClass
}

// IsPartitionPath implements the [Inventory] interface. Known
// partitions count as partition paths wherever they live, so tests can
// use throwaway files instead of real device nodes.
func (s *InventoryStub) IsPartitionPath(path string) bool {
	if _, found := s.PartitionInfo(context.Background(), path); found {
		return true
	}

	return strings.HasPrefix(path, "/dev/"+s.Class())
}

// IsBlockDevice implements the [Inventory] interface.
func (s *InventoryStub) IsBlockDevice(path string) (bool, error) {
	if err, found := s.NodeErrs[path]; found {
		return false, err
	}

	ok, found := s.Nodes[path]
	if !found {
		return false, fmt.Errorf("stat %s: %w", path, fs.ErrNotExist)
	}

	return ok, nil
}

// PartitionInfo implements the [Inventory] interface.
func (s *InventoryStub) PartitionInfo(
	_ context.Context,
	path string,
) (blockdev.Partition, bool) {
	for _, partition := range s.Partitions {
		if partition.Path == path {
			return partition, true
		}
	}

	return blockdev.Partition{}, false
}

// Unmount implements the [Inventory] interface.
func (s *InventoryStub) Unmount(_ context.Context, path string) {
	s.Unmounted = append(s.Unmounted, path)
}
