// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"context"
	"log/slog"
	"strings"
)

// DefaultClass is the device class used when none is given.
const DefaultClass = "nvme"

// discoverer is a single discovery strategy. Implementations return an
// error only if the whole strategy is unusable. Problems with single
// devices are handled internally.
type discoverer interface {
	discover(ctx context.Context, class string) ([]Device, error)
}

// Inventory discovers block devices of one device class and keeps the
// most recent snapshot for partition lookups. It is not safe for
// concurrent use. Each discovery pass replaces the snapshot wholesale,
// slices handed out earlier stay valid but may be stale.
type Inventory struct {
	class string

	primary  discoverer
	fallback discoverer
	umount   []string

	devices    []Device
	discovered bool
}

// NewInventory creates an [Inventory] for the given device class prefix,
// like "nvme". An empty class falls back to [DefaultClass].
func NewInventory(class string) *Inventory {
	if class == "" {
		class = DefaultClass
	}

	return &Inventory{
		class:    class,
		primary:  &lsblkStrategy{bin: lsblkBin},
		fallback: newScanStrategy(),
		umount:   []string{"sudo", "umount"},
	}
}

// Class returns the device class prefix the inventory scans for.
func (i *Inventory) Class() string {
	return i.class
}

// Discover queries the host for block devices of the inventory's class
// and returns a fresh snapshot. It never fails. If lsblk is unavailable
// or emits garbage, a degraded scan of /dev without filesystem metadata
// takes over, and any remaining error yields an empty result.
func (i *Inventory) Discover(ctx context.Context) []Device {
	devices, err := i.primary.discover(ctx, i.class)
	if err != nil {
		slog.Warn("Device listing unavailable, falling back to /dev scan",
			slog.String("class", i.class),
			slog.Any("error", err))

		devices, err = i.fallback.discover(ctx, i.class)
		if err != nil {
			slog.Warn("Device scan failed",
				slog.String("class", i.class),
				slog.Any("error", err))
		}
	}

	i.devices = devices
	i.discovered = true

	return devices
}

// Devices returns the most recent snapshot, running a discovery pass
// first if none happened yet.
func (i *Inventory) Devices(ctx context.Context) []Device {
	if !i.discovered {
		return i.Discover(ctx)
	}

	return i.devices
}

// Partitions returns all partitions of the most recent snapshot in
// device order.
func (i *Inventory) Partitions(ctx context.Context) []Partition {
	var partitions []Partition

	for _, device := range i.Devices(ctx) {
		partitions = append(partitions, device.Partitions...)
	}

	return partitions
}

// BootCandidates returns the partitions of the most recent snapshot that
// look bootable.
func (i *Inventory) BootCandidates(ctx context.Context) []Partition {
	var candidates []Partition

	for _, partition := range i.Partitions(ctx) {
		if partition.Bootable {
			candidates = append(candidates, partition)
		}
	}

	return candidates
}

// PartitionInfo looks up the partition with the given device path in the
// most recent snapshot.
func (i *Inventory) PartitionInfo(
	ctx context.Context,
	path string,
) (Partition, bool) {
	for _, partition := range i.Partitions(ctx) {
		if partition.Path == path {
			return partition, true
		}
	}

	return Partition{}, false
}

// IsPartitionPath reports whether path names a partition node of the
// inventory's device class. It is a pure name check and does not touch
// the host.
func (i *Inventory) IsPartitionPath(path string) bool {
	name, found := strings.CutPrefix(path, devDir+"/")
	return found && isPartitionName(name, i.class)
}

// IsBlockDevice reports whether path is an existing block device node.
// The error is the underlying stat error, so callers can tell a missing
// node from one of the wrong type.
func (i *Inventory) IsBlockDevice(path string) (bool, error) {
	return blockDeviceNode(path)
}
