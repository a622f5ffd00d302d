// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

const lsblkBin = "lsblk"

// Output columns requested from lsblk. The per-device detail query asks
// for the partition table UUID as well.
const (
	lsblkDeviceColumns = "NAME,SIZE,TYPE,MOUNTPOINT,FSTYPE,LABEL,UUID"
	lsblkDetailColumns = lsblkDeviceColumns + ",PARTUUID"
)

// lsblkStrategy shells out to lsblk and parses its JSON output. It runs
// one listing for the whole devices and one detail query per device.
type lsblkStrategy struct {
	// bin is the lsblk executable. Tests point it at a fake.
	bin string
}

// lsblkReport is the top level document lsblk -J emits.
type lsblkReport struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

// lsblkDevice is a single device record. Partitions appear as children
// in the per-device detail query.
type lsblkDevice struct {
	Name       string        `json:"name"`
	Size       flexBytes     `json:"size"`
	Type       string        `json:"type"`
	MountPoint string        `json:"mountpoint"`
	FSType     string        `json:"fstype"`
	Label      string        `json:"label"`
	UUID       string        `json:"uuid"`
	PartUUID   string        `json:"partuuid"`
	Children   []lsblkDevice `json:"children"`
}

// flexBytes decodes a byte count that lsblk emits as a JSON number or,
// with older util-linux releases, as a quoted string.
type flexBytes uint64

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (f *flexBytes) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	if text == "null" || text == "" {
		*f = 0
		return nil
	}

	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parse size: %w", err)
	}

	*f = flexBytes(value)

	return nil
}

// discover lists whole devices matching the class prefix, then queries
// each one for partition details. A failing detail query skips that
// single device only.
func (l *lsblkStrategy) discover(
	ctx context.Context,
	class string,
) ([]Device, error) {
	report, err := l.query(ctx, "-d", "-e7", "-o", lsblkDeviceColumns)
	if err != nil {
		return nil, err
	}

	var devices []Device

	for _, record := range report.BlockDevices {
		if !strings.HasPrefix(record.Name, class) {
			continue
		}

		device := Device{
			Path:      devPath(record.Name),
			Name:      record.Name,
			SizeBytes: uint64(record.Size),
			Size:      FormatSize(uint64(record.Size)),
		}

		partitions, err := l.partitions(ctx, device, class)
		if err != nil {
			slog.Warn("Skipping device, partition query failed",
				slog.String("device", device.Path),
				slog.Any("error", err))

			continue
		}

		device.Partitions = partitions
		devices = append(devices, device)
	}

	return devices, nil
}

// partitions runs the detail query for a single device and converts its
// children. Child records without a partition index marker, like the
// echo of the device itself, are ignored.
func (l *lsblkStrategy) partitions(
	ctx context.Context,
	device Device,
	class string,
) ([]Partition, error) {
	report, err := l.query(ctx, "-o", lsblkDetailColumns, device.Path)
	if err != nil {
		return nil, err
	}

	var partitions []Partition

	for _, record := range report.BlockDevices {
		for _, child := range record.Children {
			if !isPartitionName(child.Name, class) {
				continue
			}

			partition := Partition{
				Path:       devPath(child.Name),
				Name:       child.Name,
				Parent:     device.Path,
				SizeBytes:  uint64(child.Size),
				Size:       FormatSize(uint64(child.Size)),
				FSType:     child.FSType,
				Label:      child.Label,
				UUID:       child.UUID,
				PartUUID:   child.PartUUID,
				MountPoint: child.MountPoint,
			}
			partition.Bootable = IsBootCandidate(partition)

			partitions = append(partitions, partition)
		}
	}

	return partitions, nil
}

// query runs lsblk with JSON output and byte exact sizes and parses the
// response.
func (l *lsblkStrategy) query(
	ctx context.Context,
	args ...string,
) (*lsblkReport, error) {
	args = append([]string{"-J", "-b"}, args...)

	out, err := exec.CommandContext(ctx, l.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", l.bin, err)
	}

	var report lsblkReport

	err = json.Unmarshal(out, &report)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedOutput, err)
	}

	return &report, nil
}
