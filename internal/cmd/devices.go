// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aibor/liveboot/internal/blockdev"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	treeBranch = "  ├─ "
	treeLeaf   = "  └─ "
)

func newDevicesCommand() *cobra.Command {
	var classes []string

	devicesCmd := &cobra.Command{
		Use:   "devices",
		Short: "List block devices and their partitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			devices, err := discoverAll(cmd.Context(), classes)
			if err != nil {
				return err
			}

			if len(devices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No devices found.")
				return nil
			}

			for _, device := range devices {
				printDevice(cmd.OutOrStdout(), device)
			}

			return nil
		},
	}

	devicesCmd.Flags().StringArrayVar(
		&classes,
		"class",
		[]string{blockdev.DefaultClass},
		"device name class to probe, may be given multiple times",
	)

	return devicesCmd
}

// discoverAll probes all classes concurrently and returns the devices in
// class order.
func discoverAll(
	ctx context.Context,
	classes []string,
) ([]blockdev.Device, error) {
	group, ctx := errgroup.WithContext(ctx)
	results := make([][]blockdev.Device, len(classes))

	for idx, class := range classes {
		group.Go(func() error {
			results[idx] = blockdev.NewInventory(class).Devices(ctx)
			return ctx.Err()
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("discover devices: %w", err)
	}

	var devices []blockdev.Device
	for _, result := range results {
		devices = append(devices, result...)
	}

	return devices, nil
}

func printDevice(writer io.Writer, device blockdev.Device) {
	fmt.Fprintf(writer, "%s  %s  %s\n", device.Name, device.Size, device.Path)

	for idx, partition := range device.Partitions {
		branch := treeBranch
		if idx == len(device.Partitions)-1 {
			branch = treeLeaf
		}

		fmt.Fprintf(writer, "%s%s\n", branch, partitionLine(partition))
	}
}

func partitionLine(partition blockdev.Partition) string {
	fields := []string{partition.Name, partition.Size}

	if partition.FSType != "" {
		fields = append(fields, partition.FSType)
	}

	if partition.Label != "" {
		fields = append(fields, "["+partition.Label+"]")
	}

	if partition.Mounted() {
		fields = append(fields, "mounted on "+partition.MountPoint)
	}

	if partition.Bootable {
		fields = append(fields, "(bootable)")
	}

	return strings.Join(fields, "  ")
}
