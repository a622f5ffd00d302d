// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/liveboot/internal/qemu"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show emulator and host virtualization details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caps, err := qemu.ProbeCapabilities()
			if err != nil {
				return err
			}

			info := qemu.NewLauncher(caps).SystemInfo(cmd.Context())

			writer := cmd.OutOrStdout()
			fmt.Fprintf(writer, "Emulator:       %s\n", info.Executable)
			fmt.Fprintf(writer, "Version:        %s\n", info.Version)
			fmt.Fprintf(writer, "KVM:            %s\n", availability(info.KVM))
			fmt.Fprintf(writer, "Default memory: %s\n", info.DefaultMemory)

			return nil
		},
	}
}

func availability(usable bool) string {
	if usable {
		return "available"
	}

	return "not available"
}
