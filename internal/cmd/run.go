// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/liveboot/internal/blockdev"
	"github.com/aibor/liveboot/internal/liveboot"
	"github.com/spf13/cobra"
)

const (
	memDefault = 512
	memMin     = 128
	memMax     = 16384
)

func newRunCommand() *cobra.Command {
	machine := liveboot.Machine{
		MemoryMiB: memDefault,
	}

	var class string

	runCmd := &cobra.Command{
		Use:   "run <source>",
		Short: "Validate a boot source and start the emulator with it",
		Example: `  liveboot run ubuntu-24.04-desktop-amd64.iso
  liveboot run /dev/nvme0n1p2 --headless`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := &liveboot.Spec{
				Source:  liveboot.SourceFor(args[0]),
				Machine: machine,
				Class:   class,
			}

			handle, err := liveboot.Run(cmd.Context(), spec)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Emulator started with PID %d (run %s)\n",
				handle.PID, handle.ID)

			return nil
		},
	}

	flags := runCmd.Flags()

	flags.VarP(
		&LimitedUintValue{
			Value: &machine.MemoryMiB,
			Lower: memMin,
			Upper: memMax,
		},
		"memory",
		"m",
		"memory (in MiB) for the emulator",
	)

	flags.BoolVar(
		&machine.NoKVM,
		"no-kvm",
		machine.NoKVM,
		"disable hardware acceleration even if available",
	)

	flags.BoolVar(
		&machine.Headless,
		"headless",
		machine.Headless,
		"run without graphical display output",
	)

	flags.BoolVar(
		&machine.Audio,
		"audio",
		machine.Audio,
		"enable guest audio output",
	)

	flags.BoolVar(
		&machine.NoNetwork,
		"no-network",
		machine.NoNetwork,
		"disable guest networking",
	)

	flags.StringVar(
		&class,
		"class",
		blockdev.DefaultClass,
		"device name class for partition sources",
	)

	return runCmd
}
