// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const name = "liveboot"

// NewCommand builds the root command with all subcommands attached.
func NewCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   name,
		Short: "Boot live ISO images and NVMe partitions in QEMU",
		Long: name + ` boots live ISO images and block device partitions in
an emulator without touching the installed system. It discovers block
devices, checks that a chosen boot source looks bootable, and starts QEMU
with defaults suitable for live media.`,
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(
		&debug,
		"debug",
		debug,
		"enable debug output",
	)

	root.AddCommand(newDevicesCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newRunCommand())
	root.AddCommand(newInfoCommand())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := NewCommand().ExecuteContext(ctx)
	if err != nil {
		return 1
	}

	return 0
}

func versionString() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "dev"
	}

	return buildInfo.Main.Version
}
