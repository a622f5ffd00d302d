// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"

	"github.com/aibor/liveboot/internal/blockdev"
	"github.com/aibor/liveboot/internal/liveboot"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var class string

	validateCmd := &cobra.Command{
		Use:   "validate <source>",
		Short: "Check whether an ISO file or partition is usable as boot source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inventory := blockdev.NewInventory(class)
			source := liveboot.SourceFor(args[0])

			verdict := liveboot.Validate(cmd.Context(), inventory, source)
			if !verdict.OK {
				return errors.New(verdict.Message)
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict.Message)

			return nil
		},
	}

	validateCmd.Flags().StringVar(
		&class,
		"class",
		blockdev.DefaultClass,
		"device name class for partition sources",
	)

	return validateCmd
}
