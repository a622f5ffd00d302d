// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aibor/liveboot/internal/blockdev"
	"github.com/aibor/liveboot/internal/qemu"
)

// Spec describes a single boot request, which medium to boot and how to
// shape the virtual machine.
type Spec struct {
	// Source is the boot medium.
	Source Source

	// Machine shapes the virtual machine.
	Machine Machine

	// Class is the device class for partition sources. Empty selects
	// [blockdev.DefaultClass].
	Class string

	// GracePeriod overrides the emulator startup watch window. Zero
	// means [qemu.DefaultGracePeriod].
	GracePeriod time.Duration
}

// Run validates the boot source, releases it if it is a mounted
// partition, and launches the emulator. It returns once the emulator is
// confirmed running. The returned handle identifies the detached
// process. Validation failures surface as [ValidationFailedError].
func Run(ctx context.Context, spec *Spec) (*qemu.Handle, error) {
	caps, err := qemu.ProbeCapabilities()
	if err != nil {
		return nil, err
	}

	slog.Debug("Host capabilities probed",
		slog.String("executable", caps.Executable),
		slog.Bool("kvm", caps.KVM))

	return run(ctx, spec, blockdev.NewInventory(spec.Class), caps)
}

func run(
	ctx context.Context,
	spec *Spec,
	inv Inventory,
	caps *qemu.Capabilities,
) (*qemu.Handle, error) {
	verdict := Validate(ctx, inv, spec.Source)
	if !verdict.OK {
		return nil, &ValidationFailedError{Message: verdict.Message}
	}

	slog.Info("Boot source validated",
		slog.String("source", spec.Source.Path),
		slog.String("kind", spec.Source.Kind.String()),
		slog.String("verdict", verdict.Message))

	if spec.Source.Kind == KindPartition {
		// Best effort release. The emulator needs the partition more
		// than the host does right now.
		inv.Unmount(ctx, spec.Source.Path)
	}

	launchSpec := NewLaunchSpec(spec.Source, spec.Machine, caps)

	launcher := qemu.NewLauncher(caps)
	launcher.GracePeriod = spec.GracePeriod

	handle, err := launcher.Launch(ctx, &launchSpec)
	if err != nil {
		return nil, fmt.Errorf("boot %s: %w", spec.Source.Path, err)
	}

	return handle, nil
}
