// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

import (
	"strconv"

	"github.com/aibor/liveboot/internal/qemu"
)

// Machine holds the user tunable virtual machine options. The zero
// value asks for the defaults. 512 MiB memory, hardware acceleration
// when available, a graphical window, networking on, audio off.
type Machine struct {
	// MemoryMiB is the guest memory size in MiB. Zero means default.
	MemoryMiB uint64

	// NoKVM forces software emulation even when the host supports
	// hardware acceleration.
	NoKVM bool

	// Headless disables the graphical window.
	Headless bool

	// Audio attaches an audio device.
	Audio bool

	// NoNetwork disables guest networking.
	NoNetwork bool
}

// NewLaunchSpec derives the emulator invocation for the given boot
// source from the machine options and host capabilities. Hardware
// acceleration is used only if the host supports it and the options do
// not veto it. Only then the virtual CPU mirrors the host CPU. The
// function is a pure transformation and does not touch the host.
func NewLaunchSpec(
	src Source,
	machine Machine,
	caps *qemu.Capabilities,
) qemu.LaunchSpec {
	memory := qemu.DefaultMemory
	if machine.MemoryMiB > 0 {
		memory = strconv.FormatUint(machine.MemoryMiB, 10) + "M"
	}

	accel := qemu.AccelTCG
	cpu := ""

	if caps.KVM && !machine.NoKVM {
		accel = qemu.AccelKVM
		cpu = "host"
	}

	display := qemu.DisplayGTK
	if machine.Headless {
		display = qemu.DisplayNone
	}

	return qemu.LaunchSpec{
		Source:    src.Path,
		Memory:    memory,
		Accel:     accel,
		CPU:       cpu,
		Display:   display,
		VGA:       qemu.VGAStandard,
		Audio:     machine.Audio,
		NoNetwork: machine.NoNetwork,
	}
}
