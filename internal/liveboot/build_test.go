// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot_test

import (
	"testing"

	"github.com/aibor/liveboot/internal/liveboot"
	"github.com/aibor/liveboot/internal/qemu"
	"github.com/stretchr/testify/assert"
)

func TestNewLaunchSpec(t *testing.T) {
	src := liveboot.SourceFor("/home/user/live.iso")

	tests := []struct {
		name     string
		machine  liveboot.Machine
		caps     qemu.Capabilities
		expected qemu.LaunchSpec
	}{
		{
			name:    "defaults with hardware acceleration",
			machine: liveboot.Machine{},
			caps:    qemu.Capabilities{KVM: true},
			expected: qemu.LaunchSpec{
				Source:  src.Path,
				Memory:  "512M",
				Accel:   qemu.AccelKVM,
				CPU:     "host",
				Display: qemu.DisplayGTK,
				VGA:     qemu.VGAStandard,
			},
		},
		{
			name:    "acceleration vetoed",
			machine: liveboot.Machine{NoKVM: true},
			caps:    qemu.Capabilities{KVM: true},
			expected: qemu.LaunchSpec{
				Source:  src.Path,
				Memory:  "512M",
				Accel:   qemu.AccelTCG,
				Display: qemu.DisplayGTK,
				VGA:     qemu.VGAStandard,
			},
		},
		{
			name:    "host without acceleration",
			machine: liveboot.Machine{},
			caps:    qemu.Capabilities{},
			expected: qemu.LaunchSpec{
				Source:  src.Path,
				Memory:  "512M",
				Accel:   qemu.AccelTCG,
				Display: qemu.DisplayGTK,
				VGA:     qemu.VGAStandard,
			},
		},
		{
			name:    "memory override",
			machine: liveboot.Machine{MemoryMiB: 2048},
			caps:    qemu.Capabilities{},
			expected: qemu.LaunchSpec{
				Source:  src.Path,
				Memory:  "2048M",
				Accel:   qemu.AccelTCG,
				Display: qemu.DisplayGTK,
				VGA:     qemu.VGAStandard,
			},
		},
		{
			name: "headless with extras",
			machine: liveboot.Machine{
				Headless:  true,
				Audio:     true,
				NoNetwork: true,
			},
			caps: qemu.Capabilities{},
			expected: qemu.LaunchSpec{
				Source:    src.Path,
				Memory:    "512M",
				Accel:     qemu.AccelTCG,
				Display:   qemu.DisplayNone,
				VGA:       qemu.VGAStandard,
				Audio:     true,
				NoNetwork: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := liveboot.NewLaunchSpec(src, tt.machine, &tt.caps)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
