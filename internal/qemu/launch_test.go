// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/liveboot/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchSpecArguments(t *testing.T) {
	assertArgValue := func(name, expected string) func(*testing.T, qemu.Arguments) {
		return func(t *testing.T, args qemu.Arguments) {
			t.Helper()
			qemu.ArgumentValueAssertionFunc(name, assert.Equal)(t, args, expected)
		}
	}

	tests := []struct {
		name   string
		spec   qemu.LaunchSpec
		assert func(t *testing.T, args qemu.Arguments)
	}{
		{
			name:   "default memory",
			spec:   qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: assertArgValue("m", "512M"),
		},
		{
			name: "memory override",
			spec: qemu.LaunchSpec{
				Source: "/tmp/live.iso",
				Memory: "2048M",
			},
			assert: assertArgValue("m", "2048M"),
		},
		{
			name:   "software emulation by default",
			spec:   qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: assertArgValue("accel", "tcg"),
		},
		{
			name: "hardware acceleration with host cpu",
			spec: qemu.LaunchSpec{
				Source: "/tmp/live.iso",
				Accel:  qemu.AccelKVM,
				CPU:    "host",
			},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assertArgValue("accel", "kvm")(t, args)
				assertArgValue("cpu", "host")(t, args)
			},
		},
		{
			name: "no cpu argument without explicit model",
			spec: qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assert.Empty(t, args.Values("cpu"))
			},
		},
		{
			name:   "windowed display by default",
			spec:   qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: assertArgValue("display", "gtk"),
		},
		{
			name: "headless display",
			spec: qemu.LaunchSpec{
				Source:  "/tmp/live.iso",
				Display: qemu.DisplayNone,
			},
			assert: assertArgValue("display", "none"),
		},
		{
			name: "source attached as optical drive",
			spec: qemu.LaunchSpec{Source: "/dev/nvme0n1p2"},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assertArgValue("cdrom", "/dev/nvme0n1p2")(t, args)
				assertArgValue("boot", "d")(t, args)
			},
		},
		{
			name: "audio off by default",
			spec: qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assert.Empty(t, args.Values("audiodev"))
				assert.NotContains(t,
					args.Values("device"), "AC97,audiodev=audio0")
			},
		},
		{
			name: "audio device",
			spec: qemu.LaunchSpec{
				Source: "/tmp/live.iso",
				Audio:  true,
			},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assertArgValue("audiodev", "alsa,id=audio0")(t, args)
				assert.Contains(t,
					args.Values("device"), "AC97,audiodev=audio0")
			},
		},
		{
			name: "user network by default",
			spec: qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assertArgValue("netdev", "user,id=net0")(t, args)
				assert.Contains(t,
					args.Values("device"), "rtl8139,netdev=net0")
			},
		},
		{
			name: "network disabled",
			spec: qemu.LaunchSpec{
				Source:    "/tmp/live.iso",
				NoNetwork: true,
			},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assert.Empty(t, args.Values("netdev"))
				assert.NotContains(t,
					args.Values("device"), "rtl8139,netdev=net0")
			},
		},
		{
			name: "tablet pointer always attached",
			spec: qemu.LaunchSpec{Source: "/tmp/live.iso"},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assert.Contains(t, args.Values("device"), "usb-tablet")
			},
		},
		{
			name: "extra usb devices",
			spec: qemu.LaunchSpec{
				Source:     "/tmp/live.iso",
				USBDevices: []string{"usb-host,vendorid=0x1234"},
			},
			assert: func(t *testing.T, args qemu.Arguments) {
				t.Helper()
				assert.Contains(t,
					args.Values("device"), "usb-host,vendorid=0x1234")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, tt.spec.Arguments())
		})
	}
}

func TestLaunchSpecArgumentsBuild(t *testing.T) {
	spec := qemu.LaunchSpec{Source: "/tmp/live.iso"}

	actual, err := spec.Arguments().Build()
	require.NoError(t, err)

	expected := []string{
		"-m", "512M",
		"-accel", "tcg",
		"-display", "gtk",
		"-vga", "std",
		"-boot", "d",
		"-cdrom", "/tmp/live.iso",
		"-usb",
		"-device", "usb-tablet",
		"-netdev", "user,id=net0",
		"-device", "rtl8139,netdev=net0",
		"-no-reboot",
	}

	assert.Equal(t, expected, actual)
}
