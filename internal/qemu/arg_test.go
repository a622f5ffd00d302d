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

func TestArgumentString(t *testing.T) {
	tests := []struct {
		name     string
		arg      qemu.Argument
		expected string
	}{
		{
			name:     "switch without value",
			arg:      qemu.UniqueArg("usb"),
			expected: "-usb",
		},
		{
			name:     "single value",
			arg:      qemu.UniqueArg("m", "512M"),
			expected: "-m 512M",
		},
		{
			name:     "joined values",
			arg:      qemu.RepeatableArg("device", "AC97", "audiodev=audio0"),
			expected: "-device AC97,audiodev=audio0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.arg.String())
		})
	}
}

func TestArgumentsBuild(t *testing.T) {
	tests := []struct {
		name        string
		args        qemu.Arguments
		expected    []string
		expectedErr error
	}{
		{
			name: "mixed arguments",
			args: qemu.Arguments{
				qemu.UniqueArg("m", "512M"),
				qemu.UniqueArg("usb"),
				qemu.RepeatableArg("device", "usb-tablet"),
			},
			expected: []string{"-m", "512M", "-usb", "-device", "usb-tablet"},
		},
		{
			name: "repeatable with different values",
			args: qemu.Arguments{
				qemu.RepeatableArg("device", "usb-tablet"),
				qemu.RepeatableArg("device", "AC97"),
			},
			expected: []string{"-device", "usb-tablet", "-device", "AC97"},
		},
		{
			name: "duplicate unique argument",
			args: qemu.Arguments{
				qemu.UniqueArg("m", "512M"),
				qemu.UniqueArg("m", "1024M"),
			},
			expectedErr: qemu.ErrArgumentCollision,
		},
		{
			name: "repeatable with same value",
			args: qemu.Arguments{
				qemu.RepeatableArg("device", "usb-tablet"),
				qemu.RepeatableArg("device", "usb-tablet"),
			},
			expectedErr: qemu.ErrArgumentCollision,
		},
		{
			name: "unique clashes with repeatable of same name",
			args: qemu.Arguments{
				qemu.RepeatableArg("device", "usb-tablet"),
				qemu.UniqueArg("device", "AC97"),
			},
			expectedErr: qemu.ErrArgumentCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.args.Build()

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestArgumentsValues(t *testing.T) {
	args := qemu.Arguments{
		qemu.UniqueArg("m", "512M"),
		qemu.RepeatableArg("device", "usb-tablet"),
		qemu.RepeatableArg("device", "AC97"),
	}

	assert.Equal(t, []string{"usb-tablet", "AC97"}, args.Values("device"))
	assert.Equal(t, []string{"512M"}, args.Values("m"))
	assert.Empty(t, args.Values("cdrom"))
}
