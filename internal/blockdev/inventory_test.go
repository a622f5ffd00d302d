// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/liveboot/internal/blockdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryDefaults(t *testing.T) {
	assert.Equal(t, blockdev.DefaultClass, blockdev.NewInventory("").Class())
	assert.Equal(t, "mmcblk", blockdev.NewInventory("mmcblk").Class())
}

func TestInventoryIsPartitionPath(t *testing.T) {
	inv := blockdev.NewInventory("nvme")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "partition",
			path:     "/dev/nvme0n1p1",
			expected: true,
		},
		{
			name:     "multi digit index",
			path:     "/dev/nvme0n1p14",
			expected: true,
		},
		{
			name: "whole device",
			path: "/dev/nvme0n1",
		},
		{
			name: "other class",
			path: "/dev/sda1",
		},
		{
			name: "missing dev prefix",
			path: "nvme0n1p1",
		},
		{
			name: "iso file",
			path: "/tmp/image.iso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inv.IsPartitionPath(tt.path))
		})
	}
}

func TestInventoryIsBlockDevice(t *testing.T) {
	inv := blockdev.NewInventory("nvme")

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		ok, err := inv.IsBlockDevice(path)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing node", func(t *testing.T) {
		_, err := inv.IsBlockDevice(filepath.Join(t.TempDir(), "absent"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
