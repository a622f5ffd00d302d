// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBin(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755)
	require.NoError(t, err)

	return path
}

func TestFindEmulator(t *testing.T) {
	t.Run("prefers first candidate", func(t *testing.T) {
		dir := t.TempDir()
		expected := writeBin(t, dir, "qemu-system-x86_64")
		writeBin(t, dir, "qemu")
		t.Setenv("PATH", dir)

		actual, err := findEmulator(emulatorCandidates)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("falls through to last candidate", func(t *testing.T) {
		dir := t.TempDir()
		expected := writeBin(t, dir, "qemu")
		t.Setenv("PATH", dir)

		actual, err := findEmulator(emulatorCandidates)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("none installed", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		_, err := findEmulator(emulatorCandidates)

		require.ErrorIs(t, err, ErrEmulatorNotFound)
	})
}
