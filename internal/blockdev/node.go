// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// devDir is the directory device nodes live in.
const devDir = "/dev"

// Classic MBR boot signature, 0x55 0xAA at offset 510 of the first
// sector.
const (
	bootSectorSize    = 512
	bootSignatureOff  = 510
	bootSignatureByte = 0x55
	bootSignatureWord = 0xaa
)

func devPath(name string) string {
	return filepath.Join(devDir, name)
}

// blockDeviceNode reports whether path exists and is a block device
// node. The error is the stat error, so callers can tell a missing node
// from one of the wrong type.
func blockDeviceNode(path string) (bool, error) {
	var stat unix.Stat_t

	err := unix.Stat(path, &stat)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	return stat.Mode&unix.S_IFMT == unix.S_IFBLK, nil
}

// deviceSize queries the device node for its size in bytes. It returns
// zero if the query fails, which callers treat as unknown.
func deviceSize(path string) uint64 {
	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	size, err := unix.IoctlGetInt(int(file.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0
	}

	return uint64(size)
}

// hasBootSignature reports whether the first sector of the device
// carries the MBR boot signature. This is a weak signal, used only when
// no filesystem metadata is available.
func hasBootSignature(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	sector := make([]byte, bootSectorSize)

	_, err = io.ReadFull(file, sector)
	if err != nil {
		return false
	}

	return sector[bootSignatureOff] == bootSignatureByte &&
		sector[bootSignatureOff+1] == bootSignatureWord
}
