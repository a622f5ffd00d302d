// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package liveboot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aibor/liveboot/internal/blockdev"
)

// minISOSize is the smallest plausible optical image. Anything below is
// rejected as junk.
const minISOSize = 1 << 20

// Verdict is the outcome of a boot source check. A failed validation is
// data, not an error. The message is meant for the user verbatim.
type Verdict struct {
	OK      bool
	Message string
}

func pass(format string, args ...any) Verdict {
	return Verdict{OK: true, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Verdict {
	return Verdict{Message: fmt.Sprintf(format, args...)}
}

// Inventory is the view of the device inventory the validation and run
// flow need. [blockdev.Inventory] implements it.
type Inventory interface {
	Class() string
	IsPartitionPath(path string) bool
	IsBlockDevice(path string) (bool, error)
	PartitionInfo(ctx context.Context, path string) (blockdev.Partition, bool)
	Unmount(ctx context.Context, path string)
}

// Validate routes the source to the validator matching its kind.
func Validate(ctx context.Context, inv Inventory, src Source) Verdict {
	if src.Kind == KindPartition {
		return ValidatePartition(ctx, inv, src.Path)
	}

	return ValidateISO(src.Path)
}

// ValidateISO checks that path names a plausible optical image. It must
// exist, carry the .iso extension in any case, and be at least 1 MiB
// large.
func ValidateISO(path string) Verdict {
	info, err := os.Stat(path)
	if err != nil {
		return fail("File does not exist")
	}

	if !strings.EqualFold(filepath.Ext(path), ".iso") {
		return fail("File does not have .iso extension")
	}

	if info.Size() < minISOSize {
		return fail("File too small to be a valid ISO")
	}

	return pass("Valid ISO file")
}

// ValidatePartition checks that path names a usable boot partition of
// the inventory's device class. A mounted partition passes with a
// notice. Whether to release the mount is the caller's business.
func ValidatePartition(ctx context.Context, inv Inventory, path string) Verdict {
	if !inv.IsPartitionPath(path) {
		return fail("Not a %s partition", inv.Class())
	}

	ok, err := inv.IsBlockDevice(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail("Partition does not exist")
		}

		return fail("Cannot access partition: %v", err)
	}

	if !ok {
		return fail("Not a valid block device")
	}

	partition, found := inv.PartitionInfo(ctx, path)
	if !found {
		return fail("Could not get partition information")
	}

	if partition.SizeBytes == 0 {
		return fail("Partition appears to be empty")
	}

	if partition.Mounted() {
		return pass("Valid partition (currently mounted at %s)",
			partition.MountPoint)
	}

	return pass("Valid partition")
}
