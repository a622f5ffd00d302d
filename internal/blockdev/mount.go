// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package blockdev

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// Unmount releases the partition's current mount, if any. It is best
// effort. Every failure is logged as a warning and swallowed, since the
// guest may well be able to use a busy partition anyway. The snapshot is
// not refreshed, callers needing the new mount state run another
// discovery pass.
func (i *Inventory) Unmount(ctx context.Context, path string) {
	partition, found := i.PartitionInfo(ctx, path)
	if !found || !partition.Mounted() {
		return
	}

	slog.Info("Unmounting partition",
		slog.String("partition", path),
		slog.String("mountpoint", partition.MountPoint))

	args := append(i.umount[1:], path)

	out, err := exec.CommandContext(ctx, i.umount[0], args...).CombinedOutput()
	if err != nil {
		slog.Warn("Unmount failed, proceeding anyway",
			slog.String("partition", path),
			slog.String("output", strings.TrimSpace(string(out))),
			slog.Any("error", err))
	}
}
