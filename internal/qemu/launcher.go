// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultGracePeriod is how long a freshly spawned emulator is
	// watched for immediate exit before it is considered up.
	DefaultGracePeriod = 1 * time.Second

	// versionTimeout bounds the emulator version query.
	versionTimeout = 5 * time.Second
)

// Launcher starts emulator processes for probed [Capabilities].
type Launcher struct {
	// GracePeriod overrides how long [Launcher.Launch] watches a fresh
	// process before declaring it up. Zero means [DefaultGracePeriod].
	GracePeriod time.Duration

	caps *Capabilities
}

// NewLauncher returns a [Launcher] using the given host capabilities.
func NewLauncher(caps *Capabilities) *Launcher {
	return &Launcher{caps: caps}
}

// Handle identifies a confirmed emulator process.
type Handle struct {
	// ID uniquely identifies this launch.
	ID string

	// PID is the emulator's process ID.
	PID int

	waitErr <-chan error
}

// Wait blocks until the emulator process exits and returns its exit
// error. Callers that treat the emulator as fire and forget never call
// it. The process is not supervised beyond the startup grace window.
func (h *Handle) Wait() error {
	return <-h.waitErr
}

// Launch spawns the emulator for the given spec and watches it for the
// grace period. A process that survives the window is considered up and
// returned as a detached [Handle]. One that dies within it is reported
// as a [LaunchError] carrying the process's stderr. Cancelling the
// context during the window is a normal outcome and returns the handle
// as if confirmed. The emulator is deliberately not bound to the
// context, it must outlive the invocation.
func (l *Launcher) Launch(
	ctx context.Context,
	spec *LaunchSpec,
) (*Handle, error) {
	_, err := os.Stat(spec.Source)
	if err != nil {
		return nil, &LaunchError{
			Err: fmt.Errorf("%w: %s", ErrBootSourceMissing, spec.Source),
		}
	}

	args, err := spec.Arguments().Build()
	if err != nil {
		return nil, &LaunchError{Err: err}
	}

	cmd := exec.Command(l.caps.Executable, args...)
	cmd.Stdout = io.Discard

	// Buffered in memory instead of piped. A pipe would tie reading to
	// the lifetime of a process that outlives us.
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	slog.Debug("Starting emulator", slog.String("command", cmd.String()))

	err = cmd.Start()
	if err != nil {
		return nil, &LaunchError{Err: fmt.Errorf("start emulator: %w", err)}
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
	}()

	timer := time.NewTimer(l.gracePeriod())
	defer timer.Stop()

	select {
	case err := <-waitErr:
		return nil, &LaunchError{
			Err:    earlyExitErr(err),
			Output: strings.TrimSpace(stderr.String()),
		}
	case <-timer.C:
	case <-ctx.Done():
		// An interrupted startup wait is not a failure. The emulator
		// keeps running on its own.
	}

	handle := &Handle{
		ID:      uuid.NewString(),
		PID:     cmd.Process.Pid,
		waitErr: waitErr,
	}

	slog.Info("Emulator started",
		slog.String("id", handle.ID),
		slog.Int("pid", handle.PID))

	return handle, nil
}

func (l *Launcher) gracePeriod() time.Duration {
	if l.GracePeriod > 0 {
		return l.GracePeriod
	}

	return DefaultGracePeriod
}

func earlyExitErr(waitErr error) error {
	if waitErr == nil {
		return ErrEarlyExit
	}

	return fmt.Errorf("%w: %w", ErrEarlyExit, waitErr)
}

// SystemInfo is a diagnostic report about the emulation host.
type SystemInfo struct {
	// Executable is the resolved emulator binary.
	Executable string

	// Version is the emulator's version banner, "unknown" if the query
	// failed.
	Version string

	// KVM reports hardware acceleration availability.
	KVM bool

	// DefaultMemory is the memory size used when no override is given.
	DefaultMemory string
}

// SystemInfo gathers diagnostics about the launcher's emulator. The
// version query is bounded by a short timeout and degrades to
// "unknown" instead of failing.
func (l *Launcher) SystemInfo(ctx context.Context) SystemInfo {
	return SystemInfo{
		Executable:    l.caps.Executable,
		Version:       l.version(ctx),
		KVM:           l.caps.KVM,
		DefaultMemory: DefaultMemory,
	}
}

// version asks the emulator binary for its version and returns the
// first line of the answer.
func (l *Launcher) version(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, l.caps.Executable, "--version").
		Output()
	if err != nil {
		slog.Warn("Emulator version query failed", slog.Any("error", err))
		return "unknown"
	}

	version, _, _ := strings.Cut(string(out), "\n")

	return strings.TrimSpace(version)
}
