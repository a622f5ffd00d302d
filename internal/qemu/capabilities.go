// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// emulatorCandidates are the known emulator binaries in preference
// order.
var emulatorCandidates = []string{
	"qemu-system-x86_64",
	"qemu-system-i386",
	"qemu",
}

// kvmDevice is the hardware acceleration device node.
const kvmDevice = "/dev/kvm"

// Capabilities describes what the emulation host can do. It is probed
// once at startup with [ProbeCapabilities] and passed around read-only.
type Capabilities struct {
	// Executable is the resolved emulator binary.
	Executable string

	// KVM reports whether hardware acceleration is usable.
	KVM bool
}

// ProbeCapabilities resolves the emulator binary and checks hardware
// acceleration support. It fails with [ErrEmulatorNotFound] if no
// emulator is installed, since nothing can be run then. Missing KVM
// support is not an error, emulation falls back to software then.
func ProbeCapabilities() (*Capabilities, error) {
	executable, err := findEmulator(emulatorCandidates)
	if err != nil {
		return nil, err
	}

	return &Capabilities{
		Executable: executable,
		KVM:        kvmUsable(),
	}, nil
}

func findEmulator(candidates []string) (string, error) {
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s",
		ErrEmulatorNotFound, strings.Join(candidates, ", "))
}

// kvmUsable reports whether the KVM device node exists and is readable
// and writable for the current user.
func kvmUsable() bool {
	return unix.Access(kvmDevice, unix.R_OK|unix.W_OK) == nil
}
