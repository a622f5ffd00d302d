// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

const (
	// AccelKVM uses the kernel's hardware virtualization support.
	AccelKVM AccelMode = "kvm"

	// AccelTCG is QEMU's software emulation, available everywhere.
	AccelTCG AccelMode = "tcg"
)

// AccelMode selects between hardware accelerated virtualization and
// pure software emulation.
type AccelMode string

func (m AccelMode) isKnown() bool {
	return m == AccelKVM || m == AccelTCG
}

// String implements the [fmt.Stringer] interface.
func (m AccelMode) String() string {
	return string(m)
}
