// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

// Defaults for the virtual machine hardware.
const (
	// DefaultMemory is the guest memory size used when none is given.
	DefaultMemory = "512M"

	// DisplayGTK is the graphical window display backend.
	DisplayGTK = "gtk"

	// DisplayNone runs the guest without any display.
	DisplayNone = "none"

	// VGAStandard is the default VGA compatible video adapter.
	VGAStandard = "std"

	// bootOrderCDROM boots from the optical drive first, where the boot
	// source is always attached.
	bootOrderCDROM = "d"
)

// LaunchSpec is a resolved emulator invocation for booting a single
// live medium.
type LaunchSpec struct {
	// Source is the boot medium, an ISO file or a raw partition device
	// node. It is always attached as the primary optical drive.
	Source string

	// Memory is the guest memory size in QEMU notation, like "512M".
	// Empty selects [DefaultMemory].
	Memory string

	// Accel selects hardware or software CPU virtualization. Unknown
	// values fall back to [AccelTCG].
	Accel AccelMode

	// CPU is the virtual CPU model. Empty selects QEMU's default model.
	// "host" mirrors the host CPU and works only with [AccelKVM].
	CPU string

	// Display is the display backend. Empty selects [DisplayGTK].
	Display string

	// VGA is the video adapter type. Empty selects [VGAStandard].
	VGA string

	// Audio attaches an audio device. Off by default since host audio
	// stacks are a common source of startup failures.
	Audio bool

	// NoNetwork disables the isolated user mode network.
	NoNetwork bool

	// USBDevices are extra USB devices to attach. A usb-tablet pointer
	// device is always attached regardless.
	USBDevices []string
}

// Arguments compiles the launch spec into the QEMU argument list. The boot
// source is attached as the primary optical medium with boot order set
// to optical first, and the guest halts instead of rebooting so startup
// failures stay visible.
func (s *LaunchSpec) Arguments() Arguments {
	memory := s.Memory
	if memory == "" {
		memory = DefaultMemory
	}

	accel := s.Accel
	if !accel.isKnown() {
		accel = AccelTCG
	}

	display := s.Display
	if display == "" {
		display = DisplayGTK
	}

	vga := s.VGA
	if vga == "" {
		vga = VGAStandard
	}

	args := Arguments{
		UniqueArg("m", memory),
		UniqueArg("accel", accel.String()),
	}

	if s.CPU != "" {
		args.Add(UniqueArg("cpu", s.CPU))
	}

	args.Add(
		UniqueArg("display", display),
		UniqueArg("vga", vga),
		UniqueArg("boot", bootOrderCDROM),
		UniqueArg("cdrom", s.Source),
	)

	if s.Audio {
		args.Add(
			UniqueArg("audiodev", "alsa", "id=audio0"),
			RepeatableArg("device", "AC97", "audiodev=audio0"),
		)
	}

	// A tablet pointer avoids pointer grab trouble in windowed mode.
	args.Add(
		UniqueArg("usb"),
		RepeatableArg("device", "usb-tablet"),
	)

	for _, device := range s.USBDevices {
		args.Add(RepeatableArg("device", device))
	}

	if !s.NoNetwork {
		args.Add(
			UniqueArg("netdev", "user", "id=net0"),
			RepeatableArg("device", "rtl8139", "netdev=net0"),
		)
	}

	// The guest must not silently reboot on failure.
	args.Add(UniqueArg("no-reboot"))

	return args
}
