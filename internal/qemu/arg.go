// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a single QEMU command line argument, with or without a
// value. Arguments are collected in an [Arguments] list before being
// compiled into their final string form.
type Argument struct {
	name       string
	value      string
	repeatable bool
}

// UniqueArg returns an [Argument] that may appear only once per
// invocation. Most QEMU flags, like -m or -boot, are of this kind. If
// multiple values are given, they are joined with commas.
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg returns an [Argument] that may appear multiple times per
// invocation as long as the values differ. -device is the usual case.
// If multiple values are given, they are joined with commas.
func RepeatableArg(name string, value ...string) Argument {
	return Argument{
		name:       name,
		value:      strings.Join(value, ","),
		repeatable: true,
	}
}

// Name returns the argument's flag name without the leading dash.
func (a Argument) Name() string {
	return a.name
}

// Value returns the argument's value. Empty for plain switches.
func (a Argument) Value() string {
	return a.value
}

// String implements the [fmt.Stringer] interface.
func (a Argument) String() string {
	if a.value == "" {
		return "-" + a.name
	}

	return "-" + a.name + " " + a.value
}

// collides reports whether the two arguments cannot coexist in a single
// invocation. Unique arguments collide on the name alone, repeatable
// ones only if the value is identical as well.
func (a Argument) collides(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.repeatable && other.repeatable {
		return a.value == other.value
	}

	return true
}

// Arguments is an ordered QEMU argument list.
type Arguments []Argument

// Add appends the given arguments to the list.
func (a *Arguments) Add(args ...Argument) {
	*a = append(*a, args...)
}

// Values returns the values of all arguments with the given name, in
// list order.
func (a Arguments) Values(name string) []string {
	var values []string

	for _, arg := range a {
		if arg.name == name {
			values = append(values, arg.value)
		}
	}

	return values
}

// Build compiles the list into the string form [exec.Command] expects.
// It fails with [ErrArgumentCollision] if an argument clashes with an
// earlier one.
func (a Arguments) Build() ([]string, error) {
	args := make([]string, 0, len(a)*2)

	for idx, arg := range a {
		if i := slices.IndexFunc(a[:idx], arg.collides); i >= 0 {
			return nil, fmt.Errorf("%w: %s vs %s",
				ErrArgumentCollision, arg, a[i])
		}

		args = append(args, "-"+arg.name)
		if arg.value != "" {
			args = append(args, arg.value)
		}
	}

	return args, nil
}
