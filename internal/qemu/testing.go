// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/stretchr/testify/assert"

// ArgumentValueAssertionFunc returns an [assert.ComparisonAssertionFunc]
// that asserts the value of the [Argument] with the given name. The
// first match wins, so it is most useful for unique arguments.
func ArgumentValueAssertionFunc(
	name string,
	assertion assert.ComparisonAssertionFunc,
) assert.ComparisonAssertionFunc {
	return func(t assert.TestingT, arg1, arg2 any, arg3 ...any) bool {
		args, ok := arg1.(Arguments)
		if !assert.True(t, ok, "first argument should be Arguments") {
			return false
		}

		for _, arg := range args {
			if arg.Name() != name {
				continue
			}

			return assertion(t, arg.Value(), arg2, arg3...)
		}

		return assert.Fail(t, "argument not found: "+name)
	}
}
