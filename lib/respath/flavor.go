// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import "runtime"

// Flavor describes the platform conventions a path is parsed and
// formatted under. It is a capability value rather than a build
// constraint so one binary can handle (and test) both path flavors.
type Flavor struct {
	// DriveLetters enables recognition of a single-letter volume
	// designator ("c:") at the start of the directory part. Without
	// it, "c:" is an ordinary segment.
	DriveLetters bool

	// Separator is the byte NativeString places between segments.
	Separator byte
}

// POSIX is the flavor without drive letters; native output uses "/".
var POSIX = Flavor{Separator: '/'}

// Windows is the flavor with drive letters; native output uses "\".
var Windows = Flavor{DriveLetters: true, Separator: '\\'}

// NativeFlavor returns the flavor of the platform this binary runs on.
func NativeFlavor() Flavor {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// separator returns the native separator, defaulting to "/" for the
// zero Flavor so a zero Path still formats sanely.
func (f Flavor) separator() byte {
	if f.Separator == 0 {
		return '/'
	}
	return f.Separator
}
