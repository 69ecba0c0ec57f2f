// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import (
	"fmt"
	"strings"
)

// String returns the canonical form,
// protocol://[drive:/]dir1/dir2/.../filename.extension[#portion],
// always with "/" separators and an explicit protocol regardless of
// how the original string was written. Parsing the canonical form
// yields a structurally equal Path. The zero Path formats as "".
func (p Path) String() string {
	if p.IsZero() {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.protocol)
	b.WriteString(protocolSeparator)
	if p.drive != "" {
		b.WriteString(p.drive)
		b.WriteString(":/")
	} else if p.absolute {
		b.WriteByte('/')
	}
	for _, directory := range p.directories {
		b.WriteString(directory)
		b.WriteByte('/')
	}
	if p.stem != "" {
		b.WriteString(p.stem)
		if p.hasExtension {
			b.WriteByte('.')
			b.WriteString(p.extension)
		}
	}
	if p.portion != "" {
		b.WriteByte('#')
		b.WriteString(p.portion)
	}
	return b.String()
}

// NativeString formats the path for the operating system's file APIs:
// protocol and portion omitted, segments joined with the flavor's
// native separator. Not round-trippable through Parse, since the
// protocol and portion are gone.
func (p Path) NativeString() string {
	if p.IsZero() {
		return ""
	}

	separator := p.flavor.separator()
	var b strings.Builder
	if p.drive != "" {
		b.WriteString(p.drive)
		b.WriteByte(':')
		b.WriteByte(separator)
	} else if p.absolute {
		b.WriteByte(separator)
	}
	for _, directory := range p.directories {
		b.WriteString(directory)
		b.WriteByte(separator)
	}
	b.WriteString(p.Filename())
	return b.String()
}

// Dump returns a line-per-component description of the path for
// developer and test output.
func (p Path) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "protocol:  %s (%s)\n", p.protocol, p.protocolHash)
	if p.drive != "" {
		fmt.Fprintf(&b, "drive:     %s\n", p.drive)
	}
	for level := len(p.directories) - 1; level >= 0; level-- {
		fmt.Fprintf(&b, "dir[%d]:    %s\n", level, p.Directory(level))
	}
	if p.stem != "" {
		fmt.Fprintf(&b, "filename:  %s\n", p.Filename())
		fmt.Fprintf(&b, "stem:      %s\n", p.stem)
		if p.hasExtension {
			fmt.Fprintf(&b, "extension: %s\n", p.extension)
		}
	}
	if p.portion != "" {
		fmt.Fprintf(&b, "portion:   %s\n", p.portion)
	}
	fmt.Fprintf(&b, "absolute:  %t\n", p.absolute)
	return b.String()
}
