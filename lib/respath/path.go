// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import (
	"fmt"
	"slices"
)

// Path is a parsed resource path. Construction goes through
// [Parse]/[Flavor.Parse] or the join operations; the fields are never
// mutated afterwards, so accessor methods are allocation-free
// projections of already-normalized components.
//
// The zero Path is the "no path" sentinel: it has an empty protocol,
// which no parsed path can have.
type Path struct {
	flavor       Flavor
	protocol     string
	protocolHash ProtocolHash
	drive        string
	directories  []string
	stem         string
	extension    string
	hasExtension bool
	portion      string
	absolute     bool
}

// Protocol returns the lower-cased addressing scheme ("file", "zip",
// "memory", ...). Never empty for a parsed path.
func (p Path) Protocol() string { return p.protocol }

// ProtocolHash returns the dispatch key for the path's protocol,
// equal to HashProtocol(p.Protocol()).
func (p Path) ProtocolHash() ProtocolHash { return p.protocolHash }

// Drive returns the volume designator letter, or "" when the path has
// none. Case is preserved from the input.
func (p Path) Drive() string { return p.drive }

// HasDrive reports whether a drive letter was present.
func (p Path) HasDrive() bool { return p.drive != "" }

// IsAbsolute reports whether the original string was anchored by a
// drive or a leading separator. Bare fragments like "Game.exe" or
// "../Game/" are relative, with or without an explicit protocol.
func (p Path) IsAbsolute() bool { return p.absolute }

// DirectoryCount returns the number of directory segments.
func (p Path) DirectoryCount() int { return len(p.directories) }

// Directory returns the directory segment at the given distance from
// the leaf end: Directory(0) is the segment nearest the leaf,
// Directory(DirectoryCount()-1) the outermost. Levels out of range
// return "".
func (p Path) Directory(level int) string {
	if level < 0 || level >= len(p.directories) {
		return ""
	}
	return p.directories[len(p.directories)-1-level]
}

// Directories returns a copy of the directory segments in
// root-to-leaf order.
func (p Path) Directories() []string {
	return slices.Clone(p.directories)
}

// HasFilename reports whether the path names a file rather than a
// pure directory.
func (p Path) HasFilename() bool { return p.stem != "" }

// Stem returns the filename without its extension, or "" for a pure
// directory.
func (p Path) Stem() string { return p.stem }

// Extension returns the filename extension without its dot, or "".
func (p Path) Extension() string { return p.extension }

// HasExtension reports whether the leaf carried an extension
// separator. A trailing dot yields an empty but present extension.
func (p Path) HasExtension() bool { return p.hasExtension }

// Filename returns stem and extension rejoined ("Game.exe"), or ""
// for a pure directory.
func (p Path) Filename() string {
	if p.stem == "" {
		return ""
	}
	if !p.hasExtension {
		return p.stem
	}
	return p.stem + "." + p.extension
}

// Portion returns the sub-resource identifier after "#", or "".
func (p Path) Portion() string { return p.portion }

// HasPortion reports whether a portion is present.
func (p Path) HasPortion() bool { return p.portion != "" }

// Flavor returns the flavor the path was parsed under. Joined raw
// fragments and NativeString follow it.
func (p Path) Flavor() Flavor { return p.flavor }

// HasUnresolvedParentReference reports whether the directory sequence
// retains a leading ".." that had no parent to cancel against, as in
// "file://../Game/". Callers choose their own policy for such paths.
func (p Path) HasUnresolvedParentReference() bool {
	return len(p.directories) > 0 && p.directories[0] == ".."
}

// Parent returns the path one level up. The shallowest-bound
// component goes first: a portion is dropped before the filename, the
// filename before the last directory. With nothing left to drop the
// path is its own parent (an empty or drive-only path).
func (p Path) Parent() Path {
	out := p
	switch {
	case p.portion != "":
		out.portion = ""
	case p.stem != "":
		out.stem = ""
		out.extension = ""
		out.hasExtension = false
	case len(p.directories) > 0:
		out.directories = slices.Clone(p.directories[:len(p.directories)-1])
	}
	return out
}

// Relative returns the path stripped of its location: directories and
// drive cleared, absoluteness dropped, keeping protocol, filename,
// extension, and portion.
func (p Path) Relative() Path {
	out := p
	out.directories = nil
	out.drive = ""
	out.absolute = false
	return out
}

// Equal reports structural equality of the post-normalization
// components. Equality is defined over parsed structure, never over
// the raw strings two paths were built from.
func (p Path) Equal(other Path) bool {
	return p.protocol == other.protocol &&
		p.drive == other.drive &&
		p.stem == other.stem &&
		p.extension == other.extension &&
		p.hasExtension == other.hasExtension &&
		p.portion == other.portion &&
		p.absolute == other.absolute &&
		slices.Equal(p.directories, other.directories)
}

// IsZero reports whether this is the zero-value "no path" sentinel.
func (p Path) IsZero() bool { return p.protocol == "" }

// MarshalText implements encoding.TextMarshaler, serializing the
// canonical string form. The zero Path refuses to marshal.
func (p Path) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("marshal Path: zero value")
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the text
// in the platform's native flavor. Empty input produces the zero
// value, the symmetric counterpart to MarshalText.
func (p *Path) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = Path{}
		return nil
	}
	*p = Parse(string(data))
	return nil
}
