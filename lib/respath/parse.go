// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import "strings"

// protocolSeparator divides the protocol from the rest of a path
// string ("file://...").
const protocolSeparator = "://"

// Parse decomposes raw into a Path using the platform's native flavor.
func Parse(raw string) Path {
	return NativeFlavor().Parse(raw)
}

// Parse decomposes raw into a Path. Parsing is total: there is no
// error return, and input that does not match the grammar degrades
// into the most literal interpretation (unrecognized fragments become
// directory segments).
func (f Flavor) Parse(raw string) Path {
	p := Path{flavor: f}
	rest := raw

	// Protocol. Everything before "://" is the scheme, lower-cased.
	// A string without the separator is a plain file path: the
	// protocol defaults to "file" and nothing is consumed.
	protocol := "file"
	if index := strings.Index(rest, protocolSeparator); index >= 0 {
		if index > 0 {
			protocol = strings.ToLower(rest[:index])
		}
		rest = rest[index+len(protocolSeparator):]
	}
	p.protocol = protocol
	p.protocolHash = HashProtocol(protocol)

	// Portion. The outermost suffix: everything after the "#" names
	// an entry inside the addressed resource, and is consumed before
	// drive or directory handling.
	if index := strings.IndexByte(rest, '#'); index >= 0 {
		p.portion = rest[index+1:]
		rest = rest[:index]
	}

	// Drive. Only flavors with drive letters recognize the volume
	// prefix; an immediately following separator belongs to it.
	if f.DriveLetters && len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
		p.drive = rest[:1]
		rest = rest[2:]
		if len(rest) > 0 && isSeparator(rest[0]) {
			rest = rest[1:]
		}
	}

	leadingSeparator := len(rest) > 0 && isSeparator(rest[0])
	trailingSeparator := len(rest) > 0 && isSeparator(rest[len(rest)-1])

	segments := splitSegments(rest)

	// Leaf classification. A trailing separator (or nothing left at
	// all) means the path names a directory and has no filename;
	// otherwise the last segment is the leaf.
	if !trailingSeparator && len(segments) > 0 {
		leaf := segments[len(segments)-1]
		segments = segments[:len(segments)-1]
		p.stem, p.extension, p.hasExtension = splitLeaf(leaf)
	}

	p.directories = normalizeSegments(segments)

	// A drive or a leading separator anchors the path. An explicit
	// protocol alone does not: "file://Game.exe" is a relative file.
	p.absolute = p.drive != "" || leadingSeparator

	return p
}

// splitLeaf divides a leaf segment at its last dot into stem and
// extension. A leaf with no dot, or whose only dot is the leading
// character (".gitignore"-style names), is kept whole as the stem.
func splitLeaf(leaf string) (stem, extension string, hasExtension bool) {
	dot := strings.LastIndexByte(leaf, '.')
	if dot <= 0 {
		return leaf, "", false
	}
	return leaf[:dot], leaf[dot+1:], true
}

// splitSegments splits on both separator bytes. Empty segments (from
// leading, trailing, or doubled separators) are dropped; they carry no
// name, only the absoluteness already captured by the caller.
func splitSegments(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

func isSeparator(b byte) bool {
	return b == '/' || b == '\\'
}

func isDriveLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
