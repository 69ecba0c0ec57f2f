// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

// Join returns the path formed by appending addition to p. The result
// keeps p's protocol, drive, flavor, and absoluteness: p is treated
// purely as a directory context, so its own filename (if any) is
// discarded. The addition contributes its directories (concatenated
// onto p's and re-normalized, so a leading ".." in the addition
// collapses into p) and its filename, extension, and portion. The
// addition's protocol and drive are ignored: a join is always a
// relative extension of p.
func (p Path) Join(addition Path) Path {
	out := p
	combined := make([]string, 0, len(p.directories)+len(addition.directories))
	combined = append(combined, p.directories...)
	combined = append(combined, addition.directories...)
	out.directories = normalizeSegments(combined)
	out.stem = addition.stem
	out.extension = addition.extension
	out.hasExtension = addition.hasExtension
	out.portion = addition.portion
	return out
}

// JoinRaw parses fragment in p's flavor and joins it onto p.
func (p Path) JoinRaw(fragment string) Path {
	return p.Join(p.flavor.Parse(fragment))
}

// Extend is the mutating variant of Join, equivalent to
// p = p.Join(addition). It must not be called concurrently on the
// same instance without external synchronization.
func (p *Path) Extend(addition Path) {
	*p = p.Join(addition)
}

// ExtendRaw is the mutating variant of JoinRaw.
func (p *Path) ExtendRaw(fragment string) {
	*p = p.JoinRaw(fragment)
}
