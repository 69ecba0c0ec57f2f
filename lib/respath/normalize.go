// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

// normalizeSegments collapses "." and ".." segments left to right,
// producing the minimal directory sequence. The same rule serves
// freshly parsed paths and the concatenations produced by joins:
//
//   - "" and "." are dropped.
//   - ".." removes the previous output segment when there is one;
//     with nothing to cancel against it is kept literally, leaving a
//     leading ".." that Path.HasUnresolvedParentReference reports.
//   - anything else is appended.
//
// The result is idempotent: normalizing an already-normalized
// sequence returns it unchanged.
func normalizeSegments(segments []string) []string {
	output := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
		case "..":
			if len(output) > 0 {
				output = output[:len(output)-1]
			} else {
				output = append(output, segment)
			}
		default:
			output = append(output, segment)
		}
	}
	return output
}
