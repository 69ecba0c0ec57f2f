// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import (
	"slices"
	"testing"
)

func TestNormalizeSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     []string
	}{
		{name: "empty", segments: nil, want: []string{}},
		{name: "plain", segments: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "drops-empty", segments: []string{"", "a", "", "b", ""}, want: []string{"a", "b"}},
		{name: "drops-dot", segments: []string{"a", ".", "b"}, want: []string{"a", "b"}},
		{name: "collapses-dotdot", segments: []string{"a", "b", "..", "c"}, want: []string{"a", "c"}},
		{name: "collapses-to-nothing", segments: []string{"a", ".."}, want: []string{}},
		{name: "keeps-leading-dotdot", segments: []string{"..", "a"}, want: []string{"..", "a"}},
		{name: "dotdot-cancels-kept-dotdot", segments: []string{"..", "..", "a"}, want: []string{"a"}},
		{name: "mixed", segments: []string{".", "a", "", "b", "..", "c", "."}, want: []string{"a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeSegments(tt.segments)
			if !slices.Equal(got, tt.want) {
				t.Errorf("normalizeSegments(%q) = %q, want %q", tt.segments, got, tt.want)
			}

			// Normalization is idempotent.
			again := normalizeSegments(got)
			if !slices.Equal(again, got) {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}
