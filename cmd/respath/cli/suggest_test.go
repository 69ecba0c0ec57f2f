// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"parse", "parse", 0},
		{"prase", "parse", 2},
		{"jion", "join", 2},
		{"hash", "", 4},
		{"encode", "decode", 2},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSuggestCommandThreshold(t *testing.T) {
	commands := []*Command{{Name: "parse"}, {Name: "join"}}

	if got := suggestCommand("prase", commands); got != "parse" {
		t.Errorf("suggestCommand(prase) = %q, want parse", got)
	}
	// Far from everything: no suggestion.
	if got := suggestCommand("completely-different", commands); got != "" {
		t.Errorf("suggestCommand = %q, want no suggestion", got)
	}
}
