// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath_test

import (
	"encoding/json"
	"testing"

	"github.com/emberforge/respath/lib/respath"
)

func TestJSONRoundTrip(t *testing.T) {
	original := respath.Parse("zip://assets/media.zip#poem.txt")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	wantJSON := `"zip://assets/media.zip#poem.txt"`
	if string(data) != wantJSON {
		t.Fatalf("Marshal = %s, want %s", data, wantJSON)
	}

	var parsed respath.Path
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.Equal(original) {
		t.Errorf("round-trip mismatch:\n%s\n%s", parsed.Dump(), original.Dump())
	}
}

func TestJSONInStructField(t *testing.T) {
	type manifest struct {
		Source respath.Path `json:"source"`
		Target respath.Path `json:"target"`
	}

	original := manifest{
		Source: respath.Parse("zip://packs/base.zip#textures/stone.nxs"),
		Target: respath.Parse("memory://stone.nxs"),
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var parsed manifest
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.Source.Equal(original.Source) {
		t.Errorf("Source = %s, want %s", parsed.Source, original.Source)
	}
	if !parsed.Target.Equal(original.Target) {
		t.Errorf("Target = %s, want %s", parsed.Target, original.Target)
	}
}

func TestUnmarshalEmptyIsZero(t *testing.T) {
	var p respath.Path
	if err := p.UnmarshalText(nil); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if !p.IsZero() {
		t.Error("IsZero() = false after unmarshaling empty text")
	}
}
