// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"slices"
	"testing"
)

func TestBindFlags(t *testing.T) {
	type params struct {
		JSONOutput
		Flavor  string   `flag:"flavor,f" desc:"path flavor" default:"native"`
		Count   int      `flag:"count" desc:"repeat count" default:"2"`
		Exts    []string `flag:"ext" desc:"extensions"`
		Skipped string
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse([]string{
		"--json", "-f", "windows", "--count=7", "--ext", "exe,dll",
	}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("embedded --json flag not bound")
	}
	if p.Flavor != "windows" {
		t.Errorf("Flavor = %q, want %q", p.Flavor, "windows")
	}
	if p.Count != 7 {
		t.Errorf("Count = %d, want 7", p.Count)
	}
	if !slices.Equal(p.Exts, []string{"exe", "dll"}) {
		t.Errorf("Exts = %q", p.Exts)
	}
	if flagSet.Lookup("Skipped") != nil {
		t.Error("untagged field should not be bound")
	}
}

func TestBindFlagsDefaults(t *testing.T) {
	type params struct {
		Flavor string `flag:"flavor" default:"native"`
		Deep   bool   `flag:"deep" default:"true"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Flavor != "native" {
		t.Errorf("Flavor = %q, want default %q", p.Flavor, "native")
	}
	if !p.Deep {
		t.Error("Deep = false, want default true")
	}
}

func TestBindFlagsRejectsNonStruct(t *testing.T) {
	var s string
	flagSet := FlagsFromParams("x", &struct{}{})
	if err := BindFlags(&s, flagSet); err == nil {
		t.Error("expected error for non-struct params")
	}
	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("expected error for non-pointer params")
	}
}
