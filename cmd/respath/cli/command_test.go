// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "respath",
		Subcommands: []*Command{
			{
				Name: "parse",
				Run: func(args []string) error {
					ran = args
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"parse", "file://a/b.txt"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "file://a/b.txt" {
		t.Errorf("subcommand got args %q", ran)
	}
}

func TestExecuteSuggestsCommand(t *testing.T) {
	root := &Command{
		Name: "respath",
		Subcommands: []*Command{
			{Name: "parse", Run: func([]string) error { return nil }},
			{Name: "join", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"prase"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "parse"`) {
		t.Errorf("error should suggest parse, got: %v", err)
	}
}

func TestExecuteSuggestsFlag(t *testing.T) {
	command := &Command{
		Name: "parse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("parse", pflag.ContinueOnError)
			flagSet.String("flavor", "native", "path flavor")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--flavour=posix"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--flavor") {
		t.Errorf("error should suggest --flavor, got: %v", err)
	}
}

func TestExecuteParsesFlagsBeforeRun(t *testing.T) {
	var got string
	var positional []string
	command := &Command{
		Name: "parse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("parse", pflag.ContinueOnError)
			flagSet.StringVar(&got, "flavor", "native", "path flavor")
			return flagSet
		},
		Run: func(args []string) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute([]string{"--flavor", "windows", "c:/x"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "windows" {
		t.Errorf("flag value = %q, want %q", got, "windows")
	}
	if len(positional) != 1 || positional[0] != "c:/x" {
		t.Errorf("positional args = %q", positional)
	}
}

func TestSubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "respath",
		Subcommands: []*Command{{Name: "parse"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
}
