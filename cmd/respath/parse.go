// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/emberforge/respath/cmd/respath/cli"
)

type parseParams struct {
	cli.JSONOutput
	Flavor string `flag:"flavor" desc:"path flavor: native, posix, or windows" default:"native"`
	Check  bool   `flag:"check" desc:"exit non-zero if any path has an unresolved parent reference"`
}

func parseCommand() *cli.Command {
	var params parseParams
	return &cli.Command{
		Name:    "parse",
		Summary: "Decompose resource path strings into components",
		Description: `Parse each path argument and print its component breakdown:
protocol, drive, directory chain, filename (stem and extension),
portion, and the canonical and native renderings.

Parsing never fails: malformed input degrades to a path with fewer
components rather than an error. With --check, the command exits with
code 1 if any parsed path still carries a leading ".." after
normalization, which makes it usable as a manifest validator in
resource pipelines.`,
		Usage: "respath parse [flags] <path>...",
		Examples: []cli.Example{
			{
				Description: "Parse an archive member reference",
				Command:     "respath parse 'zip://media.zip#poem.txt'",
			},
			{
				Description: "Parse a Windows-style path as JSON",
				Command:     `respath parse --flavor windows --json 'c:\Program Files\Game\Game.exe'`,
			},
			{
				Description: "Reject paths that escape their root",
				Command:     "respath parse --check 'file://../../etc/passwd'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("parse", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one path argument is required")
			}
			flavor, err := flavorFromName(params.Flavor)
			if err != nil {
				return err
			}

			unresolved := false
			reports := make([]pathReport, 0, len(args))
			for _, raw := range args {
				report := reportFor(raw, flavor.Parse(raw))
				unresolved = unresolved || report.UnresolvedParent
				reports = append(reports, report)
			}

			if done, err := params.EmitJSON(reports); done {
				if err != nil {
					return err
				}
			} else {
				for i, report := range reports {
					if i > 0 {
						fmt.Println()
					}
					if err := printReport(os.Stdout, report); err != nil {
						return err
					}
				}
			}

			if params.Check && unresolved {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
