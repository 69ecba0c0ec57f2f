// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/emberforge/respath/cmd/respath/cli"
)

type joinParams struct {
	cli.JSONOutput
	Flavor string `flag:"flavor" desc:"path flavor: native, posix, or windows" default:"native"`
	Full   bool   `flag:"full" desc:"print the full component breakdown instead of the canonical string"`
}

func joinCommand() *cli.Command {
	var params joinParams
	return &cli.Command{
		Name:    "join",
		Summary: "Join path fragments onto a base path",
		Description: `Parse the first argument as the base path and fold each remaining
argument onto it in order. The base keeps its protocol, drive, and
absoluteness; each fragment contributes directories (normalized into
the combined chain) and replaces the filename and portion.

Prints the canonical form of the result, or the full component
breakdown with --full.`,
		Usage: "respath join [flags] <base> <fragment>...",
		Examples: []cli.Example{
			{
				Description: "Descend into a directory and pick a file",
				Command:     "respath join 'file://c:/Program Files' 'Game/Game.exe'",
			},
			{
				Description: "Parent references collapse during the join",
				Command:     "respath join 'file://a/b/c.txt' '../d.txt'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("join", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("a base path and at least one fragment are required")
			}
			flavor, err := flavorFromName(params.Flavor)
			if err != nil {
				return err
			}

			result := flavor.Parse(args[0])
			for _, fragment := range args[1:] {
				result.ExtendRaw(fragment)
			}

			report := reportFor(args[0], result)
			if done, err := params.EmitJSON(report); done {
				return err
			}
			if params.Full {
				return printReport(os.Stdout, report)
			}
			fmt.Println(result.String())
			return nil
		},
	}
}
