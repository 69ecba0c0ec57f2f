// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/emberforge/respath/cmd/respath/cli"
	"github.com/emberforge/respath/lib/codec"
	"github.com/emberforge/respath/lib/respath"
)

type decodeParams struct {
	cli.JSONOutput
	Diag bool `flag:"diag" desc:"print CBOR diagnostic notation instead of decoding"`
}

func decodeCommand() *cli.Command {
	var params decodeParams
	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a CBOR path manifest from stdin",
		Description: `Read a CBOR-encoded path array from stdin (as written by
'respath encode') and print one canonical path string per line.

With --diag the raw CBOR is printed in diagnostic notation instead,
which is useful for inspecting manifests without decoding them. With
--json the full component breakdown of each path is printed.`,
		Usage: "respath decode [flags] < manifest.cbor",
		Examples: []cli.Example{
			{
				Description: "Inspect a manifest's raw structure",
				Command:     "respath decode --diag < manifest.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("decode reads from stdin and takes no arguments")
			}

			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			if params.Diag {
				diagnostic, err := codec.Diagnose(data)
				if err != nil {
					return fmt.Errorf("diagnosing CBOR: %w", err)
				}
				fmt.Println(diagnostic)
				return nil
			}

			var paths []respath.Path
			if err := codec.Unmarshal(data, &paths); err != nil {
				return fmt.Errorf("decoding manifest: %w", err)
			}

			if params.OutputJSON {
				reports := make([]pathReport, 0, len(paths))
				for _, p := range paths {
					reports = append(reports, reportFor(p.String(), p))
				}
				return cli.WriteJSON(reports)
			}
			for _, p := range paths {
				fmt.Println(p.String())
			}
			return nil
		},
	}
}
