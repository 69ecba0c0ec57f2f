// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/emberforge/respath/cmd/respath/cli"
	"github.com/emberforge/respath/lib/codec"
	"github.com/emberforge/respath/lib/respath"
)

type encodeParams struct {
	Flavor string `flag:"flavor" desc:"path flavor: native, posix, or windows" default:"native"`
}

func encodeCommand() *cli.Command {
	var params encodeParams
	return &cli.Command{
		Name:    "encode",
		Summary: "Encode paths as a deterministic CBOR manifest",
		Description: `Parse each path argument and write the resulting array as
deterministic CBOR to stdout. Paths are encoded in canonical string
form, so equal paths always produce identical bytes regardless of how
the input was spelled.

The output is binary; pipe it to a file or to 'respath decode'.`,
		Usage: "respath encode [flags] <path>...",
		Examples: []cli.Example{
			{
				Description: "Write a manifest and read it back",
				Command:     "respath encode 'zip://media.zip#poem.txt' | respath decode",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one path argument is required")
			}
			flavor, err := flavorFromName(params.Flavor)
			if err != nil {
				return err
			}

			paths := make([]respath.Path, 0, len(args))
			for _, raw := range args {
				paths = append(paths, flavor.Parse(raw))
			}
			return codec.NewEncoder(os.Stdout).Encode(paths)
		},
	}
}
