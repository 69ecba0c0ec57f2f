// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/emberforge/respath/cmd/respath/cli"
	"github.com/emberforge/respath/lib/respath"
)

type hashParams struct {
	cli.JSONOutput
}

type protocolHashEntry struct {
	Protocol string `json:"protocol"`
	Hash     string `json:"hash"`
}

func hashCommand() *cli.Command {
	var params hashParams
	return &cli.Command{
		Name:    "hash",
		Summary: "Compute protocol dispatch hashes",
		Description: `Compute the 64-bit dispatch hash for each protocol name argument.
Hashing is case-insensitive, so "ZIP" and "zip" print the same value.
Full path strings are accepted too: anything containing "://" is
parsed and its protocol component hashed.`,
		Usage: "respath hash <protocol>...",
		Examples: []cli.Example{
			{
				Description: "Hash protocol names for a handler dispatch table",
				Command:     "respath hash file zip http",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hash", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one protocol name is required")
			}

			entries := make([]protocolHashEntry, 0, len(args))
			for _, arg := range args {
				// A bare name like "zip" would otherwise parse as a
				// filename with the default "file" protocol.
				protocol := strings.ToLower(arg)
				if strings.Contains(arg, "://") {
					protocol = respath.Parse(arg).Protocol()
				}
				entries = append(entries, protocolHashEntry{
					Protocol: protocol,
					Hash:     respath.HashProtocol(protocol).String(),
				})
			}

			if done, err := params.EmitJSON(entries); done {
				return err
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			for _, entry := range entries {
				fmt.Fprintf(writer, "%s\t%s\n", entry.Protocol, entry.Hash)
			}
			return writer.Flush()
		},
	}
}
