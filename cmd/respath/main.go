// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

// Command respath inspects and manipulates resource path strings:
// decomposing them into components, joining fragments, computing
// protocol dispatch hashes, and exchanging path manifests as
// deterministic CBOR.
package main

import (
	"fmt"
	"os"

	"github.com/emberforge/respath/cmd/respath/cli"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired code; don't add a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := &cli.Command{
		Name:    "respath",
		Summary: "Inspect and manipulate resource paths",
		Description: `respath works with the uniform resource path grammar

    protocol://drive:/dir1/dir2/filename.extension#portion

used by the resource layer to address files, directories, and entries
inside container archives. It parses path strings into components,
joins fragments onto base paths, computes protocol dispatch hashes,
and encodes path manifests as deterministic CBOR.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			joinCommand(),
			hashCommand(),
			encodeCommand(),
			decodeCommand(),
		},
	}
	return root.Execute(os.Args[1:])
}
