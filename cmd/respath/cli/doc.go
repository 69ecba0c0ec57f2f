// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command-tree framework behind the respath tool:
// a [Command] type dispatching nested subcommands, pflag-based flag
// parsing with struct-tag binding ([BindFlags]), Levenshtein
// suggestions for mistyped commands and flags, and shared output
// helpers ([JSONOutput], [ExitError]).
package cli
