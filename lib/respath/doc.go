// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package respath provides the path value type used by the resource
// layer to name files, directories, and entries inside container
// archives with one uniform grammar:
//
//	protocol://drive:/dir1/dir2/filename.extension#portion
//
// Examples of the grammar:
//
//	file://C:/Program Files/Game/Game.exe    specific file
//	file://C:/Program Files/Game/            directory
//	file:///home/franky/Desktop/file.nxs     POSIX-style absolute path
//	file://Game.exe                          relative file
//	zip://media.zip#file.nxs                 file.nxs inside media.zip
//	memory://                                protocol only
//
// Parsing is total: Parse never fails, and malformed input degrades
// into the most literal decomposition rather than an error. A string
// without a "://" separator gets the implicit "file" protocol. Both
// "/" and "\" are accepted as separators on input; canonical output
// always uses "/". "." and ".." segments are collapsed during parsing
// and joining, except for a leading ".." with no parent to cancel
// against, which is preserved and reported by
// [Path.HasUnresolvedParentReference].
//
// A Path is immutable value data. Once constructed it is only ever
// replaced wholesale, so independent instances are safe to use from
// concurrent goroutines without coordination. The mutating join
// variants ([Path.Extend], [Path.ExtendRaw]) rewrite their receiver
// and need external synchronization if one instance is shared.
//
// The zero Path is the "no path" sentinel: [Path.IsZero] reports it
// and MarshalText rejects it. Every parsed Path has a non-empty
// protocol.
//
// Consumers dispatch on [Path.ProtocolHash], a keyed BLAKE3 dispatch
// key that is stable across processes, and locate resources with
// [Path.NativeString] or the structured accessors. No I/O happens in
// this package.
package respath
