// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// ProtocolHash is a 64-bit dispatch key derived from a path's
// protocol. It is deterministic across calls and across processes, so
// a consuming resource registry can build, persist, or exchange
// handler tables keyed by it.
type ProtocolHash uint64

// protocolDomainKey is the BLAKE3 keyed-hash domain key for protocol
// hashing. The bytes are the ASCII domain name zero-padded to 32
// bytes; changing them invalidates every published protocol hash.
var protocolDomainKey = [32]byte{
	'e', 'm', 'b', 'e', 'r', 'f', 'o', 'r', 'g', 'e', '.',
	'r', 'e', 's', 'p', 'a', 't', 'h', '.',
	'p', 'r', 'o', 't', 'o', 'c', 'o', 'l', 0, 0, 0, 0, 0,
}

// HashProtocol hashes a protocol identifier into its dispatch key.
// The input is lower-cased first, so hashes of hand-written protocol
// names agree with hashes taken from parsed paths, whose protocols
// are already normalized.
func HashProtocol(protocol string) ProtocolHash {
	hasher, err := blake3.NewKeyed(protocolDomainKey[:])
	if err != nil {
		// NewKeyed only fails for a wrong key length, which the
		// fixed-size array rules out.
		panic("respath: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(strings.ToLower(protocol)))
	sum := hasher.Sum(nil)
	return ProtocolHash(binary.LittleEndian.Uint64(sum[:8]))
}

// String returns the hash as 16 lower-case hex digits, the canonical
// form for logs and CLI output.
func (h ProtocolHash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}
