// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package respath_test

import (
	"regexp"
	"testing"

	"github.com/emberforge/respath/lib/respath"
)

func TestHashProtocolDeterministic(t *testing.T) {
	first := respath.HashProtocol("zip")
	second := respath.HashProtocol("zip")
	if first != second {
		t.Errorf("HashProtocol not deterministic: %s vs %s", first, second)
	}
}

func TestHashProtocolCaseInsensitive(t *testing.T) {
	if respath.HashProtocol("ZIP") != respath.HashProtocol("zip") {
		t.Error("HashProtocol should lower-case its input")
	}
}

func TestHashProtocolDistinguishesProtocols(t *testing.T) {
	protocols := []string{"file", "zip", "memory", "http"}
	seen := make(map[respath.ProtocolHash]string)
	for _, protocol := range protocols {
		hash := respath.HashProtocol(protocol)
		if previous, ok := seen[hash]; ok {
			t.Errorf("HashProtocol(%q) collides with HashProtocol(%q)", protocol, previous)
		}
		seen[hash] = protocol
	}
}

func TestPathProtocolHashMatchesFreeFunction(t *testing.T) {
	p := respath.POSIX.Parse("zip://media.zip#file.nxs")
	if p.ProtocolHash() != respath.HashProtocol("zip") {
		t.Errorf("ProtocolHash() = %s, want %s", p.ProtocolHash(), respath.HashProtocol("zip"))
	}

	// The hash survives derivation.
	if p.Parent().ProtocolHash() != p.ProtocolHash() {
		t.Error("Parent() changed the protocol hash")
	}
	if p.Relative().ProtocolHash() != p.ProtocolHash() {
		t.Error("Relative() changed the protocol hash")
	}
}

func TestProtocolHashString(t *testing.T) {
	hash := respath.HashProtocol("file")
	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(hash.String()) {
		t.Errorf("String() = %q, want 16 lower-case hex digits", hash.String())
	}
}
