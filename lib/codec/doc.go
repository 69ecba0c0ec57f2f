// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deterministic CBOR encoding and decoding for
// path manifests and other interchange structures.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same logical data always produces identical bytes and manifests can
// be compared or content-addressed byte-wise. Text-marshaling types
// such as respath.Path serialize as their canonical strings, and
// decode back through encoding.TextUnmarshaler.
package codec
