// Package codec provides canonical JSON serialization and content digests
// for arraykit results.
//
// Canonical form follows RFC 8785:
//   - object keys sorted by UTF-16 code units
//   - no insignificant whitespace
//   - no HTML escaping; only quote, backslash and control characters escaped
//   - strings NFC normalized
//
// Floats and null are rejected so that every encodable value has exactly
// one byte representation. Digests are SHA-256 over the canonical bytes
// with domain separation.
package codec
