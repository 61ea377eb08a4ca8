package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content digests.
// Version suffix enables future algorithm migration.
const (
	DomainResult = "arraykit/result/v1"
	DomainTrace  = "arraykit/trace/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest returns the hex SHA-256 digest of the canonical form of v under
// the given domain.
func Digest(domain string, v any) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return hashWithDomain(domain, canonical), nil
}

// ResultDigest identifies the result of applying op to input.
// Equal (op, input, output) triples always produce the same digest.
func ResultDigest(op string, input []int, output any) (string, error) {
	return Digest(DomainResult, map[string]any{
		"op":     op,
		"input":  input,
		"output": output,
	})
}
