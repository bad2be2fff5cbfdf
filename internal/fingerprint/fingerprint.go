// Package fingerprint computes content fingerprints of raw payload bytes
// for duplicate detection within and across scrape batches.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the sha-256 hex digest of payload. The digest is computed over
// the exact bytes as received: byte-identical payloads collide by design,
// while semantically identical but differently serialized payloads do not.
func Hash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Set tracks fingerprints observed during a single ingestion run.
// It is scoped to one run and not safe for concurrent use; cross-batch
// duplicate discovery goes through the staging store instead.
type Set struct {
	seen map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		seen: map[string]struct{}{},
	}
}

// Observe records hash and reports whether it was already observed in this run.
func (s *Set) Observe(hash string) bool {
	if _, ok := s.seen[hash]; ok {
		return true
	}
	s.seen[hash] = struct{}{}
	return false
}

// Len returns the number of distinct fingerprints observed.
func (s *Set) Len() int {
	return len(s.seen)
}
