// Package random centralizes the secure random byte source used for DEK
// and container ID generation.
package random

import "crypto/rand"

// Bytes returns n cryptographically secure random bytes. Callers must not
// substitute a deterministic source; there is no seam for one here by
// design.
func Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}
