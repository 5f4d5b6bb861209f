// Package fingerprint computes and renders the 32-byte SHA-256 identity
// used to name a recipient on the wire.
package fingerprint

import (
	"crypto/sha256"
	"fmt"

	"github.com/tniur/PQContainerKit/pqerr"
)

// Size is the fixed length of a Fingerprint in bytes.
const Size = 32

// Fingerprint is an opaque 32-byte recipient identity.
type Fingerprint struct {
	b [Size]byte
}

// FromPublicKeyRaw computes the fingerprint of a raw public key's bytes.
func FromPublicKeyRaw(raw []byte) Fingerprint {
	var fp Fingerprint
	fp.b = sha256.Sum256(raw)
	return fp
}

// FromBytes constructs a Fingerprint from raw bytes, which must be exactly
// Size bytes long.
func FromBytes(raw []byte) (Fingerprint, error) {
	if len(raw) != Size {
		return Fingerprint{}, fmt.Errorf("fingerprint: %w", pqerr.ErrInvalidFormat)
	}
	var fp Fingerprint
	copy(fp.b[:], raw)
	return fp, nil
}

// Bytes returns the fingerprint's 32 raw bytes.
func (fp Fingerprint) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, fp.b[:])
	return out
}

// Equal reports whether two fingerprints are byte-equal.
func (fp Fingerprint) Equal(other Fingerprint) bool {
	return fp.b == other.b
}

// GroupedHex renders the fingerprint as lowercase hex split into 4-byte
// (8 hex digit) groups separated by single spaces, with no prefix and no
// trailing space — 71 characters total.
func (fp Fingerprint) GroupedHex() string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, 71)
	for i, b := range fp.b {
		if i > 0 && i%4 == 0 {
			out = append(out, ' ')
		}
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}
