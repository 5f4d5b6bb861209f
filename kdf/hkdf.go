// Package kdf derives symmetric key material and raw bytes from a KEM
// shared secret using HKDF-SHA-256, bound to caller-supplied salt and info
// for domain separation.
package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/tniur/PQContainerKit/pqerr"
)

const (
	minOutputLength = 1
	maxOutputLength = 1024
)

// DeriveBytes runs HKDF-SHA-256 extract-then-expand over ikm with salt and
// info, returning length bytes of output. length must be in [1, 1024].
func DeriveBytes(ikm, salt, info []byte, length int) ([]byte, error) {
	if length < minOutputLength || length > maxOutputLength {
		return nil, fmt.Errorf("kdf: %w", pqerr.ErrInvalidKDFOutputLength)
	}
	reader := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("kdf: %w", pqerr.ErrInvalidKDFOutputLength)
	}
	return out, nil
}

// SymmetricKey is a fixed-purpose derived key. It carries no algorithm tag
// of its own — callers know from context (wrap key vs. wrap nonce) what it
// is for.
type SymmetricKey struct {
	b []byte
}

// Bytes returns the raw key bytes.
func (k SymmetricKey) Bytes() []byte { return k.b }

// Len returns the key length in bytes.
func (k SymmetricKey) Len() int { return len(k.b) }

// Derive runs HKDF-SHA-256 and wraps the result as a SymmetricKey.
func Derive(ikm, salt, info []byte, length int) (SymmetricKey, error) {
	b, err := DeriveBytes(ikm, salt, info, length)
	if err != nil {
		return SymmetricKey{}, err
	}
	return SymmetricKey{b: b}, nil
}
