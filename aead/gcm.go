// Package aead wraps AES-256-GCM behind a fixed-size nonce and tag contract.
// Ciphertext and tag are returned separately, matching the container v1
// wire layout, and every underlying failure — wrong key, tampered
// ciphertext, wrong associated data — collapses to a single ErrAEADFailed
// so callers cannot build an oracle out of the distinction.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/tniur/PQContainerKit/pqerr"
)

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// NonceSize is the required GCM nonce size in bytes.
	NonceSize = 12
	// TagSize is the required GCM tag size in bytes.
	TagSize = 16
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w: %v", pqerr.ErrAEADFailed, err)
	}
	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("aead: %w: %v", pqerr.ErrAEADFailed, err)
	}
	return gcm, nil
}

// Seal encrypts plaintext under key and nonce, authenticating aad, and
// returns the ciphertext and tag separately. aad may be nil.
func Seal(plaintext, key, nonce, aad []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("aead: %w", pqerr.ErrInvalidNonceLength)
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	sealed := gcm.Seal(nil, nonce, plaintext, aad)
	ct := sealed[:len(sealed)-TagSize]
	t := sealed[len(sealed)-TagSize:]
	return ct, t, nil
}

// Open decrypts ciphertext/tag under key and nonce, authenticating aad, and
// returns the recovered plaintext. aad may be nil. A nonce or tag of the
// wrong length is reported as ErrInvalidNonceLength or ErrInvalidTagLength;
// any other failure — including authentication failure — is reported as
// ErrAEADFailed.
func Open(ciphertext, tag, key, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("aead: %w", pqerr.ErrInvalidNonceLength)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("aead: %w", pqerr.ErrInvalidTagLength)
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	plaintext, err := gcm.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", pqerr.ErrAEADFailed)
	}
	return plaintext, nil
}
