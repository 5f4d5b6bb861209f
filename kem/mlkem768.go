// Package kem is a thin, error-mapped facade over ML-KEM-768 (FIPS 203),
// backed by github.com/cloudflare/circl. It defines validated wrapper types
// for public keys and KEM ciphertexts so that higher layers never touch
// circl's types directly.
package kem

import (
	"encoding/base64"
	"fmt"

	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/tniur/PQContainerKit/pqerr"
)

// CiphertextSize is the fixed size in bytes of an ML-KEM-768 ciphertext.
const CiphertextSize = 1088

// SharedSecretSize is the fixed size in bytes of an ML-KEM-768 shared secret.
const SharedSecretSize = 32

func scheme() circlkem.Scheme {
	return mlkem768.Scheme()
}

// PublicKey is a validated ML-KEM-768 public key.
type PublicKey struct {
	inner circlkem.PublicKey
	raw   []byte
}

// PrivateKey is a validated ML-KEM-768 private key.
type PrivateKey struct {
	inner circlkem.PrivateKey
}

// Ciphertext is a validated, fixed-length ML-KEM-768 KEM ciphertext.
type Ciphertext struct {
	raw []byte
}

// NewPublicKeyFromRaw validates and wraps raw ML-KEM-768 public key bytes.
func NewPublicKeyFromRaw(raw []byte) (PublicKey, error) {
	pk, err := scheme().UnmarshalBinaryPublicKey(raw)
	if err != nil {
		return PublicKey{}, fmt.Errorf("kem: %w", pqerr.ErrInvalidKeyRepresentation)
	}
	return PublicKey{inner: pk, raw: append([]byte{}, raw...)}, nil
}

// NewPublicKeyFromBase64 decodes standard base64 and delegates to
// NewPublicKeyFromRaw.
func NewPublicKeyFromBase64(s string) (PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("kem: %w", pqerr.ErrInvalidBase64)
	}
	return NewPublicKeyFromRaw(raw)
}

// Raw returns the public key's raw byte representation.
func (pk PublicKey) Raw() []byte {
	return append([]byte{}, pk.raw...)
}

// NewPrivateKeyFromRaw validates and wraps raw ML-KEM-768 private key bytes.
func NewPrivateKeyFromRaw(raw []byte) (PrivateKey, error) {
	sk, err := scheme().UnmarshalBinaryPrivateKey(raw)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("kem: %w", pqerr.ErrInvalidKeyRepresentation)
	}
	return PrivateKey{inner: sk}, nil
}

// NewCiphertextFromRaw validates a raw buffer as an ML-KEM-768 ciphertext.
// Any length other than CiphertextSize is rejected.
func NewCiphertextFromRaw(raw []byte) (Ciphertext, error) {
	if len(raw) != CiphertextSize {
		return Ciphertext{}, fmt.Errorf("kem: %w", pqerr.ErrInvalidCiphertextRepresentation)
	}
	return Ciphertext{raw: append([]byte{}, raw...)}, nil
}

// Raw returns the ciphertext's raw byte representation.
func (c Ciphertext) Raw() []byte {
	return append([]byte{}, c.raw...)
}

// GenerateKeyPair generates a fresh ML-KEM-768 key pair.
func GenerateKeyPair() (PublicKey, PrivateKey, error) {
	pk, sk, err := scheme().GenerateKeyPair()
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("kem: %w", pqerr.ErrKeyGenerationFailed)
	}
	rawPub, err := pk.MarshalBinary()
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("kem: %w", pqerr.ErrKeyGenerationFailed)
	}
	return PublicKey{inner: pk, raw: rawPub}, PrivateKey{inner: sk}, nil
}

// Encapsulate generates a fresh shared secret for pk and the KEM ciphertext
// that carries it.
func Encapsulate(pk PublicKey) (sharedSecret []byte, ct Ciphertext, err error) {
	ciphertext, ss, err := scheme().Encapsulate(pk.inner)
	if err != nil {
		return nil, Ciphertext{}, fmt.Errorf("kem: %w", pqerr.ErrKEMEncapsulationFailed)
	}
	wrapped, err := NewCiphertextFromRaw(ciphertext)
	if err != nil {
		return nil, Ciphertext{}, fmt.Errorf("kem: %w", pqerr.ErrKEMEncapsulationFailed)
	}
	return ss, wrapped, nil
}

// Decapsulate recovers the shared secret carried by ct under sk. Per
// ML-KEM's definition, decapsulation never "rejects" an invalid ciphertext
// in the sense of returning an error — it deterministically returns some
// shared secret. Integrity of that secret is established downstream by the
// DEK-wrap AEAD check, not here.
func Decapsulate(sk PrivateKey, ct Ciphertext) ([]byte, error) {
	ss, err := scheme().Decapsulate(sk.inner, ct.raw)
	if err != nil {
		return nil, fmt.Errorf("kem: %w", pqerr.ErrKEMDecapsulationFailed)
	}
	return ss, nil
}
