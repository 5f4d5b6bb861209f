// Package pqerr defines the stable, user-visible error taxonomy shared by
// every component of PQContainerKit. Components map whatever a provider or
// a length check tells them onto exactly one of these sentinels at their
// boundary; callers use errors.Is against this package, never against a
// lower-layer error type.
package pqerr

import "errors"

var (
	// ErrInvalidBase64 is returned when a base64-encoded public key fails to decode.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrInvalidKeyRepresentation is returned when raw key bytes do not form
	// a valid key for the underlying primitive.
	ErrInvalidKeyRepresentation = errors.New("invalid key representation")

	// ErrKeyGenerationFailed is returned when key-pair generation fails.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrKEMEncapsulationFailed is returned when KEM encapsulation fails.
	ErrKEMEncapsulationFailed = errors.New("KEM encapsulation failed")

	// ErrKEMDecapsulationFailed is returned when KEM decapsulation fails.
	ErrKEMDecapsulationFailed = errors.New("KEM decapsulation failed")

	// ErrInvalidCiphertextRepresentation is returned when raw bytes are not a
	// valid KEM ciphertext for the registered suite.
	ErrInvalidCiphertextRepresentation = errors.New("invalid ciphertext representation")

	// ErrInvalidKDFOutputLength is returned when a KDF output length is outside [1, 1024].
	ErrInvalidKDFOutputLength = errors.New("invalid KDF output length")

	// ErrInvalidNonceLength is returned when an AEAD nonce is not 12 bytes.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidTagLength is returned when an AEAD tag is not 16 bytes.
	ErrInvalidTagLength = errors.New("invalid tag length")

	// ErrAEADFailed is returned for any AEAD seal/open failure, including
	// authentication failure. It deliberately does not distinguish wrong
	// key, tampered ciphertext, or wrong AAD.
	ErrAEADFailed = errors.New("AEAD failed")

	// ErrInvalidWrappedDEKRepresentation is returned when a wrapped DEK's
	// length or recovered plaintext length is structurally invalid.
	ErrInvalidWrappedDEKRepresentation = errors.New("invalid wrapped DEK representation")

	// ErrUnsupportedVersion is returned when a container's version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrInvalidFormat is returned for any structural parsing failure.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrLimitsExceeded is returned when a declared or actual size exceeds a documented bound.
	ErrLimitsExceeded = errors.New("limits exceeded")

	// ErrAccessDenied is returned when no recipient entry matches the caller's key.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotOpen is returned when a matching recipient entry unwraps but
	// the payload AEAD subsequently fails.
	ErrCannotOpen = errors.New("cannot open")
)
