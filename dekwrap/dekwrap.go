// Package dekwrap implements the per-recipient DEK wrap protocol: derive a
// wrap key and wrap nonce from a KEM shared secret via HKDF-SHA-256 bound to
// container and recipient context, then seal or open the DEK with
// AES-256-GCM using that same context as associated data.
package dekwrap

import (
	"fmt"

	"github.com/tniur/PQContainerKit/aead"
	"github.com/tniur/PQContainerKit/kdf"
	"github.com/tniur/PQContainerKit/pqerr"
	"github.com/tniur/PQContainerKit/securemem"
)

// DEKSize is the fixed size of a data encryption key in bytes.
const DEKSize = 32

const (
	infoWrapKey   = "DEK_WRAP_KEY"
	infoWrapNonce = "DEK_WRAP_NONCE"
)

// context builds the 48-byte HKDF salt / AEAD AAD binding a wrap to a
// specific container and recipient: containerID(16) || recipientKeyID(32).
func context(containerID, recipientKeyID []byte) []byte {
	ctx := make([]byte, 0, len(containerID)+len(recipientKeyID))
	ctx = append(ctx, containerID...)
	ctx = append(ctx, recipientKeyID...)
	return ctx
}

func deriveWrapKeyAndNonce(sharedSecret, ctx []byte) (wrapKey, wrapNonce []byte, err error) {
	wrapKey, err = kdf.DeriveBytes(sharedSecret, ctx, []byte(infoWrapKey), aead.KeySize)
	if err != nil {
		return nil, nil, err
	}
	wrapNonce, err = kdf.DeriveBytes(sharedSecret, ctx, []byte(infoWrapNonce), aead.NonceSize)
	if err != nil {
		return nil, nil, err
	}
	return wrapKey, wrapNonce, nil
}

// Wrap derives a wrap key and wrap nonce bound to (containerID,
// recipientKeyID, sharedSecret) and seals dek under AES-256-GCM, returning
// ciphertext||tag. dek, containerID, and recipientKeyID are not modified or
// retained.
func Wrap(dek, containerID, recipientKeyID, sharedSecret []byte) ([]byte, error) {
	ctx := context(containerID, recipientKeyID)
	wrapKey, wrapNonce, err := deriveWrapKeyAndNonce(sharedSecret, ctx)
	if err != nil {
		return nil, err
	}
	defer securemem.Wipe(wrapKey)
	defer securemem.Wipe(wrapNonce)

	ct, tag, err := aead.Seal(dek, wrapKey, wrapNonce, ctx)
	if err != nil {
		return nil, err
	}
	wrapped := make([]byte, 0, len(ct)+len(tag))
	wrapped = append(wrapped, ct...)
	wrapped = append(wrapped, tag...)
	return wrapped, nil
}

// Unwrap reverses Wrap, recovering the DEK. The recovered plaintext is
// copied into a zero-on-destroy secret and the local plaintext buffer is
// wiped before this function returns, per the zeroization rule in the
// container lifecycle. The caller owns the returned secret and must call
// Destroy on it once the DEK is no longer needed.
func Unwrap(wrapped, containerID, recipientKeyID, sharedSecret []byte) (*securemem.Secret, error) {
	if len(wrapped) <= aead.TagSize {
		return nil, fmt.Errorf("dekwrap: %w", pqerr.ErrInvalidWrappedDEKRepresentation)
	}
	split := len(wrapped) - aead.TagSize
	ct := wrapped[:split]
	tag := wrapped[split:]

	ctx := context(containerID, recipientKeyID)
	wrapKey, wrapNonce, err := deriveWrapKeyAndNonce(sharedSecret, ctx)
	if err != nil {
		return nil, err
	}
	defer securemem.Wipe(wrapKey)
	defer securemem.Wipe(wrapNonce)

	dek, err := aead.Open(ct, tag, wrapKey, wrapNonce, ctx)
	if err != nil {
		return nil, err
	}
	if len(dek) != DEKSize {
		securemem.Wipe(dek)
		return nil, fmt.Errorf("dekwrap: %w", pqerr.ErrInvalidWrappedDEKRepresentation)
	}
	secret := securemem.New(dek)
	securemem.Wipe(dek)
	return secret, nil
}
