package dekwrap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tniur/PQContainerKit/pqerr"
)

func fixedContainerID() []byte {
	b := make([]byte, 16)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func fixedRecipientKeyID() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = 0xAA
	}
	return b
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	dek := make([]byte, DEKSize)
	for i := range dek {
		dek[i] = byte(i + 1)
	}
	sharedSecret := bytes.Repeat([]byte{0x42}, 32)
	containerID := fixedContainerID()
	recipientKeyID := fixedRecipientKeyID()

	wrapped, err := Wrap(dek, containerID, recipientKeyID, sharedSecret)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(wrapped) != DEKSize+16 {
		t.Fatalf("wrapped length = %d, want %d", len(wrapped), DEKSize+16)
	}
	secret, err := Unwrap(wrapped, containerID, recipientKeyID, sharedSecret)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	defer secret.Destroy()
	if !bytes.Equal(secret.Bytes(), dek) {
		t.Fatalf("unwrapped DEK does not match original")
	}
}

func TestUnwrapWrongSharedSecretFails(t *testing.T) {
	dek := make([]byte, DEKSize)
	sharedSecret := bytes.Repeat([]byte{0x42}, 32)
	containerID := fixedContainerID()
	recipientKeyID := fixedRecipientKeyID()

	wrapped, err := Wrap(dek, containerID, recipientKeyID, sharedSecret)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	wrongSecret := bytes.Repeat([]byte{0x22}, 32)
	if _, err := Unwrap(wrapped, containerID, recipientKeyID, wrongSecret); !errors.Is(err, pqerr.ErrAEADFailed) {
		t.Fatalf("expected ErrAEADFailed, got %v", err)
	}
}

func TestUnwrapBitFlipFails(t *testing.T) {
	dek := make([]byte, DEKSize)
	sharedSecret := bytes.Repeat([]byte{0x42}, 32)
	containerID := fixedContainerID()
	recipientKeyID := fixedRecipientKeyID()

	wrapped, err := Wrap(dek, containerID, recipientKeyID, sharedSecret)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	tampered := append([]byte{}, wrapped...)
	tampered[0] ^= 0x01
	if _, err := Unwrap(tampered, containerID, recipientKeyID, sharedSecret); !errors.Is(err, pqerr.ErrAEADFailed) {
		t.Fatalf("expected ErrAEADFailed on bit-flipped wrapped bytes, got %v", err)
	}

	tamperedCID := append([]byte{}, containerID...)
	tamperedCID[0] ^= 0x01
	if _, err := Unwrap(wrapped, tamperedCID, recipientKeyID, sharedSecret); !errors.Is(err, pqerr.ErrAEADFailed) {
		t.Fatalf("expected ErrAEADFailed on tampered containerID, got %v", err)
	}

	tamperedRID := append([]byte{}, recipientKeyID...)
	tamperedRID[0] ^= 0x01
	if _, err := Unwrap(wrapped, containerID, tamperedRID, sharedSecret); !errors.Is(err, pqerr.ErrAEADFailed) {
		t.Fatalf("expected ErrAEADFailed on tampered recipientKeyID, got %v", err)
	}
}

func TestUnwrapTooShortFails(t *testing.T) {
	containerID := fixedContainerID()
	recipientKeyID := fixedRecipientKeyID()
	sharedSecret := bytes.Repeat([]byte{0x42}, 32)
	if _, err := Unwrap(make([]byte, 16), containerID, recipientKeyID, sharedSecret); !errors.Is(err, pqerr.ErrInvalidWrappedDEKRepresentation) {
		t.Fatalf("expected ErrInvalidWrappedDEKRepresentation, got %v", err)
	}
}
