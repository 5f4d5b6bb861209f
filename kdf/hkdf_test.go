package kdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tniur/PQContainerKit/pqerr"
)

func TestDeriveBytesDeterministic(t *testing.T) {
	ikm := []byte("shared secret material")
	salt := []byte("salt-context")
	info := []byte("DEK_WRAP_KEY")

	a, err := DeriveBytes(ikm, salt, info, 32)
	if err != nil {
		t.Fatalf("DeriveBytes: %v", err)
	}
	b, err := DeriveBytes(ikm, salt, info, 32)
	if err != nil {
		t.Fatalf("DeriveBytes: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected deterministic output for identical inputs")
	}
	if len(a) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(a))
	}
}

func TestDeriveBytesDistinguishesInfo(t *testing.T) {
	ikm := []byte("shared secret material")
	salt := []byte("salt-context")

	key, err := DeriveBytes(ikm, salt, []byte("DEK_WRAP_KEY"), 32)
	if err != nil {
		t.Fatalf("DeriveBytes: %v", err)
	}
	nonce, err := DeriveBytes(ikm, salt, []byte("DEK_WRAP_NONCE"), 12)
	if err != nil {
		t.Fatalf("DeriveBytes: %v", err)
	}
	if bytes.Equal(key[:12], nonce) {
		t.Fatalf("expected distinct outputs for distinct info strings")
	}
}

func TestDeriveBytesLengthBounds(t *testing.T) {
	ikm := []byte("ikm")
	if _, err := DeriveBytes(ikm, nil, nil, 0); !errors.Is(err, pqerr.ErrInvalidKDFOutputLength) {
		t.Fatalf("expected ErrInvalidKDFOutputLength for 0, got %v", err)
	}
	if _, err := DeriveBytes(ikm, nil, nil, -1); !errors.Is(err, pqerr.ErrInvalidKDFOutputLength) {
		t.Fatalf("expected ErrInvalidKDFOutputLength for -1, got %v", err)
	}
	if _, err := DeriveBytes(ikm, nil, nil, 1025); !errors.Is(err, pqerr.ErrInvalidKDFOutputLength) {
		t.Fatalf("expected ErrInvalidKDFOutputLength for 1025, got %v", err)
	}
	if _, err := DeriveBytes(ikm, nil, nil, 1024); err != nil {
		t.Fatalf("expected 1024 to be valid, got %v", err)
	}
	if _, err := DeriveBytes(ikm, nil, nil, 1); err != nil {
		t.Fatalf("expected 1 to be valid, got %v", err)
	}
}

func TestDeriveReturnsSymmetricKey(t *testing.T) {
	key, err := Derive([]byte("ikm"), []byte("salt"), []byte("info"), 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if key.Len() != 32 {
		t.Fatalf("expected length 32, got %d", key.Len())
	}
	if len(key.Bytes()) != 32 {
		t.Fatalf("expected Bytes() length 32, got %d", len(key.Bytes()))
	}
}
