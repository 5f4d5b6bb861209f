// Package container implements the PQContainerKit v1 binary container
// format: a strict, length-prefixed, little-endian layout with bounded
// sizes and forward-compatibility rules for future minor revisions within
// v1. This file holds the pure value types; encoder.go and decoder.go hold
// the encoder and decoder that serialize and parse them.
package container

import (
	"fmt"

	"github.com/tniur/PQContainerKit/fingerprint"
	"github.com/tniur/PQContainerKit/pqerr"
	"github.com/tniur/PQContainerKit/random"
)

// Limits enforced uniformly by both the encoder and the decoder,
// regardless of the algorithm ID in the header.
const (
	MinRecipients        = 1
	MaxRecipients        = 100
	MaxKEMCiphertextLen  = 2048
	MaxWrappedDEKLen     = 128
	MaxHeaderLen         = 4096
	MaxPayloadCiphertext = 512 * 1024 * 1024 // 512 MiB

	ContainerIDLen = 16
	IVLen          = 12
	AuthTagLen     = 16
	FixedHeaderLen = 40
	reservedLen    = 16
)

// SuiteMLKEM768HKDFSHA256AESGCM is the single registered algorithm suite:
// ML-KEM-768 + HKDF-SHA-256 + AES-256-GCM.
const SuiteMLKEM768HKDFSHA256AESGCM AlgorithmID = 0x0001

// AlgorithmID identifies the cryptographic suite a container was produced
// under. The decoder preserves this value verbatim without enforcing an
// allowlist: suite selection is left to the caller, so a container produced
// under an unrecognized suite can still be parsed and inspected.
type AlgorithmID uint16

// ContainerID is an opaque 16-byte identifier binding all per-recipient
// wraps in a container to that container.
type ContainerID struct {
	b [ContainerIDLen]byte
}

// NewContainerID validates and wraps raw bytes as a ContainerID. raw must
// be exactly ContainerIDLen bytes.
func NewContainerID(raw []byte) (ContainerID, error) {
	if len(raw) != ContainerIDLen {
		return ContainerID{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	var id ContainerID
	copy(id.b[:], raw)
	return id, nil
}

// RandomContainerID generates a uniformly random ContainerID.
func RandomContainerID() ContainerID {
	var id ContainerID
	copy(id.b[:], random.Bytes(ContainerIDLen))
	return id
}

// Bytes returns the container ID's raw bytes.
func (c ContainerID) Bytes() []byte {
	out := make([]byte, ContainerIDLen)
	copy(out, c.b[:])
	return out
}

// Equal reports whether two container IDs are byte-equal.
func (c ContainerID) Equal(other ContainerID) bool {
	return c.b == other.b
}

// Header is the fixed 40-byte v1 container header: algorithm id (2),
// container id (16), recipient count (2), flags (4), reserved (16).
type Header struct {
	AlgorithmID     AlgorithmID
	ContainerID     ContainerID
	RecipientsCount uint16
	Flags           uint32
	Reserved        [reservedLen]byte
}

// NewHeader constructs a Header, validating that reserved is exactly 16
// bytes long. Flags is carried verbatim; no bits are defined in v1.
func NewHeader(algID AlgorithmID, cid ContainerID, recipientsCount uint16, flags uint32, reserved []byte) (Header, error) {
	if len(reserved) != reservedLen {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	var h Header
	h.AlgorithmID = algID
	h.ContainerID = cid
	h.RecipientsCount = recipientsCount
	h.Flags = flags
	copy(h.Reserved[:], reserved)
	return h, nil
}

// RecipientEntry is one recipient's (key id, KEM ciphertext, wrapped DEK)
// tuple. Entries are order-significant on the wire but carry no semantic
// ordering: consumers locate a recipient by fingerprint.
type RecipientEntry struct {
	RecipientKeyID fingerprint.Fingerprint
	KEMCiphertext  []byte
	WrappedDEK     []byte
}

// NewRecipientEntry validates per-entry size constraints at construction
// time so downstream components may assume them.
func NewRecipientEntry(keyID fingerprint.Fingerprint, kemCiphertext, wrappedDEK []byte) (RecipientEntry, error) {
	if len(kemCiphertext) == 0 || len(kemCiphertext) > MaxKEMCiphertextLen {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	if len(wrappedDEK) == 0 || len(wrappedDEK) > MaxWrappedDEKLen {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	return RecipientEntry{
		RecipientKeyID: keyID,
		KEMCiphertext:  append([]byte{}, kemCiphertext...),
		WrappedDEK:     append([]byte{}, wrappedDEK...),
	}, nil
}

// CipherParts is the sealed payload: a 12-byte IV, the ciphertext, and a
// 16-byte authentication tag.
type CipherParts struct {
	IV         [IVLen]byte
	Ciphertext []byte
	AuthTag    [AuthTagLen]byte
}

// NewCipherParts validates IV and tag lengths at construction.
func NewCipherParts(iv, ciphertext, authTag []byte) (CipherParts, error) {
	if len(iv) != IVLen {
		return CipherParts{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if len(authTag) != AuthTagLen {
		return CipherParts{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	var cp CipherParts
	copy(cp.IV[:], iv)
	cp.Ciphertext = append([]byte{}, ciphertext...)
	copy(cp.AuthTag[:], authTag)
	return cp, nil
}

// Container is a fully decoded or fully validated-for-encoding v1
// container: header, ordered recipient entries, and cipher parts.
type Container struct {
	Header      Header
	Recipients  []RecipientEntry
	CipherParts CipherParts
}
