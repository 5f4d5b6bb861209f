package container

import (
	"fmt"

	"github.com/tniur/PQContainerKit/codec"
	"github.com/tniur/PQContainerKit/fingerprint"
	"github.com/tniur/PQContainerKit/pqerr"
)

var magic = [4]byte{'P', 'Q', 'C', 'K'}

const wireVersion uint16 = 1

// Encode serializes a header, its recipient entries, and cipher parts into
// a v1 container. Every precondition is checked before any byte is
// written: the call either returns a fully valid buffer or an error, never
// a partial one.
func Encode(header Header, recipients []RecipientEntry, cipherParts CipherParts) ([]byte, error) {
	if int(header.RecipientsCount) != len(recipients) {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if len(recipients) < MinRecipients || len(recipients) > MaxRecipients {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	headerBytes := encodeHeader(header)
	if len(headerBytes) != FixedHeaderLen {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if len(headerBytes) > MaxHeaderLen {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	for _, r := range recipients {
		if len(r.KEMCiphertext) == 0 || len(r.KEMCiphertext) > MaxKEMCiphertextLen || len(r.KEMCiphertext) > 0xFFFF {
			return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
		}
		if len(r.WrappedDEK) == 0 || len(r.WrappedDEK) > MaxWrappedDEKLen || len(r.WrappedDEK) > 0xFFFF {
			return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
		}
	}
	if len(cipherParts.Ciphertext) > MaxPayloadCiphertext {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}

	capacityHint := 4 + 2 + 4 + len(headerBytes) + recipientsCapacityHint(recipients) + IVLen + 8 + len(cipherParts.Ciphertext) + AuthTagLen
	w := codec.NewWriter(capacityHint)

	w.Append(magic[:])
	w.AppendU16LE(wireVersion)
	w.AppendU32LE(uint32(len(headerBytes)))
	w.Append(headerBytes)

	for _, r := range recipients {
		w.Append(r.RecipientKeyID.Bytes())
		w.AppendU16LE(uint16(len(r.KEMCiphertext)))
		w.Append(r.KEMCiphertext)
		w.AppendU16LE(uint16(len(r.WrappedDEK)))
		w.Append(r.WrappedDEK)
	}

	w.Append(cipherParts.IV[:])
	w.AppendU64LE(uint64(len(cipherParts.Ciphertext)))
	w.Append(cipherParts.Ciphertext)
	w.Append(cipherParts.AuthTag[:])

	return w.Bytes(), nil
}

func recipientsCapacityHint(recipients []RecipientEntry) int {
	n := 0
	for _, r := range recipients {
		n += fingerprint.Size + 2 + len(r.KEMCiphertext) + 2 + len(r.WrappedDEK)
	}
	return n
}

func encodeHeader(h Header) []byte {
	w := codec.NewWriter(FixedHeaderLen)
	w.AppendU16LE(uint16(h.AlgorithmID))
	w.Append(h.ContainerID.Bytes())
	w.AppendU16LE(h.RecipientsCount)
	w.AppendU32LE(h.Flags)
	w.Append(h.Reserved[:])
	return w.Bytes()
}
