package container

import (
	"fmt"

	"github.com/tniur/PQContainerKit/codec"
	"github.com/tniur/PQContainerKit/fingerprint"
	"github.com/tniur/PQContainerKit/pqerr"
)

// maxSignedWord bounds a ciphertext length so it always fits a signed
// machine-word slice index, independent of the 512 MiB cap.
const maxSignedWord = int64(^uint(0) >> 1)

// Decode parses buf into a fully validated Container. Decode performs no
// cryptographic operations: it does not check recipient uniqueness,
// algorithm-id support, or anything beyond the declared structural limits.
// The state machine runs Magic -> Version -> HeaderLen -> HeaderBody ->
// [Recipient]xN -> IV -> CtLen -> Ct -> Tag -> Done; any failure terminates
// with a single error and no partial state is visible to the caller.
func Decode(buf []byte) (*Container, error) {
	r, err := codec.NewReader(buf, 0)
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	gotMagic, err := r.ReadBytes(4)
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if string(gotMagic) != string(magic[:]) {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	version, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if version != wireVersion {
		return nil, fmt.Errorf("container: %w", pqerr.ErrUnsupportedVersion)
	}

	headerLen, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if headerLen == 0 || headerLen < FixedHeaderLen {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if headerLen > MaxHeaderLen {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}

	headerBlock, err := r.ReadBytes(int(headerLen))
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	header, err := decodeHeader(headerBlock)
	if err != nil {
		return nil, err
	}

	if header.RecipientsCount < MinRecipients || int(header.RecipientsCount) > MaxRecipients {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}

	recipients := make([]RecipientEntry, 0, header.RecipientsCount)
	for i := 0; i < int(header.RecipientsCount); i++ {
		entry, err := decodeRecipientEntry(r)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, entry)
	}

	ivBytes, err := r.ReadBytes(IVLen)
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	ctLen, err := r.ReadU64LE()
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if ctLen > MaxPayloadCiphertext || int64(ctLen) > maxSignedWord {
		return nil, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}

	ciphertext, err := r.ReadBytes(int(ctLen))
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	tagBytes, err := r.ReadBytes(AuthTagLen)
	if err != nil {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	cipherParts, err := NewCipherParts(ivBytes, ciphertext, tagBytes)
	if err != nil {
		return nil, err
	}

	return &Container{
		Header:      header,
		Recipients:  recipients,
		CipherParts: cipherParts,
	}, nil
}

// decodeHeader parses the fixed 40-byte region of the header block in its
// own sub-reader. Any bytes remaining within the declared header length
// beyond that region are skipped, per the v1 forward-compatibility rule.
func decodeHeader(block []byte) (Header, error) {
	hr, err := codec.NewReader(block, 0)
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	algID, err := hr.ReadU16LE()
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	cidBytes, err := hr.ReadBytes(ContainerIDLen)
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	cid, err := NewContainerID(cidBytes)
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	recipientsCount, err := hr.ReadU16LE()
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	flags, err := hr.ReadU32LE()
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	reserved, err := hr.ReadBytes(reservedLen)
	if err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	// Any trailing bytes within the declared header length are a future v1
	// extension; skip them without interpreting them.
	if err := hr.Skip(hr.Remaining()); err != nil {
		return Header{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	return NewHeader(AlgorithmID(algID), cid, recipientsCount, flags, reserved)
}

func decodeRecipientEntry(r *codec.Reader) (RecipientEntry, error) {
	keyIDBytes, err := r.ReadBytes(fingerprint.Size)
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	keyID, err := fingerprint.FromBytes(keyIDBytes)
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	kemLen, err := r.ReadU16LE()
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if kemLen == 0 {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if int(kemLen) > MaxKEMCiphertextLen {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	kemBytes, err := r.ReadBytes(int(kemLen))
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	wrappedLen, err := r.ReadU16LE()
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if wrappedLen == 0 {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}
	if int(wrappedLen) > MaxWrappedDEKLen {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrLimitsExceeded)
	}
	wrappedBytes, err := r.ReadBytes(int(wrappedLen))
	if err != nil {
		return RecipientEntry{}, fmt.Errorf("container: %w", pqerr.ErrInvalidFormat)
	}

	return RecipientEntry{
		RecipientKeyID: keyID,
		KEMCiphertext:  append([]byte{}, kemBytes...),
		WrappedDEK:     append([]byte{}, wrappedBytes...),
	}, nil
}
