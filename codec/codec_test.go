package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tniur/PQContainerKit/pqerr"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.AppendU16LE(0xBEEF)
	w.AppendU32LE(0xDEADBEEF)
	w.AppendU64LE(0x0102030405060708)
	w.Append([]byte("hello"))

	r, err := NewReader(w.Bytes(), 0)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if v, err := r.ReadU16LE(); err != nil || v != 0xBEEF {
		t.Fatalf("ReadU16LE = %v, %v", v, err)
	}
	if v, err := r.ReadU32LE(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32LE = %v, %v", v, err)
	}
	if v, err := r.ReadU64LE(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("ReadU64LE = %v, %v", v, err)
	}
	b, err := r.ReadBytes(5)
	if err != nil || !bytes.Equal(b, []byte("hello")) {
		t.Fatalf("ReadBytes = %q, %v", b, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", r.Remaining())
	}
}

func TestReaderUnderflow(t *testing.T) {
	r, err := NewReader([]byte{1, 2, 3}, 0)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadBytes(4); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if _, err := r.ReadU64LE(); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestReaderNegativeLength(t *testing.T) {
	r, err := NewReader([]byte{1, 2, 3}, 0)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadBytes(-1); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestNewReaderBadOffset(t *testing.T) {
	if _, err := NewReader([]byte{1, 2, 3}, -1); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if _, err := NewReader([]byte{1, 2, 3}, 4); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if _, err := NewReader([]byte{1, 2, 3}, 3); err != nil {
		t.Fatalf("offset at end should be valid, got %v", err)
	}
}

func TestSkip(t *testing.T) {
	r, err := NewReader([]byte{1, 2, 3, 4}, 0)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if err := r.Skip(2); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	b, err := r.ReadBytes(2)
	if err != nil || !bytes.Equal(b, []byte{3, 4}) {
		t.Fatalf("ReadBytes after skip = %v, %v", b, err)
	}
	if err := r.Skip(1); !errors.Is(err, pqerr.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat past end, got %v", err)
	}
}
