// Package codec provides a bounds-checked little-endian binary reader and a
// growable little-endian binary writer. Every higher layer that parses or
// serializes the container format goes through these two types so that
// there is exactly one place where buffer bounds are checked.
package codec

import (
	"encoding/binary"

	"github.com/tniur/PQContainerKit/pqerr"
)

// Reader walks a borrowed byte buffer from a starting offset, failing
// closed on any underflow.
type Reader struct {
	buf []byte
	pos int
}

// NewReader constructs a Reader over buf starting at off. off must be
// within [0, len(buf)].
func NewReader(buf []byte, off int) (*Reader, error) {
	if off < 0 || off > len(buf) {
		return nil, pqerr.ErrInvalidFormat
	}
	return &Reader{buf: buf, pos: off}, nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

// ReadBytes returns the next n bytes and advances the cursor. The returned
// slice aliases the reader's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, pqerr.ErrInvalidFormat
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU16LE reads a little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64.
func (r *Reader) ReadU64LE() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// Writer accumulates bytes into a growable buffer that the caller takes
// ownership of via Bytes.
type Writer struct {
	buf []byte
}

// NewWriter constructs a Writer with an optional capacity hint.
func NewWriter(capacityHint int) *Writer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Writer{buf: make([]byte, 0, capacityHint)}
}

// Append appends raw bytes.
func (w *Writer) Append(b []byte) {
	w.buf = append(w.buf, b...)
}

// AppendU16LE appends a little-endian uint16.
func (w *Writer) AppendU16LE(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// AppendU32LE appends a little-endian uint32.
func (w *Writer) AppendU32LE(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// AppendU64LE appends a little-endian uint64.
func (w *Writer) AppendU64LE(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// Bytes returns the accumulated buffer. The caller owns the returned slice.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
