// Package securemem handles transient secret material — DEK plaintext, wrap
// keys, wrap nonces — either in locked, zero-on-destroy buffers or as plain
// slices zeroed in place, so that a best effort is made to scrub it from
// process memory before it is released.
package securemem

import "github.com/awnumar/memguard"

// Secret is a locked buffer holding sensitive bytes. The zero value is not
// usable; construct with New or NewRandom.
type Secret struct {
	buf *memguard.LockedBuffer
}

// NewRandom allocates a locked buffer of n random bytes.
func NewRandom(n int) *Secret {
	return &Secret{buf: memguard.NewBufferRandom(n)}
}

// New copies b into a locked buffer and zeroes the caller's copy.
func New(b []byte) *Secret {
	s := &Secret{buf: memguard.NewBufferFromBytes(b)}
	return s
}

// Bytes returns the secret's current contents. The returned slice aliases
// the locked buffer and must not outlive a call to Destroy.
func (s *Secret) Bytes() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once and on
// a nil Secret.
func (s *Secret) Destroy() {
	if s == nil || s.buf == nil {
		return
	}
	s.buf.Destroy()
}

// Wipe zeroes a plain byte slice in place. Used for DEK buffers that were
// materialized outside a Secret (for example, bytes just recovered from an
// AEAD open) and must be scrubbed before the call that produced them
// returns.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
