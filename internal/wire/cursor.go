// Package wire provides bounded big-endian readers and writers over DNS
// message buffers. It is the lowest layer of the codec: every higher-level
// decoder (name, rdata, message) reads through a Cursor so that truncation
// is caught in one place instead of being re-checked at every call site.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated is returned whenever a read would run past the end of the
// underlying buffer.
var ErrTruncated = errors.New("wire: truncated message")

// Cursor is a bounds-checked, non-destructive reader over an immutable byte
// slice. It never copies the backing array as a whole; ReadN and the
// ReadNWithin variant hand back copies, so decoded byte slices never alias
// it. Bytes is the one accessor that exposes the buffer itself.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf for reading. buf is never mutated or retained beyond
// what the cursor's reads copy out.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Seek moves the read position to an absolute offset. It does not validate
// the offset; callers (the name decoder, following a compression pointer)
// are expected to bounds-check before seeking.
func (c *Cursor) Seek(off int) { c.off = off }

// Bytes returns the whole underlying buffer, for pointer-following code
// that needs to peek at offsets behind the cursor's own position.
func (c *Cursor) Bytes() []byte { return c.buf }

func (c *Cursor) need(n int) error {
	if c.off+n > len(c.buf) || c.off+n < c.off {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.off, len(c.buf))
	}
	return nil
}

// U8 reads a single byte.
func (c *Cursor) U8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

// U16 reads a big-endian 16-bit value.
func (c *Cursor) U16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.off : c.off+2])
	c.off += 2
	return v, nil
}

// U32 reads a big-endian 32-bit value.
func (c *Cursor) U32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.off : c.off+4])
	c.off += 4
	return v, nil
}

// U48 reads a big-endian 48-bit value into the low 48 bits of a uint64, as
// used by TSIG's "time signed" field.
func (c *Cursor) U48() (uint64, error) {
	if err := c.need(6); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range c.buf[c.off : c.off+6] {
		v = v<<8 | uint64(b)
	}
	c.off += 6
	return v, nil
}

// ReadN reads exactly n raw bytes and returns a copy (never a slice aliasing
// the input buffer).
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length", ErrTruncated)
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:c.off+n])
	c.off += n
	return out, nil
}

// PeekU8 reads a byte at an absolute offset without moving the cursor.
func (c *Cursor) PeekU8(at int) (uint8, error) {
	if at < 0 || at >= len(c.buf) {
		return 0, fmt.Errorf("%w: peek at offset %d, have %d", ErrTruncated, at, len(c.buf))
	}
	return c.buf[at], nil
}

// PeekU16 reads a big-endian 16-bit value at an absolute offset without
// moving the cursor.
func (c *Cursor) PeekU16(at int) (uint16, error) {
	if at < 0 || at+2 > len(c.buf) {
		return 0, fmt.Errorf("%w: peek at offset %d, have %d", ErrTruncated, at, len(c.buf))
	}
	return binary.BigEndian.Uint16(c.buf[at : at+2]), nil
}

// ReadNWithin is ReadN but bounds-checked against an explicit limit (an
// absolute offset) instead of the buffer end, for fields nested inside a
// bounded region (RDATA) that must not read into the bytes following it.
func (c *Cursor) ReadNWithin(n, limit int) ([]byte, error) {
	if c.off+n > limit {
		return nil, fmt.Errorf("%w: read would cross rdata boundary", ErrTruncated)
	}
	return c.ReadN(n)
}

// U8Within, U16Within and U32Within are their unbounded counterparts,
// additionally bounds-checked against limit (an absolute offset) so a
// malformed RDATA body cannot read into the following record.
func (c *Cursor) U8Within(limit int) (uint8, error) {
	if c.off+1 > limit {
		return 0, fmt.Errorf("%w: read would cross rdata boundary", ErrTruncated)
	}
	return c.U8()
}

func (c *Cursor) U16Within(limit int) (uint16, error) {
	if c.off+2 > limit {
		return 0, fmt.Errorf("%w: read would cross rdata boundary", ErrTruncated)
	}
	return c.U16()
}

func (c *Cursor) U32Within(limit int) (uint32, error) {
	if c.off+4 > limit {
		return 0, fmt.Errorf("%w: read would cross rdata boundary", ErrTruncated)
	}
	return c.U32()
}

func (c *Cursor) U48Within(limit int) (uint64, error) {
	if c.off+6 > limit {
		return 0, fmt.Errorf("%w: read would cross rdata boundary", ErrTruncated)
	}
	return c.U48()
}

// Builder is a bounds-checked big-endian writer. It caps total output at
// 65535 bytes, the maximum size of a DNS message (RFC 1035 §2.3.4 combined
// with the 16-bit length prefix used by every stream transport).
type Builder struct {
	buf []byte
}

// ErrMessageTooLarge is returned when a write would push total output past
// the 65535-byte DNS message limit.
var ErrMessageTooLarge = errors.New("wire: message exceeds 65535 bytes")

// NewBuilder creates an empty Builder with capacity hint cap0.
func NewBuilder(cap0 int) *Builder {
	return &Builder{buf: make([]byte, 0, cap0)}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// Bytes returns the accumulated output.
func (b *Builder) Bytes() []byte { return b.buf }

func (b *Builder) checkCap(add int) error {
	if len(b.buf)+add > 65535 {
		return ErrMessageTooLarge
	}
	return nil
}

// PutU8 appends a single byte.
func (b *Builder) PutU8(v uint8) error {
	if err := b.checkCap(1); err != nil {
		return err
	}
	b.buf = append(b.buf, v)
	return nil
}

// PutU16 appends a big-endian 16-bit value.
func (b *Builder) PutU16(v uint16) error {
	if err := b.checkCap(2); err != nil {
		return err
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

// PutU32 appends a big-endian 32-bit value.
func (b *Builder) PutU32(v uint32) error {
	if err := b.checkCap(4); err != nil {
		return err
	}
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

// PutU48 appends the low 48 bits of v, big-endian.
func (b *Builder) PutU48(v uint64) error {
	if err := b.checkCap(6); err != nil {
		return err
	}
	var tmp [6]byte
	for i := 5; i >= 0; i-- {
		tmp[i] = byte(v)
		v >>= 8
	}
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

// PutBytes appends raw bytes verbatim.
func (b *Builder) PutBytes(p []byte) error {
	if err := b.checkCap(len(p)); err != nil {
		return err
	}
	b.buf = append(b.buf, p...)
	return nil
}

// PatchU16 overwrites a previously written 16-bit big-endian field at a
// fixed offset, used to backfill rdlength once an RDATA body's encoded size
// is known.
func (b *Builder) PatchU16(at int, v uint16) error {
	if at < 0 || at+2 > len(b.buf) {
		return fmt.Errorf("wire: patch offset %d out of range (len %d)", at, len(b.buf))
	}
	binary.BigEndian.PutUint16(b.buf[at:at+2], v)
	return nil
}
