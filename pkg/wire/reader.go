package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader is a bounds-checked read cursor over an in-memory buffer.
//
// Every accessor either consumes exactly the bytes it reports or, on
// failure, consumes nothing: a short buffer returns ErrUnexpectedEndOfData
// with the position unchanged, so the caller can buffer more bytes and
// retry the same read.
//
// A Reader performs no synchronization. It is safe to use from any
// goroutine as long as the underlying buffer is not mutated concurrently.
type Reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// NewReader returns a Reader over buf using the connection's byte order.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

// Order returns the byte order this cursor decodes with.
func (r *Reader) Order() binary.ByteOrder {
	return r.order
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// HasRemaining reports whether at least one unconsumed byte is left.
func (r *Reader) HasRemaining() bool {
	return r.pos < len(r.buf)
}

// need checks that n more bytes are available without consuming anything.
func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("need %d bytes, have %d: %w", n, r.Remaining(), ErrUnexpectedEndOfData)
	}
	return nil
}

// Peek returns the next n bytes without consuming them. The returned
// slice aliases the underlying buffer and must not be modified.
func (r *Reader) Peek(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return r.buf[r.pos : r.pos+n], nil
}

// Advance skips n bytes without interpreting them. Used for padding and
// unused header bytes.
func (r *Reader) Advance(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Bytes consumes and returns the next n bytes. The returned slice aliases
// the underlying buffer; callers that retain it across buffer reuse must
// copy it.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Uint8 consumes one byte.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// Uint16 consumes two bytes in the connection byte order.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.order.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// Uint32 consumes four bytes in the connection byte order.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.order.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// Uint64 consumes eight bytes in the connection byte order.
func (r *Reader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := r.order.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// Int8 consumes one byte as a signed integer.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

// Int16 consumes two bytes as a signed integer.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Int32 consumes four bytes as a signed integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Int64 consumes eight bytes as a signed integer.
func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}
