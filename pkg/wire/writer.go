package wire

import (
	"encoding/binary"
	"fmt"
)

// Writer is a bounded write cursor over a fixed-capacity buffer.
//
// The destination buffer is sized up front from the message's computed
// encoded size, so running out of room means the size model and the
// encoder disagree; the Writer surfaces that as ErrCapacityTooLow rather
// than growing the buffer and hiding the bug.
type Writer struct {
	buf   []byte
	pos   int
	limit int
	order binary.ByteOrder
}

// NewWriter returns a Writer over buf using the connection's byte order.
// The writer's capacity is len(buf).
func NewWriter(buf []byte, order binary.ByteOrder) *Writer {
	return &Writer{buf: buf, limit: len(buf), order: order}
}

// Order returns the byte order this cursor encodes with.
func (w *Writer) Order() binary.ByteOrder {
	return w.order
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int {
	return w.pos
}

// Remaining returns the number of bytes that can still be written.
func (w *Writer) Remaining() int {
	return w.limit - w.pos
}

// Bytes returns the written prefix of the underlying buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

// Limit returns a sub-view of this writer bounded to the next n bytes.
// Writes through the sub-view advance this writer's position; the
// sub-view fails with ErrCapacityTooLow once n bytes have been written
// through it. Used for vectored writes where a component must not exceed
// its declared share of the frame.
func (w *Writer) Limit(n int) (*Writer, error) {
	if err := w.room(0); err != nil {
		return nil, err
	}
	if n > w.Remaining() {
		return nil, fmt.Errorf("limit %d exceeds remaining %d: %w", n, w.Remaining(), ErrCapacityTooLow)
	}
	return &Writer{buf: w.buf, pos: w.pos, limit: w.pos + n, order: w.order}, nil
}

// Skip advances this writer past n bytes written through a Limit
// sub-view.
func (w *Writer) Skip(n int) error {
	if err := w.room(n); err != nil {
		return err
	}
	w.pos += n
	return nil
}

func (w *Writer) room(n int) error {
	if w.limit-w.pos < n {
		return fmt.Errorf("need %d bytes, have %d: %w", n, w.limit-w.pos, ErrCapacityTooLow)
	}
	return nil
}

// PutUint8 writes one byte.
func (w *Writer) PutUint8(v uint8) error {
	if err := w.room(1); err != nil {
		return err
	}
	w.buf[w.pos] = v
	w.pos++
	return nil
}

// PutUint16 writes two bytes in the connection byte order.
func (w *Writer) PutUint16(v uint16) error {
	if err := w.room(2); err != nil {
		return err
	}
	w.order.PutUint16(w.buf[w.pos:w.pos+2], v)
	w.pos += 2
	return nil
}

// PutUint32 writes four bytes in the connection byte order.
func (w *Writer) PutUint32(v uint32) error {
	if err := w.room(4); err != nil {
		return err
	}
	w.order.PutUint32(w.buf[w.pos:w.pos+4], v)
	w.pos += 4
	return nil
}

// PutUint64 writes eight bytes in the connection byte order.
func (w *Writer) PutUint64(v uint64) error {
	if err := w.room(8); err != nil {
		return err
	}
	w.order.PutUint64(w.buf[w.pos:w.pos+8], v)
	w.pos += 8
	return nil
}

// PutInt8 writes one byte as a signed integer.
func (w *Writer) PutInt8(v int8) error {
	return w.PutUint8(uint8(v))
}

// PutInt16 writes two bytes as a signed integer.
func (w *Writer) PutInt16(v int16) error {
	return w.PutUint16(uint16(v))
}

// PutInt32 writes four bytes as a signed integer.
func (w *Writer) PutInt32(v int32) error {
	return w.PutUint32(uint32(v))
}

// PutInt64 writes eight bytes as a signed integer.
func (w *Writer) PutInt64(v int64) error {
	return w.PutUint64(uint64(v))
}

// PutBytes writes b verbatim.
func (w *Writer) PutBytes(b []byte) error {
	if err := w.room(len(b)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return nil
}

// Pad writes n zero bytes. Used for unused bytes and alignment padding.
func (w *Writer) Pad(n int) error {
	if err := w.room(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		w.buf[w.pos+i] = 0
	}
	w.pos += n
	return nil
}
