package schema

import (
	"fmt"

	"github.com/x11go/xwire/pkg/codec"
	"github.com/x11go/xwire/pkg/wire"
)

// ============================================================================
// Fixed-Width Types
// ============================================================================

// Card8 is an unsigned 8-bit field. Values are Go uint8.
type Card8 struct{}

func (Card8) Size(any) (int, error) { return codec.SizeCard8, nil }

func (Card8) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := asUint(v)
	if !ok || n > 0xFF {
		return typeMismatch("CARD8", v)
	}
	return w.PutUint8(uint8(n))
}

func (Card8) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Uint8()
}

// Card16 is an unsigned 16-bit field. Values are Go uint16.
type Card16 struct{}

func (Card16) Size(any) (int, error) { return codec.SizeCard16, nil }

func (Card16) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := asUint(v)
	if !ok || n > 0xFFFF {
		return typeMismatch("CARD16", v)
	}
	return w.PutUint16(uint16(n))
}

func (Card16) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Uint16()
}

// Card32 is an unsigned 32-bit field. Values are Go uint32 or any
// uint32-backed id type widened by the caller.
type Card32 struct{}

func (Card32) Size(any) (int, error) { return codec.SizeCard32, nil }

func (Card32) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := asUint(v)
	if !ok || n > 0xFFFFFFFF {
		return typeMismatch("CARD32", v)
	}
	return w.PutUint32(uint32(n))
}

func (Card32) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Uint32()
}

// Int8 is a signed 8-bit field (bell volume percent). Values are Go
// int8.
type Int8 struct{}

func (Int8) Size(any) (int, error) { return codec.SizeCard8, nil }

func (Int8) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := v.(int8)
	if !ok {
		return typeMismatch("INT8", v)
	}
	return w.PutInt8(n)
}

func (Int8) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Int8()
}

// Int16 is a signed 16-bit field (coordinates). Values are Go int16.
type Int16 struct{}

func (Int16) Size(any) (int, error) { return codec.SizeCard16, nil }

func (Int16) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := v.(int16)
	if !ok {
		return typeMismatch("INT16", v)
	}
	return w.PutInt16(n)
}

func (Int16) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Int16()
}

// Int32 is a signed 32-bit field. Values are Go int32.
type Int32 struct{}

func (Int32) Size(any) (int, error) { return codec.SizeCard32, nil }

func (Int32) Encode(w *wire.Writer, v any, _ *Context) error {
	n, ok := v.(int32)
	if !ok {
		return typeMismatch("INT32", v)
	}
	return w.PutInt32(n)
}

func (Int32) Decode(r *wire.Reader, _ *Context) (any, error) {
	return r.Int32()
}

// Bool is an 8-bit boolean. The protocol defines 0 and 1 as the only
// valid encodings; anything else is invalid data.
type Bool struct{}

func (Bool) Size(any) (int, error) { return codec.SizeCard8, nil }

func (Bool) Encode(w *wire.Writer, v any, _ *Context) error {
	b, ok := v.(bool)
	if !ok {
		return typeMismatch("BOOL", v)
	}
	if b {
		return w.PutUint8(1)
	}
	return w.PutUint8(0)
}

func (Bool) Decode(r *wire.Reader, _ *Context) (any, error) {
	n, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	if n > 1 {
		return nil, fmt.Errorf("BOOL encoding %d: %w", n, wire.ErrInvalidData)
	}
	return n == 1, nil
}

// ============================================================================
// Padding
// ============================================================================

// Pad is a fixed run of unused bytes: skipped on read, zeroed on write.
type Pad struct {
	N int
}

func (p Pad) Size(any) (int, error) { return p.N, nil }

func (p Pad) Encode(w *wire.Writer, _ any, _ *Context) error {
	return w.Pad(p.N)
}

func (p Pad) Decode(r *wire.Reader, _ *Context) (any, error) {
	return nil, r.Advance(p.N)
}

// AlignPad pads to the next 4-byte boundary. Its size depends on the
// cursor position, which the engine tracks; both cursors start at the
// message's first byte and every header size is a multiple of 4, so the
// cursor position is the position within the message.
type AlignPad struct{}

func (AlignPad) Size(any) (int, error) {
	// Resolved positionally by the engine.
	return 0, nil
}

func (AlignPad) Encode(w *wire.Writer, _ any, _ *Context) error {
	return w.Pad(codec.Pad(w.Pos()))
}

func (AlignPad) Decode(r *wire.Reader, _ *Context) (any, error) {
	return nil, r.Advance(codec.Pad(r.Pos()))
}

// ============================================================================
// Context-Dependent Types
// ============================================================================

// Bytes is a byte string whose length is the value of an earlier field.
// Values are Go []byte.
type Bytes struct {
	// LenFrom names the field holding the byte count.
	LenFrom string
}

func (b Bytes) Size(v any) (int, error) {
	raw, ok := v.([]byte)
	if !ok {
		return 0, typeMismatch("byte string", v)
	}
	return len(raw), nil
}

func (b Bytes) Encode(w *wire.Writer, v any, _ *Context) error {
	raw, ok := v.([]byte)
	if !ok {
		return typeMismatch("byte string", v)
	}
	return w.PutBytes(raw)
}

func (b Bytes) Decode(r *wire.Reader, ctx *Context) (any, error) {
	n, ok := ctx.Get(b.LenFrom)
	if !ok {
		return nil, fmt.Errorf("byte string length field %q not yet decoded: %w", b.LenFrom, wire.ErrMissingInfo)
	}
	raw, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// FixedBytes is a byte string of a size fixed by the schema (keymaps,
// authentication cookies). Values are Go []byte of exactly N bytes.
type FixedBytes struct {
	N int
}

func (b FixedBytes) Size(any) (int, error) { return b.N, nil }

func (b FixedBytes) Encode(w *wire.Writer, v any, _ *Context) error {
	raw, ok := v.([]byte)
	if !ok {
		return typeMismatch("fixed byte string", v)
	}
	if len(raw) != b.N {
		return fmt.Errorf("fixed byte string needs %d bytes, got %d: %w", b.N, len(raw), wire.ErrMissingInfo)
	}
	return w.PutBytes(raw)
}

func (b FixedBytes) Decode(r *wire.Reader, _ *Context) (any, error) {
	raw, err := r.Bytes(b.N)
	if err != nil {
		return nil, err
	}
	out := make([]byte, b.N)
	copy(out, raw)
	return out, nil
}

// String8 is a STRING8: like Bytes but surfaced as a Go string.
type String8 struct {
	LenFrom string
}

func (s String8) Size(v any) (int, error) {
	raw, ok := v.(string)
	if !ok {
		return 0, typeMismatch("STRING8", v)
	}
	return len(raw), nil
}

func (s String8) Encode(w *wire.Writer, v any, _ *Context) error {
	raw, ok := v.(string)
	if !ok {
		return typeMismatch("STRING8", v)
	}
	return w.PutBytes([]byte(raw))
}

func (s String8) Decode(r *wire.Reader, ctx *Context) (any, error) {
	n, ok := ctx.Get(s.LenFrom)
	if !ok {
		return nil, fmt.Errorf("STRING8 length field %q not yet decoded: %w", s.LenFrom, wire.ErrMissingInfo)
	}
	raw, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// ListCard32 is a list of 32-bit values whose element count is the value
// of an earlier field (resource id lists, atom lists). Values are Go
// []uint32.
type ListCard32 struct {
	LenFrom string
}

func (l ListCard32) Size(v any) (int, error) {
	items, ok := v.([]uint32)
	if !ok {
		return 0, typeMismatch("LISTofCARD32", v)
	}
	return codec.FixedListSize(codec.SizeCard32, len(items)), nil
}

func (l ListCard32) Encode(w *wire.Writer, v any, _ *Context) error {
	items, ok := v.([]uint32)
	if !ok {
		return typeMismatch("LISTofCARD32", v)
	}
	for _, item := range items {
		if err := w.PutUint32(item); err != nil {
			return err
		}
	}
	return nil
}

func (l ListCard32) Decode(r *wire.Reader, ctx *Context) (any, error) {
	n, ok := ctx.Get(l.LenFrom)
	if !ok {
		return nil, fmt.Errorf("list length field %q not yet decoded: %w", l.LenFrom, wire.ErrMissingInfo)
	}
	items := make([]uint32, n)
	for i := range items {
		item, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// ValueListType is a bitmask-selected value list whose mask is the value
// of an earlier field. Values are *codec.ValueList.
type ValueListType struct {
	// MaskFrom names the 32-bit mask field.
	MaskFrom string
}

func (t ValueListType) Size(v any) (int, error) {
	l, ok := v.(*codec.ValueList)
	if !ok {
		return 0, typeMismatch("LISTofVALUE", v)
	}
	return l.WireSize(), nil
}

func (t ValueListType) Encode(w *wire.Writer, v any, ctx *Context) error {
	l, ok := v.(*codec.ValueList)
	if !ok {
		return typeMismatch("LISTofVALUE", v)
	}
	mask, found := ctx.Uint32(t.MaskFrom)
	if !found {
		return fmt.Errorf("value-list mask field %q not available: %w", t.MaskFrom, wire.ErrMissingInfo)
	}
	return l.Encode(w, mask)
}

func (t ValueListType) Decode(r *wire.Reader, ctx *Context) (any, error) {
	mask, found := ctx.Uint32(t.MaskFrom)
	if !found {
		return nil, fmt.Errorf("value-list mask field %q not yet decoded: %w", t.MaskFrom, wire.ErrMissingInfo)
	}
	return codec.DecodeValueList(r, mask)
}

// SentinelOf adapts a sentinel scheme into a field type. Values are
// codec.Sentinel[T].
type SentinelOf[T codec.Card] struct {
	Scheme codec.Scheme[T]
}

func (s SentinelOf[T]) Size(any) (int, error) {
	return s.Scheme.WireSize(), nil
}

func (s SentinelOf[T]) Encode(w *wire.Writer, v any, _ *Context) error {
	sv, ok := v.(codec.Sentinel[T])
	if !ok {
		return typeMismatch(s.Scheme.Field, v)
	}
	return s.Scheme.Encode(w, sv)
}

func (s SentinelOf[T]) Decode(r *wire.Reader, _ *Context) (any, error) {
	return s.Scheme.Decode(r)
}

func typeMismatch(want string, got any) error {
	return fmt.Errorf("field value %T does not encode as %s: %w", got, want, wire.ErrMissingInfo)
}
