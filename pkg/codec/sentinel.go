package codec

import (
	"fmt"

	"github.com/x11go/xwire/pkg/wire"
)

// Card constrains the value types that can carry a sentinel encoding.
// X11 sentinel fields are unsigned protocol values (resource ids, atoms,
// timestamps), all backed by uint32 at the language level even when the
// field's wire width is 1 or 2 bytes.
type Card interface {
	~uint32
}

// Sentinel is a field value that is either one of the field's reserved
// constants (CopyFromParent, ParentRelative, None, Any, CurrentTime,
// PointerRoot, ...) or a specific value of the wrapped type. The two
// states share the field's wire slot: no extra discriminant byte exists
// on the wire, so the distinction is confined to the codec boundary.
type Sentinel[T Card] struct {
	value    T
	reserved bool
}

// Specific wraps a concrete value of the underlying type.
func Specific[T Card](v T) Sentinel[T] {
	return Sentinel[T]{value: v}
}

// Reserved wraps one of the field's reserved constants.
func Reserved[T Card](c T) Sentinel[T] {
	return Sentinel[T]{value: c, reserved: true}
}

// IsReserved reports whether the value is a reserved constant rather
// than a specific value.
func (s Sentinel[T]) IsReserved() bool {
	return s.reserved
}

// Value returns the specific value, if the sentinel holds one.
func (s Sentinel[T]) Value() (T, bool) {
	if s.reserved {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Constant returns the reserved constant, if the sentinel holds one.
func (s Sentinel[T]) Constant() (T, bool) {
	if !s.reserved {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Raw returns the bit pattern that represents this value on the wire,
// regardless of which state it holds.
func (s Sentinel[T]) Raw() T {
	return s.value
}

// Scheme declares, for one field, which bit patterns of the wrapped
// type's width are reserved for sentinel states. The constants are
// compared in the order the protocol defines them.
//
// The protocol guarantees that a reserved pattern never occurs as a
// legitimate value for the field the scheme belongs to. That is a schema
// contract, not something the codec validates: encoding Specific(0) for
// a field whose reserved constant is 0 produces the sentinel's bytes.
type Scheme[T Card] struct {
	// Field names the protocol field, for error reporting.
	Field string

	// Width is the field's wire width in bytes: 1, 2, or 4.
	// Zero means 4, the common case.
	Width int

	// Reserved lists the reserved constants in protocol order.
	// Commonly just {0}, occasionally {0, 1}.
	Reserved []T
}

// WireSize returns the field's wire width in bytes.
func (s Scheme[T]) WireSize() int {
	if s.Width == 0 {
		return SizeCard32
	}
	return s.Width
}

func (s Scheme[T]) read(r *wire.Reader) (uint32, error) {
	switch s.WireSize() {
	case SizeCard8:
		v, err := r.Uint8()
		return uint32(v), err
	case SizeCard16:
		v, err := r.Uint16()
		return uint32(v), err
	default:
		return r.Uint32()
	}
}

func (s Scheme[T]) write(w *wire.Writer, v uint32) error {
	switch s.WireSize() {
	case SizeCard8:
		return w.PutUint8(uint8(v))
	case SizeCard16:
		return w.PutUint16(uint16(v))
	default:
		return w.PutUint32(v)
	}
}

// Decode reads the field's bits and classifies them: a bit pattern equal
// to one of the reserved constants yields that sentinel state, anything
// else yields a specific value. Reserved constants always win; the
// pattern is never reinterpreted as a specific value.
func (s Scheme[T]) Decode(r *wire.Reader) (Sentinel[T], error) {
	raw, err := s.read(r)
	if err != nil {
		return Sentinel[T]{}, fmt.Errorf("decode %s: %w", s.Field, err)
	}
	for _, c := range s.Reserved {
		if T(raw) == c {
			return Reserved(c), nil
		}
	}
	return Specific(T(raw)), nil
}

// Encode writes the value's bit pattern at the field's width. A reserved
// state must name one of the scheme's constants.
func (s Scheme[T]) Encode(w *wire.Writer, v Sentinel[T]) error {
	if c, ok := v.Constant(); ok {
		known := false
		for _, rc := range s.Reserved {
			if rc == c {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("encode %s: constant %#x is not reserved for this field: %w",
				s.Field, uint32(c), wire.ErrInvalidData)
		}
	}
	if err := s.write(w, uint32(v.Raw())); err != nil {
		return fmt.Errorf("encode %s: %w", s.Field, err)
	}
	return nil
}
