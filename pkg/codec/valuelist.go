package codec

import (
	"fmt"

	"github.com/x11go/xwire/pkg/wire"
)

// ValueList holds the bitmask-selected attribute words that follow
// certain request headers (window attributes, graphics context
// attributes, window configuration). A 32-bit mask selects which slots
// are present; each present slot occupies exactly one 4-byte word on the
// wire regardless of the attribute's logical width.
//
// On the wire, present slots appear strictly in ascending bit order of
// the mask. The list stores values keyed by mask bit, so callers may
// supply them in any order; Encode reorders them.
type ValueList struct {
	values map[uint32]uint32
}

// NewValueList returns an empty value list.
func NewValueList() *ValueList {
	return &ValueList{values: make(map[uint32]uint32)}
}

// Set supplies the 4-byte word for one mask bit. bit must have exactly
// one bit set. Attributes narrower than 32 bits occupy the low-order
// bits of the word.
func (l *ValueList) Set(bit uint32, word uint32) *ValueList {
	l.values[bit] = word
	return l
}

// Get returns the word supplied for a mask bit.
func (l *ValueList) Get(bit uint32) (uint32, bool) {
	v, ok := l.values[bit]
	return v, ok
}

// Mask returns the bitwise OR of all supplied bits.
func (l *ValueList) Mask() uint32 {
	var mask uint32
	for bit := range l.values {
		mask |= bit
	}
	return mask
}

// Len returns the number of supplied values.
func (l *ValueList) Len() int {
	return len(l.values)
}

// WireSize returns the encoded size: one 4-byte word per supplied value.
func (l *ValueList) WireSize() int {
	return len(l.values) * SizeCard32
}

// Encode writes the words selected by mask in ascending bit order. The
// set of supplied values must match popcount(mask) exactly: a selected
// bit with no supplied value, or a supplied value the mask does not
// select, fails with ErrMissingInfo.
func (l *ValueList) Encode(w *wire.Writer, mask uint32) error {
	if l.Len() != PopCount(mask) {
		return fmt.Errorf("mask %#08x selects %d values, %d supplied: %w",
			mask, PopCount(mask), l.Len(), wire.ErrMissingInfo)
	}
	for shift := 0; shift < 32; shift++ {
		bit := uint32(1) << shift
		if mask&bit == 0 {
			continue
		}
		word, ok := l.values[bit]
		if !ok {
			return fmt.Errorf("mask bit %#08x has no supplied value: %w", bit, wire.ErrMissingInfo)
		}
		if err := w.PutUint32(word); err != nil {
			return fmt.Errorf("value for bit %#08x: %w", bit, err)
		}
	}
	return nil
}

// DecodeValueList consumes exactly popcount(mask) 4-byte words in
// ascending bit order and returns them keyed by mask bit.
func DecodeValueList(r *wire.Reader, mask uint32) (*ValueList, error) {
	l := NewValueList()
	for shift := 0; shift < 32; shift++ {
		bit := uint32(1) << shift
		if mask&bit == 0 {
			continue
		}
		word, err := r.Uint32()
		if err != nil {
			return nil, fmt.Errorf("value for bit %#08x: %w", bit, err)
		}
		l.values[bit] = word
	}
	return l, nil
}

// ValidateMask fails with ErrInvalidData if mask sets bits outside the
// allowed set. The protocol requires unused mask bits to be zero.
func ValidateMask(mask, allowed uint32) error {
	if extra := mask &^ allowed; extra != 0 {
		return fmt.Errorf("mask %#08x sets unused bits %#08x: %w", mask, extra, wire.ErrInvalidData)
	}
	return nil
}
