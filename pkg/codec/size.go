// Package codec provides the size model and the two irregular field
// encodings of the X11 wire format: sentinel-wrapped values and
// bitmask-selected value lists.
//
// All X11 messages are aligned to 4-byte boundaries. Length and padding
// fields are computed before any byte is written, so encoders need a size
// model: fixed-width types report a static size, variable-width types
// (lists, strings) report a size derived from the value. A structure's
// size is the sum of its fields' sizes plus explicit unused-byte padding.
package codec

import "math/bits"

// Sized is implemented by values whose encoded size depends on the value
// itself (lists, strings, assembled messages). Fixed-width types use the
// static size constants instead.
type Sized interface {
	// WireSize returns the encoded size of the value in bytes.
	WireSize() int
}

// Static sizes of the fixed-width wire types, in bytes.
const (
	SizeCard8  = 1
	SizeCard16 = 2
	SizeCard32 = 4
	SizeCard64 = 8
)

// Pad returns the number of padding bytes needed to align n to the next
// 4-byte boundary. Always in 0..3.
func Pad(n int) int {
	return (4 - n%4) % 4
}

// Align returns n rounded up to the next 4-byte boundary.
func Align(n int) int {
	return n + Pad(n)
}

// ListSize returns the summed encoded size of a list of variable-width
// values, without alignment padding.
func ListSize[T Sized](items []T) int {
	total := 0
	for _, item := range items {
		total += item.WireSize()
	}
	return total
}

// FixedListSize returns the encoded size of a fixed array of count
// elements of a static element size.
func FixedListSize(elemSize, count int) int {
	return elemSize * count
}

// PopCount returns the number of set bits in a 32-bit mask.
func PopCount(mask uint32) int {
	return bits.OnesCount32(mask)
}
