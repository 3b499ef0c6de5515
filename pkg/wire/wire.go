// Package wire provides bounds-checked byte cursors for X11 wire-format
// encoding and decoding.
//
// The X11 protocol fixes the byte order for a connection during the setup
// handshake ('B' for big-endian, 'l' for little-endian) and never
// renegotiates it per field. Both cursors therefore carry a single
// binary.ByteOrder chosen at construction time, and every multi-byte
// primitive goes through it.
//
// Key characteristics of the X11 wire format handled here:
//   - All messages are padded to a 4-byte boundary
//   - Unused/padding bytes are skipped on read and zeroed on write
//   - Reads past the end of the buffer fail without consuming bytes
//   - Writes are bounded by a fixed capacity computed up front
//
// The cursors perform no I/O. Bytes come from and go to the transport
// layer, which owns the underlying buffers.
package wire

import "errors"

// Read-side errors. These form one of the two error taxonomies of the
// codec core; every decode failure unwraps to exactly one of them.
var (
	// ErrInvalidData indicates bytes that match no valid discriminant,
	// sentinel constant, or bitmask for the field being decoded.
	ErrInvalidData = errors.New("invalid data on the wire")

	// ErrUnexpectedEndOfData indicates the buffer ended before the field
	// being decoded was complete. The cursor position is left unchanged.
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")

	// ErrUnsupportedLength indicates a declared length field outside the
	// bounds permitted for its message kind.
	ErrUnsupportedLength = errors.New("unsupported length")
)

// Write-side errors.
var (
	// ErrCapacityTooLow indicates the destination buffer is smaller than
	// the computed encoded size.
	ErrCapacityTooLow = errors.New("write capacity too low")

	// ErrMissingInfo indicates the caller omitted a value that a bitmask
	// or length field declares present.
	ErrMissingInfo = errors.New("missing information required for encoding")
)
