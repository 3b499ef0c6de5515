package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Protocol & Message
	// ========================================================================
	KeyKind      = "kind"       // Message kind: request, reply, event, error
	KeyMessage   = "message"    // Protocol message name: CreateWindow, Expose, etc.
	KeyOpcode    = "opcode"     // Major opcode
	KeyMinor     = "minor"      // Minor opcode (extension requests)
	KeySequence  = "sequence"   // Request sequence number (low 16 bits)
	KeyEventCode = "event_code" // Event code, send-event flag stripped
	KeyErrorCode = "error_code" // Protocol error code
	KeySendEvent = "send_event" // Event was synthesized by SendEvent

	// ========================================================================
	// Framing & Sizes
	// ========================================================================
	KeyLength    = "length"    // Declared length field, in 4-byte words
	KeyBytes     = "bytes"     // Byte count of a frame or payload
	KeyBuffered  = "buffered"  // Bytes currently buffered
	KeyByteOrder = "byteorder" // Connection byte order: little, big

	// ========================================================================
	// Resources & Values
	// ========================================================================
	KeyWindow = "window" // Window resource id
	KeyAtom   = "atom"   // Atom id
	KeyMask   = "mask"   // Bitmask value (formatted as hex)
	KeyField  = "field"  // Schema field name
	KeyRaw    = "raw"    // Raw frame bytes, hex-dumped and truncated

	// ========================================================================
	// Extensions
	// ========================================================================
	KeyExtension  = "extension"   // Extension name
	KeyFirstEvent = "first_event" // Extension's first event code
	KeyFirstError = "first_error" // Extension's first error code

	// ========================================================================
	// Connection
	// ========================================================================
	KeyConnectionID = "connection_id" // Connection identifier
	KeyDisplay      = "display"       // Display string, e.g. :0

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyCount      = "count"       // Generic item count
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// Kind returns a slog.Attr for the message kind
func Kind(kind string) slog.Attr {
	return slog.String(KeyKind, kind)
}

// Message returns a slog.Attr for a protocol message name
func Message(name string) slog.Attr {
	return slog.String(KeyMessage, name)
}

// Opcode returns a slog.Attr for a major opcode
func Opcode(op uint8) slog.Attr {
	return slog.Any(KeyOpcode, op)
}

// Minor returns a slog.Attr for an extension minor opcode
func Minor(op uint8) slog.Attr {
	return slog.Any(KeyMinor, op)
}

// Sequence returns a slog.Attr for a request sequence number
func Sequence(seq uint16) slog.Attr {
	return slog.Any(KeySequence, seq)
}

// EventCode returns a slog.Attr for an event code
func EventCode(code uint8) slog.Attr {
	return slog.Any(KeyEventCode, code)
}

// ErrorCode returns a slog.Attr for a protocol error code
func ErrorCode(code uint8) slog.Attr {
	return slog.Any(KeyErrorCode, code)
}

// SendEvent returns a slog.Attr for the send-event flag
func SendEvent(synthetic bool) slog.Attr {
	return slog.Bool(KeySendEvent, synthetic)
}

// Length returns a slog.Attr for a declared length in 4-byte words
func Length(words uint32) slog.Attr {
	return slog.Any(KeyLength, words)
}

// Bytes returns a slog.Attr for a frame or payload byte count
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

// Buffered returns a slog.Attr for the bytes currently buffered
func Buffered(n int) slog.Attr {
	return slog.Int(KeyBuffered, n)
}

// ByteOrder returns a slog.Attr for the connection byte order
func ByteOrder(order string) slog.Attr {
	return slog.String(KeyByteOrder, order)
}

// Window returns a slog.Attr for a window resource id (formatted as hex)
func Window(id uint32) slog.Attr {
	return slog.String(KeyWindow, fmt.Sprintf("0x%08x", id))
}

// Atom returns a slog.Attr for an atom id
func Atom(id uint32) slog.Attr {
	return slog.Any(KeyAtom, id)
}

// Mask returns a slog.Attr for a bitmask (formatted as hex)
func Mask(mask uint32) slog.Attr {
	return slog.String(KeyMask, fmt.Sprintf("0x%08x", mask))
}

// Field returns a slog.Attr for a schema field name
func Field(name string) slog.Attr {
	return slog.String(KeyField, name)
}

// Raw returns a slog.Attr carrying raw frame bytes. The text handler
// hex-dumps the value and truncates long frames.
func Raw(data []byte) slog.Attr {
	return slog.Any(KeyRaw, data)
}

// Extension returns a slog.Attr for an extension name
func Extension(name string) slog.Attr {
	return slog.String(KeyExtension, name)
}

// FirstEvent returns a slog.Attr for an extension's first event code
func FirstEvent(code uint8) slog.Attr {
	return slog.Any(KeyFirstEvent, code)
}

// FirstError returns a slog.Attr for an extension's first error code
func FirstError(code uint8) slog.Attr {
	return slog.Any(KeyFirstError, code)
}

// ConnectionID returns a slog.Attr for a connection identifier
func ConnectionID(id string) slog.Attr {
	return slog.String(KeyConnectionID, id)
}

// Display returns a slog.Attr for a display string
func Display(d string) slog.Attr {
	return slog.String(KeyDisplay, d)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Count returns a slog.Attr for a generic item count
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
