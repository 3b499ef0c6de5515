package schema

// Message-kind schemas. Each is a static declaration: header facts
// (opcode, event code, error code) plus the ordered field list of the
// body. The framer in pkg/frame interprets these; nothing here touches
// bytes directly.

// Request describes one request's wire schema.
//
// The request header is [opcode:1][metabyte:1][length:2]. The metabyte
// slot holds either a one-byte data field (Metabyte != nil), a minor
// opcode (extension requests, resolved by the registry), or is unused.
type Request struct {
	// Name is the protocol name, e.g. "CreateWindow".
	Name string

	// Opcode is the major opcode for core requests, or the minor
	// opcode for extension requests (the extension's registry entry
	// supplies the runtime-assigned major).
	Opcode uint8

	// Metabyte, if non-nil, is the one-byte field stored at header
	// offset 1. Its Type must encode exactly one byte.
	Metabyte *Field

	// Fields is the body that follows the 4-byte header.
	Fields []Field

	// Reply is non-nil for round-trip requests.
	Reply *Reply
}

// Body returns the request body as an engine object.
func (r *Request) Body() Object {
	return Object{Fields: r.Fields}
}

// Reply describes one reply's wire schema.
//
// The reply header is [1:1][metabyte:1][sequence:2][length:4]; Fields
// covers everything after those 8 bytes. Replies are always at least 32
// bytes on the wire; a body shorter than 24 bytes is zero-padded.
type Reply struct {
	// Name is the protocol name, e.g. "InternAtomReply".
	Name string

	// Metabyte, if non-nil, is the one-byte data field at header
	// offset 1.
	Metabyte *Field

	// Fields is the body following the 8-byte header.
	Fields []Field
}

// Body returns the reply body as an engine object.
func (r *Reply) Body() Object {
	return Object{Fields: r.Fields}
}

// Event describes one event's wire schema. Events are always exactly 32
// bytes: [code:1][metabyte:1][sequence:2][body, zero-padded].
type Event struct {
	// Name is the protocol name, e.g. "Expose".
	Name string

	// Code is the event code (core events 2..34; extension events are
	// offset by the extension's first-event code).
	Code uint8

	// NoSequence marks the one irregular core event (KeymapNotify)
	// whose frame carries neither a metabyte nor a sequence number:
	// the body begins immediately after the code byte.
	NoSequence bool

	// Metabyte, if non-nil, is the detail field at offset 1. Must be
	// nil for NoSequence events.
	Metabyte *Field

	// Fields is the body following the sequence number (offset 4), or
	// following the code byte (offset 1) for NoSequence events.
	Fields []Field
}

// Body returns the event body as an engine object.
func (e *Event) Body() Object {
	return Object{Fields: e.Fields}
}

// ErrorDataKind gives the meaning of bytes 4-7 of an error frame.
type ErrorDataKind int

const (
	// ErrorDataNone: the data field carries nothing.
	ErrorDataNone ErrorDataKind = iota

	// ErrorDataValue: the offending numeric value (Value errors).
	ErrorDataValue

	// ErrorDataResourceID: the offending resource id (Window, Pixmap,
	// Drawable, ... errors).
	ErrorDataResourceID

	// ErrorDataAtom: the offending atom id (Atom errors).
	ErrorDataAtom
)

// Error describes one error kind. Error frames are fully regular
// (always exactly 32 bytes with fixed field offsets), so the schema
// carries only the code, the name, and how to interpret the data field.
type Error struct {
	// Name is the protocol name, e.g. "Atom".
	Name string

	// Code is the error code (core errors 1..17).
	Code uint8

	// Data is the interpretation of bytes 4-7.
	Data ErrorDataKind
}
