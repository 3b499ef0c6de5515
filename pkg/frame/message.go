package frame

import "github.com/x11go/xwire/pkg/schema"

// Message is a classified, decoded frame produced by Dispatch.
type Message interface {
	// MessageKind returns the frame's kind.
	MessageKind() Kind
}

// Request is an assembled request: a schema plus the field values to
// encode. Core requests carry their schema opcode as the major opcode;
// extension requests carry the extension's runtime-assigned major with
// the schema opcode in the metabyte slot as the minor.
type Request struct {
	Schema *schema.Request
	Values schema.Values

	// Major is the wire major opcode.
	Major uint8

	// Extension marks an extension request: the metabyte carries the
	// schema's opcode as the minor opcode instead of a data field.
	Extension bool

	// ExtendedLength forces the extended-length framing regardless of
	// size. Set by callers that negotiated big-requests and know the
	// request overflows the 16-bit word count.
	ExtendedLength bool
}

// NewRequest assembles a core-protocol request.
func NewRequest(sch *schema.Request, vals schema.Values) *Request {
	return &Request{Schema: sch, Values: vals, Major: sch.Opcode}
}

func (*Request) MessageKind() Kind { return KindRequest }

// Reply is a decoded reply frame.
type Reply struct {
	Schema   *schema.Reply
	Values   schema.Values
	Sequence uint16

	// Length is the declared word count beyond the 32-byte minimum.
	Length uint32
}

func (*Reply) MessageKind() Kind { return KindReply }

// Event is a decoded event frame.
type Event struct {
	Schema   *schema.Event
	Values   schema.Values
	Code     uint8
	Sequence uint16

	// SendEvent is set when the event's code byte had the high bit
	// set: the event was synthesized by a SendEvent request rather
	// than generated by the server.
	SendEvent bool
}

func (*Event) MessageKind() Kind { return KindEvent }

// Error is a decoded error frame. Schema is nil for error codes with no
// registered schema; the frame's fixed layout decodes either way.
type Error struct {
	Schema   *schema.Error
	Code     uint8
	Sequence uint16

	// Data is bytes 4-7 of the frame. Its meaning (plain value,
	// resource id, atom id, or nothing) comes from the schema.
	Data uint32

	MinorOpcode uint16
	MajorOpcode uint8
}

func (*Error) MessageKind() Kind { return KindError }

// Recognized reports whether the error code had a registered schema.
func (e *Error) Recognized() bool { return e.Schema != nil }

// UnknownReply is the non-fatal outcome for a reply whose sequence
// number matches no pending request. The full declared frame is consumed
// so the stream stays aligned.
type UnknownReply struct {
	Sequence uint16
	Length   uint32

	// Raw is a copy of the complete frame.
	Raw []byte
}

func (*UnknownReply) MessageKind() Kind { return KindReply }

// UnknownEvent is the non-fatal outcome for an event code with no
// registered schema (future or unqueried extensions). The fixed 32-byte
// frame is consumed so the stream stays aligned.
type UnknownEvent struct {
	Code      uint8
	Sequence  uint16
	SendEvent bool

	// Raw is a copy of the 32-byte frame.
	Raw []byte
}

func (*UnknownEvent) MessageKind() Kind { return KindEvent }
