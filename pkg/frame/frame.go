// Package frame assembles and parses the four X11 message-kind frames:
// requests, replies, events, and errors.
//
// Framing is non-uniform per kind:
//
//	Request: [major:1][metabyte-or-minor:1][length:2][body]
//	         length counts 4-byte words including the header
//	Reply:   [1:1][metabyte:1][sequence:2][length:4][body]
//	         at least 32 bytes; length counts words beyond the 32-byte
//	         minimum
//	Event:   [code:1][metabyte:1][sequence:2][up to 28 body bytes]
//	         always exactly 32 bytes, zero-padded
//	Error:   [0:1][code:1][sequence:2][data:4][minor:2][major:1][21 unused]
//	         always exactly 32 bytes
//
// Byte 0 of an unclassified frame dispatches the kind: 0 is an error, 1
// is a reply (correlated to its request through the sequence number and
// an externally owned pending-request table), anything else is an event
// code (with the high bit flagging events synthesized by SendEvent).
//
// The framer performs no I/O and no retries. Too few buffered bytes is
// signaled as ErrTruncated so the caller can buffer more and re-invoke;
// it is backpressure, not a parse failure.
package frame

import (
	"errors"

	"github.com/x11go/xwire/pkg/schema"
)

// Frame size facts, in bytes.
const (
	// RequestHeaderSize is the fixed request header size.
	RequestHeaderSize = 4

	// ReplyHeaderSize is the fixed reply header prefix covered by the
	// Reply schema's header fields.
	ReplyHeaderSize = 8

	// ReplyMinSize is the minimum wire size of a reply.
	ReplyMinSize = 32

	// EventSize is the exact wire size of every event.
	EventSize = 32

	// ErrorSize is the exact wire size of every error.
	ErrorSize = 32
)

const (
	// maxCoreRequestWords is the largest word count a 16-bit request
	// length field can carry.
	maxCoreRequestWords = 0xFFFF

	// sendEventFlag is the high bit of an event code, set on events
	// synthesized by a SendEvent request.
	sendEventFlag = 0x80

	// eventCodeMask extracts the event code proper.
	eventCodeMask = 0x7F
)

// ErrTruncated reports that fewer bytes are buffered than the message
// declares. It is a backpressure outcome, not a parse error: the caller
// must buffer more bytes and re-invoke the decode with the same prefix.
var ErrTruncated = errors.New("truncated message, more bytes required")

// Kind is the message kind of a classified frame.
type Kind uint8

const (
	KindRequest Kind = iota
	KindReply
	KindEvent
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindReply:
		return "reply"
	case KindEvent:
		return "event"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// RequiresExtendedLength reports whether a request of total encoded size
// n bytes overflows the header's 16-bit word count and therefore needs
// the extended-length framing (negotiated via the big-requests
// extension, which inserts a 32-bit length after a zero 16-bit one).
func RequiresExtendedLength(n int) bool {
	return n/4 > maxCoreRequestWords
}

// PendingRequests is the connection layer's table correlating sequence
// numbers to the reply schema of the request that produced them. The
// framer only reads it; ownership and mutation stay with the connection
// layer.
type PendingRequests interface {
	// ReplySchema returns the reply schema for the request with the
	// given sequence number.
	ReplySchema(sequence uint16) (*schema.Reply, bool)
}

// Schemas resolves event and error codes to their schemas. Implemented
// by the registry; passed as an interface so the framer stays ignorant
// of how extension code ranges are assigned.
type Schemas interface {
	// EventSchema resolves an event code (send-event flag already
	// stripped).
	EventSchema(code uint8) (*schema.Event, bool)

	// ErrorSchema resolves an error code.
	ErrorSchema(code uint8) (*schema.Error, bool)
}
