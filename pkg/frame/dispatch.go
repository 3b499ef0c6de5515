package frame

import (
	"encoding/binary"

	"github.com/x11go/xwire/internal/logger"
	"github.com/x11go/xwire/pkg/metrics"
	"github.com/x11go/xwire/pkg/schema"
)

// Dispatcher classifies and decodes the server-to-client byte stream of
// one connection: replies, events, and errors, in arrival order.
//
// Decoding is inherently sequential per connection, because correlating
// a reply to its request requires knowing, in order, which requests are
// outstanding. A Dispatcher holds no mutable state of its own and is
// safe to share as long as each buffer is dispatched by one goroutine
// at a time.
type Dispatcher struct {
	// Order is the connection's negotiated byte order.
	Order binary.ByteOrder

	// Schemas resolves event and error codes. Typically a
	// *registry.Registry. May be nil, in which case every event is an
	// UnknownEvent and every error decodes without a schema.
	Schemas Schemas

	// Pending is the connection layer's sequence-to-reply-schema
	// table. May be nil, in which case every reply is an
	// UnknownReply.
	Pending PendingRequests

	// Metrics records decode outcomes. Nil disables recording.
	Metrics *metrics.CodecMetrics
}

// Dispatch classifies the frame at the start of buf by its first byte
// and decodes it.
//
// On success the returned count is the number of bytes consumed; the
// caller advances its buffer by that amount and calls again. The
// returned message is never nil on a nil error.
//
// ErrTruncated means fewer bytes are buffered than the frame declares:
// buffer more and retry with the same prefix; nothing was consumed.
//
// A well-framed message with a malformed payload returns the decode
// error together with the frame's declared size, which is known from
// the header alone. Advancing by that count skips the bad frame and
// keeps the stream aligned.
//
// A frame with no registered schema is not an error: it is returned as
// *UnknownReply or *UnknownEvent with the full frame consumed, because
// every server-to-client kind has a self-describing total length and
// the stream stays aligned without understanding the payload.
func (d *Dispatcher) Dispatch(buf []byte) (Message, int, error) {
	if len(buf) == 0 {
		d.Metrics.ObserveTruncated()
		return nil, 0, ErrTruncated
	}

	switch buf[0] {
	case 0:
		return d.dispatchError(buf)
	case 1:
		return d.dispatchReply(buf)
	default:
		return d.dispatchEvent(buf)
	}
}

func (d *Dispatcher) dispatchError(buf []byte) (Message, int, error) {
	if len(buf) < ErrorSize {
		d.Metrics.ObserveTruncated()
		return nil, 0, ErrTruncated
	}
	errSchema, ok := d.errorSchema(buf[1])
	e, n, err := DecodeError(buf, errSchema, d.Order)
	if err != nil {
		d.Metrics.ObserveDecodeError(KindError.String())
		return nil, ErrorSize, err
	}
	if !ok {
		d.Metrics.ObserveUnrecognized(KindError.String())
		logger.Debug("Unrecognized error code",
			logger.KeyErrorCode, e.Code,
			logger.KeySequence, e.Sequence)
	}
	d.Metrics.ObserveDecoded(KindError.String(), n)
	return e, n, nil
}

func (d *Dispatcher) dispatchReply(buf []byte) (Message, int, error) {
	if len(buf) < ReplyMinSize {
		d.Metrics.ObserveTruncated()
		return nil, 0, ErrTruncated
	}
	sequence := d.Order.Uint16(buf[2:4])
	length := d.Order.Uint32(buf[4:8])
	if int64(len(buf)) < ReplyMinSize+int64(length)*4 {
		d.Metrics.ObserveTruncated()
		return nil, 0, ErrTruncated
	}
	total := ReplyMinSize + int(length)*4

	replySchema, ok := d.replySchema(sequence)
	if !ok {
		// No pending request claims this sequence number. Consume
		// the declared frame so the stream stays aligned.
		raw := make([]byte, total)
		copy(raw, buf[:total])
		d.Metrics.ObserveUnrecognized(KindReply.String())
		logger.Debug("Reply matches no pending request",
			logger.KeySequence, sequence,
			logger.KeyLength, length)
		return &UnknownReply{Sequence: sequence, Length: length, Raw: raw}, total, nil
	}

	rep, n, err := DecodeReply(buf, replySchema, d.Order)
	if err != nil {
		d.Metrics.ObserveDecodeError(KindReply.String())
		return nil, total, err
	}
	d.Metrics.ObserveDecoded(KindReply.String(), n)
	return rep, n, nil
}

func (d *Dispatcher) dispatchEvent(buf []byte) (Message, int, error) {
	if len(buf) < EventSize {
		d.Metrics.ObserveTruncated()
		return nil, 0, ErrTruncated
	}
	code := buf[0] & eventCodeMask
	sendEvent := buf[0]&sendEventFlag != 0

	eventSchema, ok := d.eventSchema(code)
	if !ok {
		raw := make([]byte, EventSize)
		copy(raw, buf[:EventSize])
		ue := &UnknownEvent{
			Code:      code,
			Sequence:  d.Order.Uint16(buf[2:4]),
			SendEvent: sendEvent,
			Raw:       raw,
		}
		d.Metrics.ObserveUnrecognized(KindEvent.String())
		logger.Debug("Unrecognized event code",
			logger.KeyEventCode, code,
			logger.KeySequence, ue.Sequence)
		return ue, EventSize, nil
	}

	ev, n, err := DecodeEvent(buf, eventSchema, d.Order)
	if err != nil {
		d.Metrics.ObserveDecodeError(KindEvent.String())
		return nil, EventSize, err
	}
	d.Metrics.ObserveDecoded(KindEvent.String(), n)
	return ev, n, nil
}

func (d *Dispatcher) errorSchema(code uint8) (*schema.Error, bool) {
	if d.Schemas == nil {
		return nil, false
	}
	return d.Schemas.ErrorSchema(code)
}

func (d *Dispatcher) eventSchema(code uint8) (*schema.Event, bool) {
	if d.Schemas == nil {
		return nil, false
	}
	return d.Schemas.EventSchema(code)
}

func (d *Dispatcher) replySchema(sequence uint16) (*schema.Reply, bool) {
	if d.Pending == nil {
		return nil, false
	}
	return d.Pending.ReplySchema(sequence)
}
