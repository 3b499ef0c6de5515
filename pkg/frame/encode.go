package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/x11go/xwire/pkg/bufpool"
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
)

// Encoded buffers come from bufpool; callers that are done with one
// (typically the transport after writing it out) should return it with
// bufpool.Put.

// encodeMetabyte writes the one-byte header slot at offset 1: a minor
// opcode, a schema-declared data field, or an unused zero byte.
func encodeMetabyte(w *wire.Writer, f *schema.Field, vals schema.Values, ctx *schema.Context) error {
	if f == nil {
		return w.Pad(1)
	}
	before := w.Pos()
	obj := schema.Object{Fields: []schema.Field{*f}}
	if err := obj.Encode(w, vals, ctx); err != nil {
		return err
	}
	if w.Pos() != before+1 {
		return fmt.Errorf("metabyte field %q encoded %d bytes: %w", f.Name, w.Pos()-before, wire.ErrInvalidData)
	}
	return nil
}

// EncodeRequest encodes a request frame, header and body, in the
// connection byte order.
//
// The request's total size must fit the header's 16-bit word count
// unless the caller set ExtendedLength, having negotiated the
// big-requests extension; the zero-length-plus-32-bit framing is then
// used. Callers decide using RequiresExtendedLength.
func EncodeRequest(req *Request, order binary.ByteOrder) ([]byte, error) {
	body := req.Schema.Body()
	bodySize, err := body.Size(req.Values, RequestHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("size %s: %w", req.Schema.Name, err)
	}

	total := RequestHeaderSize + bodySize
	if total%4 != 0 {
		return nil, fmt.Errorf("%s: encoded size %d is not a multiple of 4: %w",
			req.Schema.Name, total, wire.ErrInvalidData)
	}
	if RequiresExtendedLength(total) && !req.ExtendedLength {
		return nil, fmt.Errorf("%s: %d bytes overflows the 16-bit length field: %w",
			req.Schema.Name, total, wire.ErrUnsupportedLength)
	}
	if req.ExtendedLength {
		// The extra 32-bit length word counts itself.
		total += 4
	}

	buf := bufpool.Get(total)
	w := wire.NewWriter(buf, order)
	ctx := schema.NewContext()

	if err := w.PutUint8(req.Major); err != nil {
		return nil, err
	}
	if req.Extension {
		err = w.PutUint8(req.Schema.Opcode)
	} else {
		err = encodeMetabyte(w, req.Schema.Metabyte, req.Values, ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", req.Schema.Name, err)
	}

	if req.ExtendedLength {
		if err := w.PutUint16(0); err != nil {
			return nil, err
		}
		if err := w.PutUint32(uint32(total / 4)); err != nil {
			return nil, err
		}
	} else {
		if err := w.PutUint16(uint16(total / 4)); err != nil {
			return nil, err
		}
	}

	if err := body.Encode(w, req.Values, ctx); err != nil {
		return nil, fmt.Errorf("encode %s: %w", req.Schema.Name, err)
	}
	if w.Pos() != total {
		return nil, fmt.Errorf("%s: body encoded %d bytes, size model said %d: %w",
			req.Schema.Name, w.Pos(), total, wire.ErrInvalidData)
	}
	return buf, nil
}

// EncodeReply encodes a reply frame. The declared length counts 4-byte
// words beyond the fixed 32-byte minimum; short bodies are zero-padded
// up to it.
func EncodeReply(rep *Reply, order binary.ByteOrder) ([]byte, error) {
	body := rep.Schema.Body()
	bodySize, err := body.Size(rep.Values, ReplyHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("size %s: %w", rep.Schema.Name, err)
	}

	content := ReplyHeaderSize + bodySize
	if content%4 != 0 {
		return nil, fmt.Errorf("%s: encoded size %d is not a multiple of 4: %w",
			rep.Schema.Name, content, wire.ErrInvalidData)
	}
	total := content
	if total < ReplyMinSize {
		total = ReplyMinSize
	}

	buf := bufpool.Get(total)
	w := wire.NewWriter(buf, order)
	ctx := schema.NewContext()

	if err := w.PutUint8(1); err != nil {
		return nil, err
	}
	if err := encodeMetabyte(w, rep.Schema.Metabyte, rep.Values, ctx); err != nil {
		return nil, fmt.Errorf("encode %s: %w", rep.Schema.Name, err)
	}
	if err := w.PutUint16(rep.Sequence); err != nil {
		return nil, err
	}
	if err := w.PutUint32(uint32((total - ReplyMinSize) / 4)); err != nil {
		return nil, err
	}
	if err := body.Encode(w, rep.Values, ctx); err != nil {
		return nil, fmt.Errorf("encode %s: %w", rep.Schema.Name, err)
	}
	if err := w.Pad(total - w.Pos()); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeEvent encodes an event frame: always exactly 32 bytes,
// zero-padded past the body.
func EncodeEvent(ev *Event, order binary.ByteOrder) ([]byte, error) {
	buf := bufpool.Get(EventSize)
	w := wire.NewWriter(buf, order)
	ctx := schema.NewContext()

	code := ev.Code
	if code == 0 {
		code = ev.Schema.Code
	}
	if ev.SendEvent {
		code |= sendEventFlag
	}
	if err := w.PutUint8(code); err != nil {
		return nil, err
	}
	if !ev.Schema.NoSequence {
		if err := encodeMetabyte(w, ev.Schema.Metabyte, ev.Values, ctx); err != nil {
			return nil, fmt.Errorf("encode %s: %w", ev.Schema.Name, err)
		}
		if err := w.PutUint16(ev.Sequence); err != nil {
			return nil, err
		}
	}
	if err := ev.Schema.Body().Encode(w, ev.Values, ctx); err != nil {
		return nil, fmt.Errorf("encode %s: %w", ev.Schema.Name, err)
	}
	if err := w.Pad(EventSize - w.Pos()); err != nil {
		return nil, fmt.Errorf("%s: body overflows the 32-byte frame: %w", ev.Schema.Name, err)
	}
	return buf, nil
}

// EncodeError encodes an error frame: always exactly 32 bytes, with 21
// unused trailing bytes.
func EncodeError(e *Error, order binary.ByteOrder) ([]byte, error) {
	buf := bufpool.Get(ErrorSize)
	w := wire.NewWriter(buf, order)

	code := e.Code
	if code == 0 && e.Schema != nil {
		code = e.Schema.Code
	}

	if err := w.PutUint8(0); err != nil {
		return nil, err
	}
	if err := w.PutUint8(code); err != nil {
		return nil, err
	}
	if err := w.PutUint16(e.Sequence); err != nil {
		return nil, err
	}
	if err := w.PutUint32(e.Data); err != nil {
		return nil, err
	}
	if err := w.PutUint16(e.MinorOpcode); err != nil {
		return nil, err
	}
	if err := w.PutUint8(e.MajorOpcode); err != nil {
		return nil, err
	}
	if err := w.Pad(ErrorSize - w.Pos()); err != nil {
		return nil, err
	}
	return buf, nil
}
