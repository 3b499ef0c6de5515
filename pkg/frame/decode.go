package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
)

// decodeMetabyte reads the one-byte header slot at offset 1 into vals
// when the schema declares a field there, and skips it otherwise.
func decodeMetabyte(r *wire.Reader, f *schema.Field, vals schema.Values, ctx *schema.Context) error {
	if f == nil {
		return r.Advance(1)
	}
	before := r.Pos()
	obj := schema.Object{Fields: []schema.Field{*f}}
	got, err := obj.Decode(r, ctx)
	if err != nil {
		return err
	}
	if r.Pos() != before+1 {
		return fmt.Errorf("metabyte field %q consumed %d bytes: %w", f.Name, r.Pos()-before, wire.ErrInvalidData)
	}
	for k, v := range got {
		vals[k] = v
	}
	return nil
}

// DecodeRequest parses a request frame against its schema. Used by
// tests and by server-side consumers; the schema is resolved first (by
// major and, for extensions, minor opcode) by the caller.
//
// Returns the number of bytes consumed, which always equals the frame's
// declared length on success.
func DecodeRequest(buf []byte, sch *schema.Request, order binary.ByteOrder) (*Request, int, error) {
	if len(buf) < RequestHeaderSize {
		return nil, 0, ErrTruncated
	}
	words := int(order.Uint16(buf[2:4]))
	headerSize := RequestHeaderSize
	if words == 0 {
		// Extended-length framing: a 32-bit length follows.
		if len(buf) < RequestHeaderSize+4 {
			return nil, 0, ErrTruncated
		}
		words = int(order.Uint32(buf[4:8]))
		headerSize += 4
	}
	total := words * 4
	if total < headerSize {
		return nil, 0, fmt.Errorf("request length %d words: %w", words, wire.ErrUnsupportedLength)
	}
	if len(buf) < total {
		return nil, 0, ErrTruncated
	}

	req := &Request{
		Schema:         sch,
		Values:         make(schema.Values),
		Major:          buf[0],
		Extension:      sch.Opcode != buf[0],
		ExtendedLength: headerSize > RequestHeaderSize,
	}

	r := wire.NewReader(buf[:total], order)
	ctx := schema.NewContext()
	_ = r.Advance(1) // major opcode
	var err error
	if req.Extension {
		err = r.Advance(1) // minor opcode, implied by the schema
	} else {
		err = decodeMetabyte(r, sch.Metabyte, req.Values, ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
	}
	if err := r.Advance(headerSize - 2); err != nil { // length field(s)
		return nil, 0, err
	}

	vals, err := sch.Body().Decode(r, ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
	}
	for k, v := range vals {
		req.Values[k] = v
	}
	// Alignment padding past the last field.
	if err := r.Advance(r.Remaining()); err != nil {
		return nil, 0, err
	}
	return req, total, nil
}

// DecodeReply parses a reply frame against the schema of its
// originating request, found by the connection layer in its pending
// table. Returns ErrTruncated until the declared total is buffered.
func DecodeReply(buf []byte, sch *schema.Reply, order binary.ByteOrder) (*Reply, int, error) {
	if len(buf) < ReplyMinSize {
		return nil, 0, ErrTruncated
	}
	if buf[0] != 1 {
		return nil, 0, fmt.Errorf("reply type byte %d: %w", buf[0], wire.ErrInvalidData)
	}
	length := order.Uint32(buf[4:8])
	// 64-bit arithmetic: the declared total of a near-maximal length
	// field overflows int on 32-bit platforms.
	if int64(len(buf)) < ReplyMinSize+int64(length)*4 {
		return nil, 0, ErrTruncated
	}
	total := ReplyMinSize + int(length)*4

	rep := &Reply{
		Schema:   sch,
		Values:   make(schema.Values),
		Sequence: order.Uint16(buf[2:4]),
		Length:   length,
	}

	r := wire.NewReader(buf[:total], order)
	ctx := schema.NewContext()
	_ = r.Advance(1)
	if err := decodeMetabyte(r, sch.Metabyte, rep.Values, ctx); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
	}
	_ = r.Advance(2) // sequence, parsed above
	_ = r.Advance(4) // length, parsed above

	vals, err := sch.Body().Decode(r, ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
	}
	for k, v := range vals {
		rep.Values[k] = v
	}
	// Bodies shorter than the 32-byte minimum are zero-padded on the
	// wire; skip whatever is left of the frame.
	if err := r.Advance(r.Remaining()); err != nil {
		return nil, 0, err
	}
	return rep, total, nil
}

// DecodeEvent parses one 32-byte event frame against its schema. The
// caller resolves the schema from the code byte (stripping the
// send-event flag and any extension base offset).
func DecodeEvent(buf []byte, sch *schema.Event, order binary.ByteOrder) (*Event, int, error) {
	if len(buf) < EventSize {
		return nil, 0, ErrTruncated
	}

	ev := &Event{
		Schema:    sch,
		Values:    make(schema.Values),
		Code:      buf[0] & eventCodeMask,
		SendEvent: buf[0]&sendEventFlag != 0,
	}

	r := wire.NewReader(buf[:EventSize], order)
	ctx := schema.NewContext()
	_ = r.Advance(1)
	if !sch.NoSequence {
		if err := decodeMetabyte(r, sch.Metabyte, ev.Values, ctx); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
		}
		seq, err := r.Uint16()
		if err != nil {
			return nil, 0, err
		}
		ev.Sequence = seq
	}

	vals, err := sch.Body().Decode(r, ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", sch.Name, err)
	}
	for k, v := range vals {
		ev.Values[k] = v
	}
	if err := r.Advance(r.Remaining()); err != nil {
		return nil, 0, err
	}
	return ev, EventSize, nil
}

// DecodeError parses one 32-byte error frame. The layout is fully
// regular, so a nil schema still decodes; the schema only names the
// error and gives the data field's meaning.
func DecodeError(buf []byte, sch *schema.Error, order binary.ByteOrder) (*Error, int, error) {
	if len(buf) < ErrorSize {
		return nil, 0, ErrTruncated
	}
	if buf[0] != 0 {
		return nil, 0, fmt.Errorf("error type byte %d: %w", buf[0], wire.ErrInvalidData)
	}

	e := &Error{
		Schema:      sch,
		Code:        buf[1],
		Sequence:    order.Uint16(buf[2:4]),
		Data:        order.Uint32(buf[4:8]),
		MinorOpcode: order.Uint16(buf[8:10]),
		MajorOpcode: buf[10],
	}
	return e, ErrorSize, nil
}
