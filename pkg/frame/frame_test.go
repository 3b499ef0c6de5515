package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x11go/xwire/pkg/codec"
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
)

var le = binary.LittleEndian

// Test schemas kept local so the tests exercise the framer, not the
// protocol catalogue.

func bellSchema() *schema.Request {
	return &schema.Request{
		Name:     "Bell",
		Opcode:   104,
		Metabyte: &schema.Field{Name: "percent", Type: schema.Card8{}},
	}
}

func attributesSchema() *schema.Request {
	return &schema.Request{
		Name:   "ChangeWindowAttributes",
		Opcode: 2,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "value_mask", Type: schema.Card32{}, MaskOf: "values"},
			{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
		},
	}
}

func atomReplySchema() *schema.Reply {
	return &schema.Reply{
		Name: "InternAtomReply",
		Fields: []schema.Field{
			{Name: "atom", Type: schema.Card32{}},
		},
	}
}

func exposeSchema() *schema.Event {
	return &schema.Event{
		Name: "Expose",
		Code: 12,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "x", Type: schema.Card16{}},
			{Name: "y", Type: schema.Card16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "count", Type: schema.Card16{}},
		},
	}
}

func keymapSchema() *schema.Event {
	return &schema.Event{
		Name:       "KeymapNotify",
		Code:       11,
		NoSequence: true,
		Fields: []schema.Field{
			{Name: "keys", Type: schema.FixedBytes{N: 31}},
		},
	}
}

func atomErrorSchema() *schema.Error {
	return &schema.Error{Name: "Atom", Code: 5, Data: schema.ErrorDataAtom}
}

// TestEncodeRequest_HeaderLayout verifies the 4-byte request header:
// major opcode, metabyte data field, and a length counted in 4-byte
// words including the header itself.
func TestEncodeRequest_HeaderLayout(t *testing.T) {
	req := NewRequest(bellSchema(), schema.Values{"percent": uint8(50)})

	buf, err := EncodeRequest(req, le)
	require.NoError(t, err)

	require.Len(t, buf, 4)
	assert.Equal(t, uint8(104), buf[0])
	assert.Equal(t, uint8(50), buf[1])
	assert.Equal(t, uint16(1), le.Uint16(buf[2:4]))
}

// TestEncodeRequest_ValueList encodes a request whose trailing value
// list is governed by a derived bitmask, and verifies both the derived
// mask and the ascending-bit-order layout of the list.
func TestEncodeRequest_ValueList(t *testing.T) {
	values := codec.NewValueList().
		Set(0x800, 0x00FF00FF). // event mask bit, inserted out of order
		Set(0x002, 0x00008000)  // background pixel bit
	req := NewRequest(attributesSchema(), schema.Values{
		"window": uint32(0x00400001),
		"values": values,
	})

	buf, err := EncodeRequest(req, le)
	require.NoError(t, err)

	require.Len(t, buf, 20)
	assert.Equal(t, uint16(5), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(0x00400001), le.Uint32(buf[4:8]))
	assert.Equal(t, uint32(0x802), le.Uint32(buf[8:12]))
	// Bit 0x2 is lower than bit 0x800, so its value comes first
	// regardless of insertion order.
	assert.Equal(t, uint32(0x00008000), le.Uint32(buf[12:16]))
	assert.Equal(t, uint32(0x00FF00FF), le.Uint32(buf[16:20]))
}

// TestRequest_RoundTrip decodes an encoded request back into the same
// field values.
func TestRequest_RoundTrip(t *testing.T) {
	sch := attributesSchema()
	values := codec.NewValueList().
		Set(0x002, 0x00008000).
		Set(0x800, 0x00FF00FF)
	req := NewRequest(sch, schema.Values{
		"window": uint32(0x00400001),
		"values": values,
	})

	buf, err := EncodeRequest(req, le)
	require.NoError(t, err)

	got, n, err := DecodeRequest(buf, sch, le)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.False(t, got.Extension)

	window, ok := got.Values.Uint32("window")
	require.True(t, ok)
	assert.Equal(t, uint32(0x00400001), window)

	list, ok := got.Values["values"].(*codec.ValueList)
	require.True(t, ok)
	assert.Equal(t, uint32(0x802), list.Mask())
	pixel, ok := list.Get(0x002)
	require.True(t, ok)
	assert.Equal(t, uint32(0x00008000), pixel)
}

// TestDecodeRequest_Truncated feeds every strict prefix of a request
// and expects backpressure, never a parse result.
func TestDecodeRequest_Truncated(t *testing.T) {
	sch := attributesSchema()
	req := NewRequest(sch, schema.Values{
		"window": uint32(1),
		"values": codec.NewValueList().Set(0x1, 7),
	})
	buf, err := EncodeRequest(req, le)
	require.NoError(t, err)

	for i := 0; i < len(buf); i++ {
		_, _, err := DecodeRequest(buf[:i], sch, le)
		assert.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", i)
	}
}

// TestEncodeRequest_UnalignedBody rejects a schema whose body does not
// pad out to a 4-byte boundary.
func TestEncodeRequest_UnalignedBody(t *testing.T) {
	sch := &schema.Request{
		Name:   "Broken",
		Opcode: 200,
		Fields: []schema.Field{
			{Name: "b", Type: schema.Card8{}},
		},
	}
	_, err := EncodeRequest(NewRequest(sch, schema.Values{"b": uint8(1)}), le)
	assert.ErrorIs(t, err, wire.ErrInvalidData)
}

// TestEncodeRequest_ExtendedLength exercises the big-requests framing:
// a request too large for the 16-bit word count fails by default, and
// encodes with a zero 16-bit length plus a 32-bit one when the caller
// has negotiated the extension.
func TestEncodeRequest_ExtendedLength(t *testing.T) {
	const blobSize = (maxCoreRequestWords + 1) * 4
	sch := &schema.Request{
		Name:   "BigBlob",
		Opcode: 201,
		Fields: []schema.Field{
			{Name: "blob", Type: schema.FixedBytes{N: blobSize}},
		},
	}
	vals := schema.Values{"blob": make([]byte, blobSize)}

	_, err := EncodeRequest(NewRequest(sch, vals), le)
	assert.ErrorIs(t, err, wire.ErrUnsupportedLength)

	req := NewRequest(sch, vals)
	req.ExtendedLength = true
	buf, err := EncodeRequest(req, le)
	require.NoError(t, err)

	require.Len(t, buf, RequestHeaderSize+4+blobSize)
	assert.Equal(t, uint16(0), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(len(buf)/4), le.Uint32(buf[4:8]))

	got, n, err := DecodeRequest(buf, sch, le)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.True(t, got.ExtendedLength)
}

// TestEncodeReply_MinimumSize verifies that a reply with a tiny body is
// padded to the 32-byte floor and declares zero extra words.
func TestEncodeReply_MinimumSize(t *testing.T) {
	rep := &Reply{
		Schema:   atomReplySchema(),
		Values:   schema.Values{"atom": uint32(68)},
		Sequence: 42,
	}

	buf, err := EncodeReply(rep, le)
	require.NoError(t, err)

	require.Len(t, buf, ReplyMinSize)
	assert.Equal(t, uint8(1), buf[0])
	assert.Equal(t, uint16(42), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(0), le.Uint32(buf[4:8]))
	assert.Equal(t, uint32(68), le.Uint32(buf[8:12]))
	for i := 12; i < ReplyMinSize; i++ {
		assert.Zero(t, buf[i], "padding byte %d", i)
	}
}

// TestEncodeReply_LongBody verifies the length field counts words
// beyond the 32-byte minimum and that ragged tails pad to a word
// boundary.
func TestEncodeReply_LongBody(t *testing.T) {
	sch := &schema.Reply{
		Name: "GetAtomNameReply",
		Fields: []schema.Field{
			{Name: "name_len", Type: schema.Card16{}, LengthOf: "name"},
			{Type: schema.Pad{N: 22}},
			{Name: "name", Type: schema.String8{LenFrom: "name_len"}},
			{Type: schema.AlignPad{}},
		},
	}
	rep := &Reply{
		Schema:   sch,
		Values:   schema.Values{"name": "WM_DELETE_WINDOW"},
		Sequence: 7,
	}

	buf, err := EncodeReply(rep, le)
	require.NoError(t, err)

	// 8 header + 2 + 22 + 16 name = 48 bytes, 4 words past 32.
	require.Len(t, buf, 48)
	assert.Equal(t, uint32(4), le.Uint32(buf[4:8]))

	got, n, err := DecodeReply(buf, sch, le)
	require.NoError(t, err)
	assert.Equal(t, 48, n)
	name, ok := got.Values.String("name")
	require.True(t, ok)
	assert.Equal(t, "WM_DELETE_WINDOW", name)
	assert.Equal(t, uint16(7), got.Sequence)
}

// TestDecodeReply_Truncated requires the full declared frame before a
// reply parses, even when 32 bytes are already buffered.
func TestDecodeReply_Truncated(t *testing.T) {
	sch := atomReplySchema()

	buf := make([]byte, ReplyMinSize)
	buf[0] = 1
	le.PutUint32(buf[4:8], 2) // declares 8 more bytes than buffered

	_, _, err := DecodeReply(buf, sch, le)
	assert.ErrorIs(t, err, ErrTruncated)
}

// TestEncodeEvent_FixedFrame verifies that every event occupies exactly
// 32 bytes and that the send-event flag rides the code byte's high bit.
func TestEncodeEvent_FixedFrame(t *testing.T) {
	ev := &Event{
		Schema: exposeSchema(),
		Values: schema.Values{
			"window": uint32(0x00400001),
			"x":      uint16(10),
			"y":      uint16(20),
			"width":  uint16(640),
			"height": uint16(480),
			"count":  uint16(0),
		},
		Sequence:  9,
		SendEvent: true,
	}

	buf, err := EncodeEvent(ev, le)
	require.NoError(t, err)

	require.Len(t, buf, EventSize)
	assert.Equal(t, uint8(12|0x80), buf[0])
	assert.Equal(t, uint16(9), le.Uint16(buf[2:4]))

	got, n, err := DecodeEvent(buf, exposeSchema(), le)
	require.NoError(t, err)
	assert.Equal(t, EventSize, n)
	assert.True(t, got.SendEvent)
	assert.Equal(t, uint8(12), got.Code)
	width, ok := got.Values.Uint32("width")
	require.True(t, ok)
	assert.Equal(t, uint32(640), width)
}

// TestEvent_NoSequence exercises the one irregular event frame, whose
// body starts immediately after the code byte with no sequence number.
func TestEvent_NoSequence(t *testing.T) {
	keys := make([]byte, 31)
	keys[0] = 0xAA
	keys[30] = 0x55
	ev := &Event{
		Schema: keymapSchema(),
		Values: schema.Values{"keys": keys},
	}

	buf, err := EncodeEvent(ev, le)
	require.NoError(t, err)

	require.Len(t, buf, EventSize)
	assert.Equal(t, uint8(11), buf[0])
	assert.Equal(t, uint8(0xAA), buf[1])
	assert.Equal(t, uint8(0x55), buf[31])

	got, _, err := DecodeEvent(buf, keymapSchema(), le)
	require.NoError(t, err)
	gotKeys, ok := got.Values.Bytes("keys")
	require.True(t, ok)
	assert.Equal(t, keys, gotKeys)
	assert.Zero(t, got.Sequence)
}

// TestError_RoundTrip encodes and reparses an error frame, checking the
// fixed layout: code, sequence, offending data, and originating opcodes.
func TestError_RoundTrip(t *testing.T) {
	e := &Error{
		Schema:      atomErrorSchema(),
		Sequence:    7,
		Data:        0x00000180, // the atom that did not exist
		MinorOpcode: 0,
		MajorOpcode: 17,
	}

	buf, err := EncodeError(e, le)
	require.NoError(t, err)

	require.Len(t, buf, ErrorSize)
	assert.Equal(t, uint8(0), buf[0])
	assert.Equal(t, uint8(5), buf[1])
	assert.Equal(t, uint16(7), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(0x00000180), le.Uint32(buf[4:8]))

	got, n, err := DecodeError(buf, atomErrorSchema(), le)
	require.NoError(t, err)
	assert.Equal(t, ErrorSize, n)
	assert.Equal(t, uint8(5), got.Code)
	assert.Equal(t, uint16(7), got.Sequence)
	assert.Equal(t, uint32(0x00000180), got.Data)
	assert.Equal(t, uint8(17), got.MajorOpcode)
	assert.True(t, got.Recognized())
}

// TestRequiresExtendedLength pins the 16-bit word-count boundary.
func TestRequiresExtendedLength(t *testing.T) {
	assert.False(t, RequiresExtendedLength(4))
	assert.False(t, RequiresExtendedLength(maxCoreRequestWords*4))
	assert.True(t, RequiresExtendedLength((maxCoreRequestWords+1)*4))
}
