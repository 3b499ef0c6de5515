package messages

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x11go/xwire/pkg/codec"
	"github.com/x11go/xwire/pkg/frame"
	"github.com/x11go/xwire/pkg/registry"
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
	"github.com/x11go/xwire/pkg/x11"
)

var le = binary.LittleEndian

// TestChangeWindowAttributes_Wire pins the full wire image of a
// ChangeWindowAttributes request selecting a background pixel and an
// event mask.
func TestChangeWindowAttributes_Wire(t *testing.T) {
	values := codec.NewValueList().
		Set(x11.AttrEventMask, x11.EventMaskExposure|x11.EventMaskKeyPress).
		Set(x11.AttrBackgroundPixel, 0x00FF00FF)

	req := frame.NewRequest(ChangeWindowAttributes, schema.Values{
		"window": uint32(0x00400001),
		"values": values,
	})

	buf, err := frame.EncodeRequest(req, le)
	require.NoError(t, err)

	require.Len(t, buf, 20)
	assert.Equal(t, x11.OpChangeWindowAttributes, buf[0])
	assert.Equal(t, uint16(5), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(0x00400001), le.Uint32(buf[4:8]))
	assert.Equal(t, x11.AttrBackgroundPixel|x11.AttrEventMask, le.Uint32(buf[8:12]))
	// Lower mask bit first: background pixel, then event mask.
	assert.Equal(t, uint32(0x00FF00FF), le.Uint32(buf[12:16]))
	assert.Equal(t, x11.EventMaskExposure|x11.EventMaskKeyPress, le.Uint32(buf[16:20]))
}

// TestCreateWindow_RoundTrip exercises the densest request schema:
// metabyte depth, two sentinel fields, and a trailing value list.
func TestCreateWindow_RoundTrip(t *testing.T) {
	vals := schema.Values{
		"depth":        codec.Reserved(x11.Depth(x11.CopyFromParent)),
		"wid":          uint32(0x00400002),
		"parent":       uint32(0x0000014E),
		"x":            int16(-10),
		"y":            int16(20),
		"width":        uint16(640),
		"height":       uint16(480),
		"border_width": uint16(1),
		"class":        codec.Specific(x11.Class(x11.ClassInputOutput)),
		"visual":       codec.Reserved(x11.VisualID(x11.CopyFromParent)),
		"values":       codec.NewValueList().Set(x11.AttrEventMask, x11.EventMaskExposure),
	}

	buf, err := frame.EncodeRequest(frame.NewRequest(CreateWindow, vals), le)
	require.NoError(t, err)
	require.Len(t, buf, 36)

	got, n, err := frame.DecodeRequest(buf, CreateWindow, le)
	require.NoError(t, err)
	assert.Equal(t, 36, n)

	depth, ok := got.Values["depth"].(codec.Sentinel[x11.Depth])
	require.True(t, ok)
	assert.True(t, depth.IsReserved())

	class, ok := got.Values["class"].(codec.Sentinel[x11.Class])
	require.True(t, ok)
	v, ok := class.Value()
	require.True(t, ok)
	assert.Equal(t, x11.Class(x11.ClassInputOutput), v)

	x, ok := got.Values["x"].(int16)
	require.True(t, ok)
	assert.Equal(t, int16(-10), x)

	list, ok := got.Values["values"].(*codec.ValueList)
	require.True(t, ok)
	mask, found := list.Get(x11.AttrEventMask)
	require.True(t, found)
	assert.Equal(t, x11.EventMaskExposure, mask)
}

// TestConfigureWindow_SixteenBitMask verifies the 16-bit mask plus
// 2-byte pad layout in front of the value list.
func TestConfigureWindow_SixteenBitMask(t *testing.T) {
	vals := schema.Values{
		"window": uint32(7),
		"values": codec.NewValueList().
			Set(x11.ConfigX, 0xFFFF_FFF6). // -10 as a 32-bit value
			Set(x11.ConfigStackMode, uint32(x11.StackAbove)),
	}

	buf, err := frame.EncodeRequest(frame.NewRequest(ConfigureWindow, vals), le)
	require.NoError(t, err)

	require.Len(t, buf, 20)
	assert.Equal(t, uint16(x11.ConfigX|x11.ConfigStackMode), le.Uint16(buf[8:10]))
	assert.Equal(t, uint16(0), le.Uint16(buf[10:12]))

	got, _, err := frame.DecodeRequest(buf, ConfigureWindow, le)
	require.NoError(t, err)
	list := got.Values["values"].(*codec.ValueList)
	assert.Equal(t, x11.ConfigX|x11.ConfigStackMode, list.Mask())
}

// TestCreateGC_ValueList pins the graphics context request layout:
// cid, drawable, then the mask-governed component list.
func TestCreateGC_ValueList(t *testing.T) {
	values := codec.NewValueList().
		Set(x11.GCGraphicsExposures, 0).
		Set(x11.GCForeground, 0x00FFFFFF)

	buf, err := frame.EncodeRequest(frame.NewRequest(CreateGC, schema.Values{
		"cid":      uint32(0x00400010),
		"drawable": uint32(0x00400001),
		"values":   values,
	}), le)
	require.NoError(t, err)

	require.Len(t, buf, 24)
	assert.Equal(t, x11.OpCreateGC, buf[0])
	assert.Equal(t, uint16(6), le.Uint16(buf[2:4]))
	assert.Equal(t, uint32(0x00400010), le.Uint32(buf[4:8]))
	assert.Equal(t, x11.GCForeground|x11.GCGraphicsExposures, le.Uint32(buf[12:16]))
	// Foreground is the lower bit, so its word comes first.
	assert.Equal(t, uint32(0x00FFFFFF), le.Uint32(buf[16:20]))

	got, _, err := frame.DecodeRequest(buf, CreateGC, le)
	require.NoError(t, err)
	list, ok := got.Values["values"].(*codec.ValueList)
	require.True(t, ok)
	fg, found := list.Get(x11.GCForeground)
	require.True(t, found)
	assert.Equal(t, uint32(0x00FFFFFF), fg)

	// ChangeGC reuses the same tail after a single gc field.
	buf2, err := frame.EncodeRequest(frame.NewRequest(ChangeGC, schema.Values{
		"gc":     uint32(0x00400010),
		"values": codec.NewValueList().Set(x11.GCLineWidth, 2),
	}), le)
	require.NoError(t, err)
	require.Len(t, buf2, 16)
	assert.Equal(t, x11.GCLineWidth, le.Uint32(buf2[8:12]))
}

// TestInternAtom_RoundTrip exercises the metabyte boolean and the
// length-prefixed padded string.
func TestInternAtom_RoundTrip(t *testing.T) {
	vals := schema.Values{
		"only_if_exists": true,
		"name":           "WM_PROTOCOLS",
	}

	buf, err := frame.EncodeRequest(frame.NewRequest(InternAtom, vals), le)
	require.NoError(t, err)

	// 4 header + 2 len + 2 pad + 12 name, already aligned.
	require.Len(t, buf, 20)
	assert.Equal(t, uint8(1), buf[1])
	assert.Equal(t, uint16(12), le.Uint16(buf[4:6]))

	got, _, err := frame.DecodeRequest(buf, InternAtom, le)
	require.NoError(t, err)
	name, ok := got.Values.String("name")
	require.True(t, ok)
	assert.Equal(t, "WM_PROTOCOLS", name)
	oie, ok := got.Values["only_if_exists"].(bool)
	require.True(t, ok)
	assert.True(t, oie)
}

// TestChangeProperty_FormatUnits verifies the unit-counted data length
// for each property format.
func TestChangeProperty_FormatUnits(t *testing.T) {
	encode := func(format uint8, data []byte) ([]byte, error) {
		return frame.EncodeRequest(frame.NewRequest(ChangeProperty, schema.Values{
			"mode":     x11.PropModeReplace,
			"window":   uint32(1),
			"property": uint32(0x100),
			"type":     uint32(31), // STRING
			"format":   format,
			"data":     data,
		}), le)
	}

	t.Run("format 8", func(t *testing.T) {
		buf, err := encode(8, []byte("hello"))
		require.NoError(t, err)
		// data_len counts bytes for format 8.
		assert.Equal(t, uint32(5), le.Uint32(buf[20:24]))
		// 24 header+fixed + 5 data + 3 alignment.
		require.Len(t, buf, 32)

		got, _, err := frame.DecodeRequest(buf, ChangeProperty, le)
		require.NoError(t, err)
		data, ok := got.Values.Bytes("data")
		require.True(t, ok)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("format 32", func(t *testing.T) {
		buf, err := encode(32, []byte{1, 0, 0, 0, 2, 0, 0, 0})
		require.NoError(t, err)
		// Two 32-bit units, eight bytes.
		assert.Equal(t, uint32(2), le.Uint32(buf[20:24]))
		require.Len(t, buf, 32)
	})

	t.Run("data does not divide into units", func(t *testing.T) {
		_, err := encode(32, []byte{1, 2, 3})
		assert.ErrorIs(t, err, wire.ErrInvalidData)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := encode(12, []byte{1, 2})
		assert.ErrorIs(t, err, wire.ErrInvalidData)
	})
}

// TestGetPropertyReply_RoundTrip drives the format-scaled value field
// through a full reply frame, metabyte format included.
func TestGetPropertyReply_RoundTrip(t *testing.T) {
	rep := &frame.Reply{
		Schema: GetPropertyReply,
		Values: schema.Values{
			"format":      uint8(8),
			"type":        codec.Specific(x11.Atom(31)),
			"bytes_after": uint32(0),
			"value":       []byte("hello"),
		},
		Sequence: 11,
	}

	buf, err := frame.EncodeReply(rep, le)
	require.NoError(t, err)
	// 8 header + 4 type + 4 bytes-after + 4 value-len + 12 pad +
	// 5 value + 3 alignment = 40.
	require.Len(t, buf, 40)
	assert.Equal(t, uint32(2), le.Uint32(buf[4:8]))
	assert.Equal(t, uint32(5), le.Uint32(buf[16:20]))

	got, n, err := frame.DecodeReply(buf, GetPropertyReply, le)
	require.NoError(t, err)
	assert.Equal(t, 40, n)

	format, ok := got.Values.Uint("format")
	require.True(t, ok)
	assert.Equal(t, uint64(8), format)
	value, ok := got.Values.Bytes("value")
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), value)
}

// TestGetPropertyReply_MissingProperty decodes the reply the server
// sends when the property does not exist: format 0, type None, no
// value bytes.
func TestGetPropertyReply_MissingProperty(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 1
	le.PutUint16(buf[2:4], 9)

	got, n, err := frame.DecodeReply(buf, GetPropertyReply, le)
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	format, ok := got.Values.Uint("format")
	require.True(t, ok)
	assert.Equal(t, uint64(0), format)

	propType, ok := got.Values["type"].(codec.Sentinel[x11.Atom])
	require.True(t, ok)
	assert.True(t, propType.IsReserved())

	value, ok := got.Values.Bytes("value")
	require.True(t, ok)
	assert.Empty(t, value)

	// The same shape encodes back to a 32-byte frame with a zero
	// value length.
	buf2, err := frame.EncodeReply(&frame.Reply{
		Schema: GetPropertyReply,
		Values: schema.Values{
			"format":      uint8(0),
			"type":        codec.Reserved(x11.Atom(x11.AnyPropertyType)),
			"bytes_after": uint32(0),
			"value":       []byte{},
		},
		Sequence: 9,
	}, le)
	require.NoError(t, err)
	assert.Equal(t, buf, buf2)
}

// TestQueryTreeReply_RoundTrip exercises the counted window list and
// the parent sentinel.
func TestQueryTreeReply_RoundTrip(t *testing.T) {
	rep := &frame.Reply{
		Schema: QueryTreeReply,
		Values: schema.Values{
			"root":     uint32(0x14E),
			"parent":   codec.Reserved(x11.Window(x11.None)),
			"children": []uint32{0x400001, 0x400002, 0x400003},
		},
		Sequence: 4,
	}

	buf, err := frame.EncodeReply(rep, le)
	require.NoError(t, err)
	// 8 header + 4 root + 4 parent + 2 count + 14 pad + 12 children.
	require.Len(t, buf, 44)
	assert.Equal(t, uint32(3), le.Uint32(buf[4:8]))
	assert.Equal(t, uint16(3), le.Uint16(buf[16:18]))

	got, _, err := frame.DecodeReply(buf, QueryTreeReply, le)
	require.NoError(t, err)

	parent, ok := got.Values["parent"].(codec.Sentinel[x11.Window])
	require.True(t, ok)
	assert.True(t, parent.IsReserved())

	children, ok := got.Values["children"].([]uint32)
	require.True(t, ok)
	assert.Equal(t, []uint32{0x400001, 0x400002, 0x400003}, children)
}

// TestDispatch_CoreCatalogue runs classified decoding against the full
// registered catalogue: a reply matched through the pending table, an
// error, and events including the irregular KeymapNotify.
func TestDispatch_CoreCatalogue(t *testing.T) {
	reg := registry.NewRegistry()
	RegisterCore(reg)

	pending := frame.NewPendingTable()
	d := &frame.Dispatcher{Order: le, Schemas: reg, Pending: pending}

	t.Run("intern atom reply", func(t *testing.T) {
		pending.Expect(42, InternAtomReply)
		buf, err := frame.EncodeReply(&frame.Reply{
			Schema:   InternAtomReply,
			Values:   schema.Values{"atom": codec.Specific(x11.Atom(0x180))},
			Sequence: 42,
		}, le)
		require.NoError(t, err)
		require.Len(t, buf, 32)
		assert.Equal(t, uint8(1), buf[0])
		assert.Equal(t, uint32(0), le.Uint32(buf[4:8]))

		msg, n, err := d.Dispatch(buf)
		require.NoError(t, err)
		assert.Equal(t, 32, n)
		rep, ok := msg.(*frame.Reply)
		require.True(t, ok)
		atom := rep.Values["atom"].(codec.Sentinel[x11.Atom])
		v, ok := atom.Value()
		require.True(t, ok)
		assert.Equal(t, x11.Atom(0x180), v)
	})

	t.Run("atom error", func(t *testing.T) {
		buf, err := frame.EncodeError(&frame.Error{
			Schema:      ErrAtom,
			Sequence:    7,
			Data:        0x180,
			MajorOpcode: x11.OpGetAtomName,
		}, le)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), buf[0])
		assert.Equal(t, x11.ErrCodeAtom, buf[1])

		msg, _, err := d.Dispatch(buf)
		require.NoError(t, err)
		e, ok := msg.(*frame.Error)
		require.True(t, ok)
		assert.Equal(t, "Atom", e.Schema.Name)
		assert.Equal(t, schema.ErrorDataAtom, e.Schema.Data)
		assert.Equal(t, uint32(0x180), e.Data)
	})

	t.Run("keymap notify", func(t *testing.T) {
		keys := make([]byte, 31)
		keys[3] = 0x10
		buf, err := frame.EncodeEvent(&frame.Event{
			Schema: KeymapNotify,
			Values: schema.Values{"keys": keys},
		}, le)
		require.NoError(t, err)

		msg, _, err := d.Dispatch(buf)
		require.NoError(t, err)
		ev, ok := msg.(*frame.Event)
		require.True(t, ok)
		assert.Equal(t, x11.EventKeymapNotify, ev.Code)
		gotKeys, ok := ev.Values.Bytes("keys")
		require.True(t, ok)
		assert.Equal(t, keys, gotKeys)
	})

	t.Run("client message", func(t *testing.T) {
		data := make([]byte, 20)
		copy(data, "PING")
		buf, err := frame.EncodeEvent(&frame.Event{
			Schema: ClientMessage,
			Values: schema.Values{
				"format": uint8(32),
				"window": uint32(0x400001),
				"type":   uint32(0x122),
				"data":   data,
			},
			Sequence: 3,
		}, le)
		require.NoError(t, err)

		msg, _, err := d.Dispatch(buf)
		require.NoError(t, err)
		ev := msg.(*frame.Event)
		assert.Equal(t, "ClientMessage", ev.Schema.Name)
		gotData, _ := ev.Values.Bytes("data")
		assert.Equal(t, data, gotData)
	})
}

// TestCoreEvents_EncodeWithinFrame encodes every core event with zero
// values and checks each fits its fixed 32-byte frame.
func TestCoreEvents_EncodeWithinFrame(t *testing.T) {
	for _, sch := range CoreEvents {
		t.Run(sch.Name, func(t *testing.T) {
			vals := zeroValuesFor(sch)
			buf, err := frame.EncodeEvent(&frame.Event{Schema: sch, Values: vals}, le)
			require.NoError(t, err)
			assert.Len(t, buf, frame.EventSize)
			assert.Equal(t, sch.Code, buf[0])
		})
	}
}

// zeroValuesFor builds a zero value for every named field of an event
// schema.
func zeroValuesFor(sch *schema.Event) schema.Values {
	vals := make(schema.Values)
	fields := sch.Fields
	if sch.Metabyte != nil {
		fields = append([]schema.Field{*sch.Metabyte}, fields...)
	}
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		switch f.Type.(type) {
		case schema.Card8:
			vals[f.Name] = uint8(0)
		case schema.Card16:
			vals[f.Name] = uint16(0)
		case schema.Card32:
			vals[f.Name] = uint32(0)
		case schema.Int16:
			vals[f.Name] = int16(0)
		case schema.Bool:
			vals[f.Name] = false
		case schema.FixedBytes:
			vals[f.Name] = make([]byte, f.Type.(schema.FixedBytes).N)
		case schema.SentinelOf[x11.Window]:
			vals[f.Name] = codec.Reserved(x11.Window(x11.None))
		case schema.SentinelOf[x11.Atom]:
			vals[f.Name] = codec.Reserved(x11.Atom(x11.None))
		case schema.SentinelOf[x11.Timestamp]:
			vals[f.Name] = codec.Reserved(x11.Timestamp(x11.CurrentTime))
		}
	}
	return vals
}

// TestRegisterCore_Coverage checks the catalogue lands in the registry
// under the protocol's numbering.
func TestRegisterCore_Coverage(t *testing.T) {
	reg := registry.NewRegistry()
	RegisterCore(reg)

	sch, ok := reg.ResolveRequest(x11.OpCreateWindow, 0)
	require.True(t, ok)
	assert.Equal(t, "CreateWindow", sch.Name)

	for code := x11.EventKeyPress; code <= x11.LastCoreEvent; code++ {
		_, ok := reg.EventSchema(code)
		assert.True(t, ok, "event code %d", code)
	}
	for code := x11.ErrCodeRequest; code <= x11.LastCoreError; code++ {
		_, ok := reg.ErrorSchema(code)
		assert.True(t, ok, "error code %d", code)
	}
}

// TestBell_MetabytePercent pins the signed metabyte field.
func TestBell_MetabytePercent(t *testing.T) {
	buf, err := frame.EncodeRequest(frame.NewRequest(Bell, schema.Values{"percent": int8(-50)}), le)
	require.NoError(t, err)
	require.Len(t, buf, 4)
	assert.Equal(t, x11.OpBell, buf[0])
	assert.Equal(t, int8(-50), int8(buf[1]))

	got, _, err := frame.DecodeRequest(buf, Bell, le)
	require.NoError(t, err)
	percent, ok := got.Values["percent"].(int8)
	require.True(t, ok)
	assert.Equal(t, int8(-50), percent)
}
