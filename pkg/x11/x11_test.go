package x11

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x11go/xwire/pkg/codec"
	"github.com/x11go/xwire/pkg/wire"
)

// TestMaskCatalogues pins the wire values of the mask bits against the
// protocol's numbering.
func TestMaskCatalogues(t *testing.T) {
	assert.Equal(t, uint32(0x802), AttrBackgroundPixel|AttrEventMask)
	assert.Equal(t, uint32(0x4000), AttrCursor)
	assert.Equal(t, uint32(0x40), ConfigStackMode)
	assert.Equal(t, uint32(0x400000), GCArcMode)
	assert.Equal(t, uint32(0x01000000), EventMaskOwnerGrabButton)
}

// TestValidateMasks accepts defined bits and rejects undefined ones.
func TestValidateMasks(t *testing.T) {
	assert.NoError(t, ValidateAttrMask(AllAttrMask))
	assert.ErrorIs(t, ValidateAttrMask(0x8000), wire.ErrInvalidData)

	assert.NoError(t, ValidateConfigMask(ConfigX|ConfigSibling))
	assert.ErrorIs(t, ValidateConfigMask(0x80), wire.ErrInvalidData)

	assert.NoError(t, ValidateGCMask(GCForeground|GCLineWidth))
	assert.ErrorIs(t, ValidateGCMask(0x00800000), wire.ErrInvalidData)

	assert.NoError(t, ValidateEventMask(AllEventsMask))
	// The unused top bits must stay zero.
	assert.ErrorIs(t, ValidateEventMask(0x02000000), wire.ErrInvalidData)
}

// TestSentinelSchemes_ZeroOverload shows the same wire value decoding
// as a constant under one scheme and a plain id under another.
func TestSentinelSchemes_ZeroOverload(t *testing.T) {
	buf := make([]byte, 4) // all zero

	ts, err := TimestampScheme.Decode(wire.NewReader(buf, binary.LittleEndian))
	require.NoError(t, err)
	assert.True(t, ts.IsReserved())
	c, ok := ts.Constant()
	require.True(t, ok)
	assert.Equal(t, Timestamp(CurrentTime), c)

	// A field with no scheme keeps zero as a value.
	plain := codec.Scheme[Window]{Field: "window"}
	w, err := plain.Decode(wire.NewReader(buf, binary.LittleEndian))
	require.NoError(t, err)
	assert.False(t, w.IsReserved())
}

// TestSentinelSchemes_NarrowWidths round-trips the 16-bit class and
// 8-bit depth schemes.
func TestSentinelSchemes_NarrowWidths(t *testing.T) {
	t.Run("class copy-from-parent", func(t *testing.T) {
		buf := make([]byte, 2)
		w := wire.NewWriter(buf, binary.LittleEndian)
		require.NoError(t, ClassScheme.Encode(w, codec.Reserved(Class(CopyFromParent))))

		got, err := ClassScheme.Decode(wire.NewReader(buf, binary.LittleEndian))
		require.NoError(t, err)
		assert.True(t, got.IsReserved())
	})

	t.Run("specific class", func(t *testing.T) {
		buf := make([]byte, 2)
		w := wire.NewWriter(buf, binary.LittleEndian)
		require.NoError(t, ClassScheme.Encode(w, codec.Specific(Class(ClassInputOutput))))
		assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(buf))

		got, err := ClassScheme.Decode(wire.NewReader(buf, binary.LittleEndian))
		require.NoError(t, err)
		v, ok := got.Value()
		require.True(t, ok)
		assert.Equal(t, Class(ClassInputOutput), v)
	})

	t.Run("depth occupies one byte", func(t *testing.T) {
		buf := []byte{24}
		got, err := DepthScheme.Decode(wire.NewReader(buf, binary.LittleEndian))
		require.NoError(t, err)
		v, ok := got.Value()
		require.True(t, ok)
		assert.Equal(t, Depth(24), v)
	})
}

// TestFocusScheme_Precedence verifies both reserved focus constants win
// over the value interpretation.
func TestFocusScheme_Precedence(t *testing.T) {
	for _, want := range []Window{Window(None), Window(PointerRoot)} {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(want))

		got, err := FocusScheme.Decode(wire.NewReader(buf, binary.LittleEndian))
		require.NoError(t, err)
		assert.True(t, got.IsReserved())
		c, ok := got.Constant()
		require.True(t, ok)
		assert.Equal(t, want, c)
	}
}

// TestNameLookups resolves codes to protocol names.
func TestNameLookups(t *testing.T) {
	assert.Equal(t, "CreateWindow", OpcodeName(OpCreateWindow))
	assert.Equal(t, "NoOperation", OpcodeName(127))
	assert.Equal(t, "", OpcodeName(200))

	assert.Equal(t, "KeymapNotify", EventName(EventKeymapNotify))
	assert.Equal(t, "MappingNotify", EventName(LastCoreEvent))
	assert.Equal(t, "", EventName(50))

	assert.Equal(t, "Atom", ErrorName(ErrCodeAtom))
	assert.Equal(t, "Implementation", ErrorName(LastCoreError))
	assert.Equal(t, "", ErrorName(0))

	assert.True(t, IsExtensionOpcode(128))
	assert.False(t, IsExtensionOpcode(127))
}
