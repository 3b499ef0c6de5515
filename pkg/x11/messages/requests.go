// Package messages declares the core protocol's message schemas:
// requests and their replies, events, and errors, as static field
// lists interpreted by the schema engine.
//
// The catalogue covers the window, atom, and property operations plus
// the full core event and error sets. RegisterCore loads everything
// into a registry.
package messages

import (
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/x11"
)

// CreateWindow carries the new window's depth in the metabyte and a
// mask-governed attribute list in the tail.
var CreateWindow = &schema.Request{
	Name:   "CreateWindow",
	Opcode: x11.OpCreateWindow,
	Metabyte: &schema.Field{
		Name: "depth",
		Type: schema.SentinelOf[x11.Depth]{Scheme: x11.DepthScheme},
	},
	Fields: []schema.Field{
		{Name: "wid", Type: schema.Card32{}},
		{Name: "parent", Type: schema.Card32{}},
		{Name: "x", Type: schema.Int16{}},
		{Name: "y", Type: schema.Int16{}},
		{Name: "width", Type: schema.Card16{}},
		{Name: "height", Type: schema.Card16{}},
		{Name: "border_width", Type: schema.Card16{}},
		{Name: "class", Type: schema.SentinelOf[x11.Class]{Scheme: x11.ClassScheme}},
		{Name: "visual", Type: schema.SentinelOf[x11.VisualID]{Scheme: x11.VisualScheme}},
		{Name: "value_mask", Type: schema.Card32{}, MaskOf: "values"},
		{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
	},
}

var ChangeWindowAttributes = &schema.Request{
	Name:   "ChangeWindowAttributes",
	Opcode: x11.OpChangeWindowAttributes,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
		{Name: "value_mask", Type: schema.Card32{}, MaskOf: "values"},
		{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
	},
}

var GetWindowAttributes = &schema.Request{
	Name:   "GetWindowAttributes",
	Opcode: x11.OpGetWindowAttributes,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
	},
	Reply: GetWindowAttributesReply,
}

var DestroyWindow = &schema.Request{
	Name:   "DestroyWindow",
	Opcode: x11.OpDestroyWindow,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
	},
}

var MapWindow = &schema.Request{
	Name:   "MapWindow",
	Opcode: x11.OpMapWindow,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
	},
}

var UnmapWindow = &schema.Request{
	Name:   "UnmapWindow",
	Opcode: x11.OpUnmapWindow,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
	},
}

// ConfigureWindow's mask is 16 bits with 2 bytes of padding before the
// value list, unlike the window-attribute requests.
var ConfigureWindow = &schema.Request{
	Name:   "ConfigureWindow",
	Opcode: x11.OpConfigureWindow,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
		{Name: "value_mask", Type: schema.Card16{}, MaskOf: "values"},
		{Type: schema.Pad{N: 2}},
		{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
	},
}

var QueryTree = &schema.Request{
	Name:   "QueryTree",
	Opcode: x11.OpQueryTree,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
	},
	Reply: QueryTreeReply,
}

var InternAtom = &schema.Request{
	Name:   "InternAtom",
	Opcode: x11.OpInternAtom,
	Metabyte: &schema.Field{
		Name: "only_if_exists",
		Type: schema.Bool{},
	},
	Fields: []schema.Field{
		{Name: "name_len", Type: schema.Card16{}, LengthOf: "name"},
		{Type: schema.Pad{N: 2}},
		{Name: "name", Type: schema.String8{LenFrom: "name_len"}},
		{Type: schema.AlignPad{}},
	},
	Reply: InternAtomReply,
}

var GetAtomName = &schema.Request{
	Name:   "GetAtomName",
	Opcode: x11.OpGetAtomName,
	Fields: []schema.Field{
		{Name: "atom", Type: schema.Card32{}},
	},
	Reply: GetAtomNameReply,
}

// ChangeProperty counts its data in format units (8, 16, or 32 bits),
// not bytes, so the length field needs a derivation and the data field
// a format-aware shape.
var ChangeProperty = &schema.Request{
	Name:   "ChangeProperty",
	Opcode: x11.OpChangeProperty,
	Metabyte: &schema.Field{
		Name: "mode",
		Type: schema.Card8{},
	},
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
		{Name: "property", Type: schema.Card32{}},
		{Name: "type", Type: schema.Card32{}},
		{Name: "format", Type: schema.Card8{}},
		{Type: schema.Pad{N: 3}},
		{Name: "data_len", Type: schema.Card32{}, Derive: formatUnits("data", "format")},
		{Name: "data", Type: formatData{LenFrom: "data_len", FormatFrom: "format"}},
		{Type: schema.AlignPad{}},
	},
}

var DeleteProperty = &schema.Request{
	Name:   "DeleteProperty",
	Opcode: x11.OpDeleteProperty,
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
		{Name: "property", Type: schema.Card32{}},
	},
}

var GetProperty = &schema.Request{
	Name:   "GetProperty",
	Opcode: x11.OpGetProperty,
	Metabyte: &schema.Field{
		Name: "delete",
		Type: schema.Bool{},
	},
	Fields: []schema.Field{
		{Name: "window", Type: schema.Card32{}},
		{Name: "property", Type: schema.Card32{}},
		{Name: "type", Type: schema.SentinelOf[x11.Atom]{Scheme: x11.PropertyTypeScheme}},
		{Name: "long_offset", Type: schema.Card32{}},
		{Name: "long_length", Type: schema.Card32{}},
	},
	Reply: GetPropertyReply,
}

// CreateGC and ChangeGC share the window requests' value-list shape
// with the graphics context mask catalogue.
var CreateGC = &schema.Request{
	Name:   "CreateGC",
	Opcode: x11.OpCreateGC,
	Fields: []schema.Field{
		{Name: "cid", Type: schema.Card32{}},
		{Name: "drawable", Type: schema.Card32{}},
		{Name: "value_mask", Type: schema.Card32{}, MaskOf: "values"},
		{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
	},
}

var ChangeGC = &schema.Request{
	Name:   "ChangeGC",
	Opcode: x11.OpChangeGC,
	Fields: []schema.Field{
		{Name: "gc", Type: schema.Card32{}},
		{Name: "value_mask", Type: schema.Card32{}, MaskOf: "values"},
		{Name: "values", Type: schema.ValueListType{MaskFrom: "value_mask"}},
	},
}

var FreeGC = &schema.Request{
	Name:   "FreeGC",
	Opcode: x11.OpFreeGC,
	Fields: []schema.Field{
		{Name: "gc", Type: schema.Card32{}},
	},
}

var GetInputFocus = &schema.Request{
	Name:   "GetInputFocus",
	Opcode: x11.OpGetInputFocus,
	Reply:  GetInputFocusReply,
}

var QueryExtension = &schema.Request{
	Name:   "QueryExtension",
	Opcode: x11.OpQueryExtension,
	Fields: []schema.Field{
		{Name: "name_len", Type: schema.Card16{}, LengthOf: "name"},
		{Type: schema.Pad{N: 2}},
		{Name: "name", Type: schema.String8{LenFrom: "name_len"}},
		{Type: schema.AlignPad{}},
	},
	Reply: QueryExtensionReply,
}

var Bell = &schema.Request{
	Name:   "Bell",
	Opcode: x11.OpBell,
	Metabyte: &schema.Field{
		Name: "percent",
		Type: schema.Int8{},
	},
}

var NoOperation = &schema.Request{
	Name:   "NoOperation",
	Opcode: x11.OpNoOperation,
}
