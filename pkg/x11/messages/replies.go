package messages

import (
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/x11"
)

var GetWindowAttributesReply = &schema.Reply{
	Name: "GetWindowAttributesReply",
	Metabyte: &schema.Field{
		Name: "backing_store",
		Type: schema.Card8{},
	},
	Fields: []schema.Field{
		{Name: "visual", Type: schema.Card32{}},
		{Name: "class", Type: schema.Card16{}},
		{Name: "bit_gravity", Type: schema.Card8{}},
		{Name: "win_gravity", Type: schema.Card8{}},
		{Name: "backing_planes", Type: schema.Card32{}},
		{Name: "backing_pixel", Type: schema.Card32{}},
		{Name: "save_under", Type: schema.Bool{}},
		{Name: "map_is_installed", Type: schema.Bool{}},
		{Name: "map_state", Type: schema.Card8{}},
		{Name: "override_redirect", Type: schema.Bool{}},
		{Name: "colormap", Type: schema.Card32{}},
		{Name: "all_event_masks", Type: schema.Card32{}},
		{Name: "your_event_mask", Type: schema.Card32{}},
		{Name: "do_not_propagate_mask", Type: schema.Card16{}},
		{Type: schema.Pad{N: 2}},
	},
}

var QueryTreeReply = &schema.Reply{
	Name: "QueryTreeReply",
	Fields: []schema.Field{
		{Name: "root", Type: schema.Card32{}},
		{Name: "parent", Type: schema.SentinelOf[x11.Window]{Scheme: x11.WindowScheme}},
		{Name: "children_len", Type: schema.Card16{}, LengthOf: "children"},
		{Type: schema.Pad{N: 14}},
		{Name: "children", Type: schema.ListCard32{LenFrom: "children_len"}},
	},
}

var InternAtomReply = &schema.Reply{
	Name: "InternAtomReply",
	Fields: []schema.Field{
		{Name: "atom", Type: schema.SentinelOf[x11.Atom]{Scheme: x11.AtomScheme}},
	},
}

var GetAtomNameReply = &schema.Reply{
	Name: "GetAtomNameReply",
	Fields: []schema.Field{
		{Name: "name_len", Type: schema.Card16{}, LengthOf: "name"},
		{Type: schema.Pad{N: 22}},
		{Name: "name", Type: schema.String8{LenFrom: "name_len"}},
		{Type: schema.AlignPad{}},
	},
}

// GetPropertyReply's value is counted in format units given by the
// metabyte, with the unit count in the body.
var GetPropertyReply = &schema.Reply{
	Name: "GetPropertyReply",
	Metabyte: &schema.Field{
		Name: "format",
		Type: schema.Card8{},
	},
	Fields: []schema.Field{
		{Name: "type", Type: schema.SentinelOf[x11.Atom]{Scheme: x11.PropertyTypeScheme}},
		{Name: "bytes_after", Type: schema.Card32{}},
		{Name: "value_len", Type: schema.Card32{}, Derive: formatUnits("value", "format")},
		{Type: schema.Pad{N: 12}},
		{Name: "value", Type: formatData{LenFrom: "value_len", FormatFrom: "format"}},
		{Type: schema.AlignPad{}},
	},
}

var GetInputFocusReply = &schema.Reply{
	Name: "GetInputFocusReply",
	Metabyte: &schema.Field{
		Name: "revert_to",
		Type: schema.Card8{},
	},
	Fields: []schema.Field{
		{Name: "focus", Type: schema.SentinelOf[x11.Window]{Scheme: x11.FocusScheme}},
	},
}

var QueryExtensionReply = &schema.Reply{
	Name: "QueryExtensionReply",
	Fields: []schema.Field{
		{Name: "present", Type: schema.Bool{}},
		{Name: "major_opcode", Type: schema.Card8{}},
		{Name: "first_event", Type: schema.Card8{}},
		{Name: "first_error", Type: schema.Card8{}},
	},
}
