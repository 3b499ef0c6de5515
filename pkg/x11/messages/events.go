package messages

import (
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/x11"
)

// pointerEventFields is the shared body of the key, button, and motion
// events: same layout, different detail semantics.
func pointerEventFields() []schema.Field {
	return []schema.Field{
		{Name: "time", Type: schema.Card32{}},
		{Name: "root", Type: schema.Card32{}},
		{Name: "event", Type: schema.Card32{}},
		{Name: "child", Type: schema.SentinelOf[x11.Window]{Scheme: x11.WindowScheme}},
		{Name: "root_x", Type: schema.Int16{}},
		{Name: "root_y", Type: schema.Int16{}},
		{Name: "event_x", Type: schema.Int16{}},
		{Name: "event_y", Type: schema.Int16{}},
		{Name: "state", Type: schema.Card16{}},
		{Name: "same_screen", Type: schema.Bool{}},
		{Type: schema.Pad{N: 1}},
	}
}

func pointerEvent(name string, code uint8, detail string) *schema.Event {
	return &schema.Event{
		Name:     name,
		Code:     code,
		Metabyte: &schema.Field{Name: detail, Type: schema.Card8{}},
		Fields:   pointerEventFields(),
	}
}

func crossingEvent(name string, code uint8) *schema.Event {
	return &schema.Event{
		Name:     name,
		Code:     code,
		Metabyte: &schema.Field{Name: "detail", Type: schema.Card8{}},
		Fields: []schema.Field{
			{Name: "time", Type: schema.Card32{}},
			{Name: "root", Type: schema.Card32{}},
			{Name: "event", Type: schema.Card32{}},
			{Name: "child", Type: schema.SentinelOf[x11.Window]{Scheme: x11.WindowScheme}},
			{Name: "root_x", Type: schema.Int16{}},
			{Name: "root_y", Type: schema.Int16{}},
			{Name: "event_x", Type: schema.Int16{}},
			{Name: "event_y", Type: schema.Int16{}},
			{Name: "state", Type: schema.Card16{}},
			{Name: "mode", Type: schema.Card8{}},
			{Name: "same_screen_focus", Type: schema.Card8{}},
		},
	}
}

func focusEvent(name string, code uint8) *schema.Event {
	return &schema.Event{
		Name:     name,
		Code:     code,
		Metabyte: &schema.Field{Name: "detail", Type: schema.Card8{}},
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "mode", Type: schema.Card8{}},
		},
	}
}

var (
	KeyPress      = pointerEvent("KeyPress", x11.EventKeyPress, "keycode")
	KeyRelease    = pointerEvent("KeyRelease", x11.EventKeyRelease, "keycode")
	ButtonPress   = pointerEvent("ButtonPress", x11.EventButtonPress, "button")
	ButtonRelease = pointerEvent("ButtonRelease", x11.EventButtonRelease, "button")
	MotionNotify  = pointerEvent("MotionNotify", x11.EventMotionNotify, "detail")

	EnterNotify = crossingEvent("EnterNotify", x11.EventEnterNotify)
	LeaveNotify = crossingEvent("LeaveNotify", x11.EventLeaveNotify)

	FocusIn  = focusEvent("FocusIn", x11.EventFocusIn)
	FocusOut = focusEvent("FocusOut", x11.EventFocusOut)

	// KeymapNotify is the one core event with no sequence number: its
	// 31 key-state bytes start right after the code byte.
	KeymapNotify = &schema.Event{
		Name:       "KeymapNotify",
		Code:       x11.EventKeymapNotify,
		NoSequence: true,
		Fields: []schema.Field{
			{Name: "keys", Type: schema.FixedBytes{N: 31}},
		},
	}

	Expose = &schema.Event{
		Name: "Expose",
		Code: x11.EventExpose,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "x", Type: schema.Card16{}},
			{Name: "y", Type: schema.Card16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "count", Type: schema.Card16{}},
		},
	}

	GraphicsExposure = &schema.Event{
		Name: "GraphicsExposure",
		Code: x11.EventGraphicsExposure,
		Fields: []schema.Field{
			{Name: "drawable", Type: schema.Card32{}},
			{Name: "x", Type: schema.Card16{}},
			{Name: "y", Type: schema.Card16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "minor_opcode", Type: schema.Card16{}},
			{Name: "count", Type: schema.Card16{}},
			{Name: "major_opcode", Type: schema.Card8{}},
		},
	}

	NoExposure = &schema.Event{
		Name: "NoExposure",
		Code: x11.EventNoExposure,
		Fields: []schema.Field{
			{Name: "drawable", Type: schema.Card32{}},
			{Name: "minor_opcode", Type: schema.Card16{}},
			{Name: "major_opcode", Type: schema.Card8{}},
		},
	}

	VisibilityNotify = &schema.Event{
		Name: "VisibilityNotify",
		Code: x11.EventVisibilityNotify,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "state", Type: schema.Card8{}},
		},
	}

	CreateNotify = &schema.Event{
		Name: "CreateNotify",
		Code: x11.EventCreateNotify,
		Fields: []schema.Field{
			{Name: "parent", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "x", Type: schema.Int16{}},
			{Name: "y", Type: schema.Int16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "border_width", Type: schema.Card16{}},
			{Name: "override_redirect", Type: schema.Bool{}},
		},
	}

	DestroyNotify = &schema.Event{
		Name: "DestroyNotify",
		Code: x11.EventDestroyNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
		},
	}

	UnmapNotify = &schema.Event{
		Name: "UnmapNotify",
		Code: x11.EventUnmapNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "from_configure", Type: schema.Bool{}},
		},
	}

	MapNotify = &schema.Event{
		Name: "MapNotify",
		Code: x11.EventMapNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "override_redirect", Type: schema.Bool{}},
		},
	}

	MapRequest = &schema.Event{
		Name: "MapRequest",
		Code: x11.EventMapRequest,
		Fields: []schema.Field{
			{Name: "parent", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
		},
	}

	ReparentNotify = &schema.Event{
		Name: "ReparentNotify",
		Code: x11.EventReparentNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "parent", Type: schema.Card32{}},
			{Name: "x", Type: schema.Int16{}},
			{Name: "y", Type: schema.Int16{}},
			{Name: "override_redirect", Type: schema.Bool{}},
		},
	}

	ConfigureNotify = &schema.Event{
		Name: "ConfigureNotify",
		Code: x11.EventConfigureNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "above_sibling", Type: schema.SentinelOf[x11.Window]{Scheme: x11.WindowScheme}},
			{Name: "x", Type: schema.Int16{}},
			{Name: "y", Type: schema.Int16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "border_width", Type: schema.Card16{}},
			{Name: "override_redirect", Type: schema.Bool{}},
		},
	}

	ConfigureRequest = &schema.Event{
		Name:     "ConfigureRequest",
		Code:     x11.EventConfigureRequest,
		Metabyte: &schema.Field{Name: "stack_mode", Type: schema.Card8{}},
		Fields: []schema.Field{
			{Name: "parent", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "sibling", Type: schema.SentinelOf[x11.Window]{Scheme: x11.WindowScheme}},
			{Name: "x", Type: schema.Int16{}},
			{Name: "y", Type: schema.Int16{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
			{Name: "border_width", Type: schema.Card16{}},
			{Name: "value_mask", Type: schema.Card16{}},
		},
	}

	GravityNotify = &schema.Event{
		Name: "GravityNotify",
		Code: x11.EventGravityNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Name: "x", Type: schema.Int16{}},
			{Name: "y", Type: schema.Int16{}},
		},
	}

	ResizeRequest = &schema.Event{
		Name: "ResizeRequest",
		Code: x11.EventResizeRequest,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "width", Type: schema.Card16{}},
			{Name: "height", Type: schema.Card16{}},
		},
	}

	CirculateNotify = &schema.Event{
		Name: "CirculateNotify",
		Code: x11.EventCirculateNotify,
		Fields: []schema.Field{
			{Name: "event", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Type: schema.Pad{N: 4}},
			{Name: "place", Type: schema.Card8{}},
		},
	}

	CirculateRequest = &schema.Event{
		Name: "CirculateRequest",
		Code: x11.EventCirculateRequest,
		Fields: []schema.Field{
			{Name: "parent", Type: schema.Card32{}},
			{Name: "window", Type: schema.Card32{}},
			{Type: schema.Pad{N: 4}},
			{Name: "place", Type: schema.Card8{}},
		},
	}

	PropertyNotify = &schema.Event{
		Name: "PropertyNotify",
		Code: x11.EventPropertyNotify,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "atom", Type: schema.Card32{}},
			{Name: "time", Type: schema.Card32{}},
			{Name: "state", Type: schema.Card8{}},
		},
	}

	SelectionClear = &schema.Event{
		Name: "SelectionClear",
		Code: x11.EventSelectionClear,
		Fields: []schema.Field{
			{Name: "time", Type: schema.Card32{}},
			{Name: "owner", Type: schema.Card32{}},
			{Name: "selection", Type: schema.Card32{}},
		},
	}

	SelectionRequest = &schema.Event{
		Name: "SelectionRequest",
		Code: x11.EventSelectionRequest,
		Fields: []schema.Field{
			{Name: "time", Type: schema.SentinelOf[x11.Timestamp]{Scheme: x11.TimestampScheme}},
			{Name: "owner", Type: schema.Card32{}},
			{Name: "requestor", Type: schema.Card32{}},
			{Name: "selection", Type: schema.Card32{}},
			{Name: "target", Type: schema.Card32{}},
			{Name: "property", Type: schema.SentinelOf[x11.Atom]{Scheme: x11.AtomScheme}},
		},
	}

	SelectionNotify = &schema.Event{
		Name: "SelectionNotify",
		Code: x11.EventSelectionNotify,
		Fields: []schema.Field{
			{Name: "time", Type: schema.SentinelOf[x11.Timestamp]{Scheme: x11.TimestampScheme}},
			{Name: "requestor", Type: schema.Card32{}},
			{Name: "selection", Type: schema.Card32{}},
			{Name: "target", Type: schema.Card32{}},
			{Name: "property", Type: schema.SentinelOf[x11.Atom]{Scheme: x11.AtomScheme}},
		},
	}

	ColormapNotify = &schema.Event{
		Name: "ColormapNotify",
		Code: x11.EventColormapNotify,
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "colormap", Type: schema.Card32{}},
			{Name: "new", Type: schema.Bool{}},
			{Name: "state", Type: schema.Card8{}},
		},
	}

	// ClientMessage's 20 data bytes are opaque at this layer; their
	// interpretation depends on the type atom and format.
	ClientMessage = &schema.Event{
		Name:     "ClientMessage",
		Code:     x11.EventClientMessage,
		Metabyte: &schema.Field{Name: "format", Type: schema.Card8{}},
		Fields: []schema.Field{
			{Name: "window", Type: schema.Card32{}},
			{Name: "type", Type: schema.Card32{}},
			{Name: "data", Type: schema.FixedBytes{N: 20}},
		},
	}

	MappingNotify = &schema.Event{
		Name: "MappingNotify",
		Code: x11.EventMappingNotify,
		Fields: []schema.Field{
			{Name: "request", Type: schema.Card8{}},
			{Name: "first_keycode", Type: schema.Card8{}},
			{Name: "count", Type: schema.Card8{}},
		},
	}
)

// CoreEvents lists every core event schema in code order.
var CoreEvents = []*schema.Event{
	KeyPress, KeyRelease, ButtonPress, ButtonRelease, MotionNotify,
	EnterNotify, LeaveNotify, FocusIn, FocusOut, KeymapNotify,
	Expose, GraphicsExposure, NoExposure, VisibilityNotify,
	CreateNotify, DestroyNotify, UnmapNotify, MapNotify, MapRequest,
	ReparentNotify, ConfigureNotify, ConfigureRequest, GravityNotify,
	ResizeRequest, CirculateNotify, CirculateRequest, PropertyNotify,
	SelectionClear, SelectionRequest, SelectionNotify, ColormapNotify,
	ClientMessage, MappingNotify,
}
