package x11

import "github.com/x11go/xwire/pkg/codec"

// Fields that overload an id with reserved constants. Each scheme pins
// which constants are legal for that field; the same wire value can be
// reserved in one field and a plain id in another, so the schemes are
// per-field, not per-type.

// Class is a window class carried in a 16-bit field.
type Class uint32

// Depth is a drawing depth carried in an 8-bit field.
type Depth uint32

var (
	// TimestampScheme reads timestamp fields where zero means "the
	// server's current time".
	TimestampScheme = codec.Scheme[Timestamp]{
		Field:    "timestamp",
		Reserved: []Timestamp{Timestamp(CurrentTime)},
	}

	// PropertyTypeScheme reads GetProperty's type field, where zero
	// matches any property type.
	PropertyTypeScheme = codec.Scheme[Atom]{
		Field:    "property_type",
		Reserved: []Atom{Atom(AnyPropertyType)},
	}

	// BackgroundPixmapScheme reads the background-pixmap attribute:
	// 0 is None, 1 inherits the parent's background.
	BackgroundPixmapScheme = codec.Scheme[Pixmap]{
		Field:    "background_pixmap",
		Reserved: []Pixmap{Pixmap(None), Pixmap(ParentRelative)},
	}

	// BorderPixmapScheme reads the border-pixmap attribute, where
	// zero copies the parent's border.
	BorderPixmapScheme = codec.Scheme[Pixmap]{
		Field:    "border_pixmap",
		Reserved: []Pixmap{Pixmap(CopyFromParent)},
	}

	// CursorScheme reads cursor fields where zero means no cursor.
	CursorScheme = codec.Scheme[Cursor]{
		Field:    "cursor",
		Reserved: []Cursor{Cursor(None)},
	}

	// FocusScheme reads input-focus fields: 0 is None, 1 tracks the
	// pointer's root window.
	FocusScheme = codec.Scheme[Window]{
		Field:    "focus",
		Reserved: []Window{Window(None), Window(PointerRoot)},
	}

	// ClassScheme reads CreateWindow's 16-bit class field, where zero
	// copies the parent's class.
	ClassScheme = codec.Scheme[Class]{
		Field:    "class",
		Width:    2,
		Reserved: []Class{Class(CopyFromParent)},
	}

	// DepthScheme reads CreateWindow's 8-bit depth field, where zero
	// copies the parent's depth.
	DepthScheme = codec.Scheme[Depth]{
		Field:    "depth",
		Width:    1,
		Reserved: []Depth{Depth(CopyFromParent)},
	}

	// VisualScheme reads CreateWindow's visual field, where zero
	// copies the parent's visual.
	VisualScheme = codec.Scheme[VisualID]{
		Field:    "visual",
		Reserved: []VisualID{VisualID(CopyFromParent)},
	}

	// WindowScheme reads window fields where zero means no window
	// (sibling and child slots).
	WindowScheme = codec.Scheme[Window]{
		Field:    "window",
		Reserved: []Window{Window(None)},
	}

	// AtomScheme reads atom fields where zero means no atom.
	AtomScheme = codec.Scheme[Atom]{
		Field:    "atom",
		Reserved: []Atom{Atom(None)},
	}
)
