// Package x11 holds the core protocol's numbering and vocabulary:
// resource id types, opcodes, event and error codes, bitmask
// catalogues, and the reserved-value schemes for fields that overload
// an id with constants like None or CopyFromParent.
package x11

// Resource id types. All are 29-bit ids carried in 32-bit fields; the
// distinct Go types keep a Window from being passed where a Pixmap is
// expected even though the wire cannot tell them apart.
type (
	Window   uint32
	Pixmap   uint32
	Cursor   uint32
	Font     uint32
	GContext uint32
	Colormap uint32
	Atom     uint32

	// Drawable is a Window or a Pixmap.
	Drawable uint32

	// Fontable is a Font or a GContext.
	Fontable uint32

	// VisualID identifies a visual type.
	VisualID uint32

	// Timestamp is a server time in milliseconds, wrapping roughly
	// every 49.7 days.
	Timestamp uint32

	// KeySym is an encoded keyboard symbol.
	KeySym uint32
)

// Reserved resource and value constants.
const (
	// None is the zero id: no resource.
	None uint32 = 0

	// ParentRelative, as a background pixmap, inherits the parent's
	// background.
	ParentRelative uint32 = 1

	// CopyFromParent, as a window class, depth, or visual, copies the
	// parent's.
	CopyFromParent uint32 = 0

	// CurrentTime, as a timestamp, is replaced by the server's
	// current time.
	CurrentTime uint32 = 0

	// AnyPropertyType matches any property type in GetProperty.
	AnyPropertyType uint32 = 0

	// PointerRoot, as an input focus, tracks the pointer's root
	// window.
	PointerRoot uint32 = 1
)

// Window classes.
const (
	ClassInputOutput uint16 = 1
	ClassInputOnly   uint16 = 2
)

// Property change modes.
const (
	PropModeReplace uint8 = 0
	PropModePrepend uint8 = 1
	PropModeAppend  uint8 = 2
)

// Stack modes for ConfigureWindow.
const (
	StackAbove    uint8 = 0
	StackBelow    uint8 = 1
	StackTopIf    uint8 = 2
	StackBottomIf uint8 = 3
	StackOpposite uint8 = 4
)
