package x11

// Core error codes. Extension errors are assigned from the extension's
// first-error code upward.
const (
	ErrCodeRequest        uint8 = 1
	ErrCodeValue          uint8 = 2
	ErrCodeWindow         uint8 = 3
	ErrCodePixmap         uint8 = 4
	ErrCodeAtom           uint8 = 5
	ErrCodeCursor         uint8 = 6
	ErrCodeFont           uint8 = 7
	ErrCodeMatch          uint8 = 8
	ErrCodeDrawable       uint8 = 9
	ErrCodeAccess         uint8 = 10
	ErrCodeAlloc          uint8 = 11
	ErrCodeColormap       uint8 = 12
	ErrCodeGContext       uint8 = 13
	ErrCodeIDChoice       uint8 = 14
	ErrCodeName           uint8 = 15
	ErrCodeLength         uint8 = 16
	ErrCodeImplementation uint8 = 17

	// LastCoreError is the highest core error code.
	LastCoreError uint8 = 17
)

var errorNames = map[uint8]string{
	ErrCodeRequest:        "Request",
	ErrCodeValue:          "Value",
	ErrCodeWindow:         "Window",
	ErrCodePixmap:         "Pixmap",
	ErrCodeAtom:           "Atom",
	ErrCodeCursor:         "Cursor",
	ErrCodeFont:           "Font",
	ErrCodeMatch:          "Match",
	ErrCodeDrawable:       "Drawable",
	ErrCodeAccess:         "Access",
	ErrCodeAlloc:          "Alloc",
	ErrCodeColormap:       "Colormap",
	ErrCodeGContext:       "GContext",
	ErrCodeIDChoice:       "IDChoice",
	ErrCodeName:           "Name",
	ErrCodeLength:         "Length",
	ErrCodeImplementation: "Implementation",
}

// ErrorName returns the protocol name of a core error code, or "" if
// unknown.
func ErrorName(code uint8) string {
	return errorNames[code]
}
