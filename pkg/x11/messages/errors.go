package messages

import (
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/x11"
)

// The seventeen core error kinds. The frame layout is identical for all
// of them; the schemas differ only in name and in what the data field
// carries.
var (
	ErrRequest        = &schema.Error{Name: "Request", Code: x11.ErrCodeRequest, Data: schema.ErrorDataNone}
	ErrValue          = &schema.Error{Name: "Value", Code: x11.ErrCodeValue, Data: schema.ErrorDataValue}
	ErrWindow         = &schema.Error{Name: "Window", Code: x11.ErrCodeWindow, Data: schema.ErrorDataResourceID}
	ErrPixmap         = &schema.Error{Name: "Pixmap", Code: x11.ErrCodePixmap, Data: schema.ErrorDataResourceID}
	ErrAtom           = &schema.Error{Name: "Atom", Code: x11.ErrCodeAtom, Data: schema.ErrorDataAtom}
	ErrCursor         = &schema.Error{Name: "Cursor", Code: x11.ErrCodeCursor, Data: schema.ErrorDataResourceID}
	ErrFont           = &schema.Error{Name: "Font", Code: x11.ErrCodeFont, Data: schema.ErrorDataResourceID}
	ErrMatch          = &schema.Error{Name: "Match", Code: x11.ErrCodeMatch, Data: schema.ErrorDataNone}
	ErrDrawable       = &schema.Error{Name: "Drawable", Code: x11.ErrCodeDrawable, Data: schema.ErrorDataResourceID}
	ErrAccess         = &schema.Error{Name: "Access", Code: x11.ErrCodeAccess, Data: schema.ErrorDataNone}
	ErrAlloc          = &schema.Error{Name: "Alloc", Code: x11.ErrCodeAlloc, Data: schema.ErrorDataNone}
	ErrColormap       = &schema.Error{Name: "Colormap", Code: x11.ErrCodeColormap, Data: schema.ErrorDataResourceID}
	ErrGContext       = &schema.Error{Name: "GContext", Code: x11.ErrCodeGContext, Data: schema.ErrorDataResourceID}
	ErrIDChoice       = &schema.Error{Name: "IDChoice", Code: x11.ErrCodeIDChoice, Data: schema.ErrorDataResourceID}
	ErrName           = &schema.Error{Name: "Name", Code: x11.ErrCodeName, Data: schema.ErrorDataNone}
	ErrLength         = &schema.Error{Name: "Length", Code: x11.ErrCodeLength, Data: schema.ErrorDataNone}
	ErrImplementation = &schema.Error{Name: "Implementation", Code: x11.ErrCodeImplementation, Data: schema.ErrorDataNone}
)

// CoreErrors lists every core error schema in code order.
var CoreErrors = []*schema.Error{
	ErrRequest, ErrValue, ErrWindow, ErrPixmap, ErrAtom, ErrCursor,
	ErrFont, ErrMatch, ErrDrawable, ErrAccess, ErrAlloc, ErrColormap,
	ErrGContext, ErrIDChoice, ErrName, ErrLength, ErrImplementation,
}
