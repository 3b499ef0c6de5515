package x11

import "github.com/x11go/xwire/pkg/codec"

// Window attribute mask bits, governing the CreateWindow and
// ChangeWindowAttributes value lists. Values travel lowest bit first.
const (
	AttrBackgroundPixmap   uint32 = 0x00000001
	AttrBackgroundPixel    uint32 = 0x00000002
	AttrBorderPixmap       uint32 = 0x00000004
	AttrBorderPixel        uint32 = 0x00000008
	AttrBitGravity         uint32 = 0x00000010
	AttrWinGravity         uint32 = 0x00000020
	AttrBackingStore       uint32 = 0x00000040
	AttrBackingPlanes      uint32 = 0x00000080
	AttrBackingPixel       uint32 = 0x00000100
	AttrOverrideRedirect   uint32 = 0x00000200
	AttrSaveUnder          uint32 = 0x00000400
	AttrEventMask          uint32 = 0x00000800
	AttrDoNotPropagateMask uint32 = 0x00001000
	AttrColormap           uint32 = 0x00002000
	AttrCursor             uint32 = 0x00004000

	// AllAttrMask is every defined attribute bit.
	AllAttrMask uint32 = 0x00007FFF
)

// ConfigureWindow mask bits.
const (
	ConfigX           uint32 = 0x0001
	ConfigY           uint32 = 0x0002
	ConfigWidth       uint32 = 0x0004
	ConfigHeight      uint32 = 0x0008
	ConfigBorderWidth uint32 = 0x0010
	ConfigSibling     uint32 = 0x0020
	ConfigStackMode   uint32 = 0x0040

	// AllConfigMask is every defined configure bit.
	AllConfigMask uint32 = 0x007F
)

// Graphics context mask bits, governing the CreateGC and ChangeGC
// value lists.
const (
	GCFunction           uint32 = 0x00000001
	GCPlaneMask          uint32 = 0x00000002
	GCForeground         uint32 = 0x00000004
	GCBackground         uint32 = 0x00000008
	GCLineWidth          uint32 = 0x00000010
	GCLineStyle          uint32 = 0x00000020
	GCCapStyle           uint32 = 0x00000040
	GCJoinStyle          uint32 = 0x00000080
	GCFillStyle          uint32 = 0x00000100
	GCFillRule           uint32 = 0x00000200
	GCTile               uint32 = 0x00000400
	GCStipple            uint32 = 0x00000800
	GCTileStippleXOrigin uint32 = 0x00001000
	GCTileStippleYOrigin uint32 = 0x00002000
	GCFont               uint32 = 0x00004000
	GCSubwindowMode      uint32 = 0x00008000
	GCGraphicsExposures  uint32 = 0x00010000
	GCClipXOrigin        uint32 = 0x00020000
	GCClipYOrigin        uint32 = 0x00040000
	GCClipMask           uint32 = 0x00080000
	GCDashOffset         uint32 = 0x00100000
	GCDashes             uint32 = 0x00200000
	GCArcMode            uint32 = 0x00400000

	// AllGCMask is every defined graphics context bit.
	AllGCMask uint32 = 0x007FFFFF
)

// Event mask bits, selecting which events a client receives for a
// window.
const (
	EventMaskKeyPress             uint32 = 0x00000001
	EventMaskKeyRelease           uint32 = 0x00000002
	EventMaskButtonPress          uint32 = 0x00000004
	EventMaskButtonRelease        uint32 = 0x00000008
	EventMaskEnterWindow          uint32 = 0x00000010
	EventMaskLeaveWindow          uint32 = 0x00000020
	EventMaskPointerMotion        uint32 = 0x00000040
	EventMaskPointerMotionHint    uint32 = 0x00000080
	EventMaskButton1Motion        uint32 = 0x00000100
	EventMaskButton2Motion        uint32 = 0x00000200
	EventMaskButton3Motion        uint32 = 0x00000400
	EventMaskButton4Motion        uint32 = 0x00000800
	EventMaskButton5Motion        uint32 = 0x00001000
	EventMaskButtonMotion         uint32 = 0x00002000
	EventMaskKeymapState          uint32 = 0x00004000
	EventMaskExposure             uint32 = 0x00008000
	EventMaskVisibilityChange     uint32 = 0x00010000
	EventMaskStructureNotify      uint32 = 0x00020000
	EventMaskResizeRedirect       uint32 = 0x00040000
	EventMaskSubstructureNotify   uint32 = 0x00080000
	EventMaskSubstructureRedirect uint32 = 0x00100000
	EventMaskFocusChange          uint32 = 0x00200000
	EventMaskPropertyChange       uint32 = 0x00400000
	EventMaskColormapChange       uint32 = 0x00800000
	EventMaskOwnerGrabButton      uint32 = 0x01000000

	// AllEventsMask is every defined event mask bit. The top seven
	// bits of the field are unused and must be zero on the wire.
	AllEventsMask uint32 = 0x01FFFFFF
)

// ValidateAttrMask rejects attribute masks with undefined bits set.
func ValidateAttrMask(mask uint32) error {
	return codec.ValidateMask(mask, AllAttrMask)
}

// ValidateConfigMask rejects configure masks with undefined bits set.
func ValidateConfigMask(mask uint32) error {
	return codec.ValidateMask(mask, AllConfigMask)
}

// ValidateGCMask rejects graphics context masks with undefined bits
// set.
func ValidateGCMask(mask uint32) error {
	return codec.ValidateMask(mask, AllGCMask)
}

// ValidateEventMask rejects event masks with unused bits set.
func ValidateEventMask(mask uint32) error {
	return codec.ValidateMask(mask, AllEventsMask)
}
