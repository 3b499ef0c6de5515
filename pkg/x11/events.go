package x11

// Core event codes. Code 0 is the error frame marker and code 1 the
// reply marker, so events start at 2. Extension events are assigned
// from the extension's first-event code upward.
const (
	EventKeyPress         uint8 = 2
	EventKeyRelease       uint8 = 3
	EventButtonPress      uint8 = 4
	EventButtonRelease    uint8 = 5
	EventMotionNotify     uint8 = 6
	EventEnterNotify      uint8 = 7
	EventLeaveNotify      uint8 = 8
	EventFocusIn          uint8 = 9
	EventFocusOut         uint8 = 10
	EventKeymapNotify     uint8 = 11
	EventExpose           uint8 = 12
	EventGraphicsExposure uint8 = 13
	EventNoExposure       uint8 = 14
	EventVisibilityNotify uint8 = 15
	EventCreateNotify     uint8 = 16
	EventDestroyNotify    uint8 = 17
	EventUnmapNotify      uint8 = 18
	EventMapNotify        uint8 = 19
	EventMapRequest       uint8 = 20
	EventReparentNotify   uint8 = 21
	EventConfigureNotify  uint8 = 22
	EventConfigureRequest uint8 = 23
	EventGravityNotify    uint8 = 24
	EventResizeRequest    uint8 = 25
	EventCirculateNotify  uint8 = 26
	EventCirculateRequest uint8 = 27
	EventPropertyNotify   uint8 = 28
	EventSelectionClear   uint8 = 29
	EventSelectionRequest uint8 = 30
	EventSelectionNotify  uint8 = 31
	EventColormapNotify   uint8 = 32
	EventClientMessage    uint8 = 33
	EventMappingNotify    uint8 = 34

	// LastCoreEvent is the highest core event code.
	LastCoreEvent uint8 = 34
)

var eventNames = map[uint8]string{
	EventKeyPress:         "KeyPress",
	EventKeyRelease:       "KeyRelease",
	EventButtonPress:      "ButtonPress",
	EventButtonRelease:    "ButtonRelease",
	EventMotionNotify:     "MotionNotify",
	EventEnterNotify:      "EnterNotify",
	EventLeaveNotify:      "LeaveNotify",
	EventFocusIn:          "FocusIn",
	EventFocusOut:         "FocusOut",
	EventKeymapNotify:     "KeymapNotify",
	EventExpose:           "Expose",
	EventGraphicsExposure: "GraphicsExposure",
	EventNoExposure:       "NoExposure",
	EventVisibilityNotify: "VisibilityNotify",
	EventCreateNotify:     "CreateNotify",
	EventDestroyNotify:    "DestroyNotify",
	EventUnmapNotify:      "UnmapNotify",
	EventMapNotify:        "MapNotify",
	EventMapRequest:       "MapRequest",
	EventReparentNotify:   "ReparentNotify",
	EventConfigureNotify:  "ConfigureNotify",
	EventConfigureRequest: "ConfigureRequest",
	EventGravityNotify:    "GravityNotify",
	EventResizeRequest:    "ResizeRequest",
	EventCirculateNotify:  "CirculateNotify",
	EventCirculateRequest: "CirculateRequest",
	EventPropertyNotify:   "PropertyNotify",
	EventSelectionClear:   "SelectionClear",
	EventSelectionRequest: "SelectionRequest",
	EventSelectionNotify:  "SelectionNotify",
	EventColormapNotify:   "ColormapNotify",
	EventClientMessage:    "ClientMessage",
	EventMappingNotify:    "MappingNotify",
}

// EventName returns the protocol name of a core event code, or "" if
// unknown.
func EventName(code uint8) string {
	return eventNames[code]
}
