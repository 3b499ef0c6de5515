package x11

// Core request major opcodes. Extension majors are assigned by the
// server from 128 upward.
const (
	OpCreateWindow           uint8 = 1
	OpChangeWindowAttributes uint8 = 2
	OpGetWindowAttributes    uint8 = 3
	OpDestroyWindow          uint8 = 4
	OpDestroySubwindows      uint8 = 5
	OpChangeSaveSet          uint8 = 6
	OpReparentWindow         uint8 = 7
	OpMapWindow              uint8 = 8
	OpMapSubwindows          uint8 = 9
	OpUnmapWindow            uint8 = 10
	OpUnmapSubwindows        uint8 = 11
	OpConfigureWindow        uint8 = 12
	OpCirculateWindow        uint8 = 13
	OpGetGeometry            uint8 = 14
	OpQueryTree              uint8 = 15
	OpInternAtom             uint8 = 16
	OpGetAtomName            uint8 = 17
	OpChangeProperty         uint8 = 18
	OpDeleteProperty         uint8 = 19
	OpGetProperty            uint8 = 20
	OpListProperties         uint8 = 21
	OpGetInputFocus          uint8 = 43
	OpCreateGC               uint8 = 55
	OpChangeGC               uint8 = 56
	OpFreeGC                 uint8 = 60
	OpQueryExtension         uint8 = 98
	OpBell                   uint8 = 104
	OpNoOperation            uint8 = 127

	// FirstExtensionOpcode is the lowest major opcode a server may
	// assign to an extension.
	FirstExtensionOpcode uint8 = 128
)

// IsExtensionOpcode reports whether a major opcode belongs to the
// extension range.
func IsExtensionOpcode(major uint8) bool {
	return major >= FirstExtensionOpcode
}

var opcodeNames = map[uint8]string{
	OpCreateWindow:           "CreateWindow",
	OpChangeWindowAttributes: "ChangeWindowAttributes",
	OpGetWindowAttributes:    "GetWindowAttributes",
	OpDestroyWindow:          "DestroyWindow",
	OpDestroySubwindows:      "DestroySubwindows",
	OpChangeSaveSet:          "ChangeSaveSet",
	OpReparentWindow:         "ReparentWindow",
	OpMapWindow:              "MapWindow",
	OpMapSubwindows:          "MapSubwindows",
	OpUnmapWindow:            "UnmapWindow",
	OpUnmapSubwindows:        "UnmapSubwindows",
	OpConfigureWindow:        "ConfigureWindow",
	OpCirculateWindow:        "CirculateWindow",
	OpGetGeometry:            "GetGeometry",
	OpQueryTree:              "QueryTree",
	OpInternAtom:             "InternAtom",
	OpGetAtomName:            "GetAtomName",
	OpChangeProperty:         "ChangeProperty",
	OpDeleteProperty:         "DeleteProperty",
	OpGetProperty:            "GetProperty",
	OpListProperties:         "ListProperties",
	OpGetInputFocus:          "GetInputFocus",
	OpCreateGC:               "CreateGC",
	OpChangeGC:               "ChangeGC",
	OpFreeGC:                 "FreeGC",
	OpQueryExtension:         "QueryExtension",
	OpBell:                   "Bell",
	OpNoOperation:            "NoOperation",
}

// OpcodeName returns the protocol name of a core major opcode, or "" if
// unknown.
func OpcodeName(major uint8) string {
	return opcodeNames[major]
}
