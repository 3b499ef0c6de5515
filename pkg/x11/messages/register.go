package messages

import (
	"github.com/x11go/xwire/pkg/registry"
	"github.com/x11go/xwire/pkg/schema"
)

// CoreRequests lists every core request schema in opcode order.
var CoreRequests = []*schema.Request{
	CreateWindow,
	ChangeWindowAttributes,
	GetWindowAttributes,
	DestroyWindow,
	MapWindow,
	UnmapWindow,
	ConfigureWindow,
	QueryTree,
	InternAtom,
	GetAtomName,
	ChangeProperty,
	DeleteProperty,
	GetProperty,
	CreateGC,
	ChangeGC,
	FreeGC,
	GetInputFocus,
	QueryExtension,
	Bell,
	NoOperation,
}

// RegisterCore loads the core request, event, and error schemas into a
// registry.
func RegisterCore(reg *registry.Registry) {
	for _, sch := range CoreRequests {
		reg.RegisterRequest(sch)
	}
	for _, sch := range CoreEvents {
		reg.RegisterEvent(sch)
	}
	for _, sch := range CoreErrors {
		reg.RegisterError(sch)
	}
}
