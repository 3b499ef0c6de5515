// Package registry resolves opcodes and codes to message schemas: the
// static core-protocol catalogue plus extensions whose numbering is
// only known at runtime.
//
// Extension major opcodes, first-event codes, and first-error codes are
// assigned by the server and learned through QueryExtension; nothing
// about them is knowable statically. The registry is therefore the
// mutable seam between the static schema catalogue and a live
// connection.
package registry

import (
	"fmt"
	"sync"

	"github.com/x11go/xwire/internal/logger"
	"github.com/x11go/xwire/pkg/frame"
	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
)

// Extension is one extension's runtime numbering plus its schema
// tables. The numbering fields come from a QueryExtension reply; the
// tables come from the extension's static catalogue.
type Extension struct {
	// Name is the extension's registered name, e.g. "BIG-REQUESTS".
	Name string

	// Major is the server-assigned major opcode, in 128..255.
	Major uint8

	// FirstEvent is the code of the extension's first event, or 0 if
	// the extension defines no events.
	FirstEvent uint8

	// FirstError is the code of the extension's first error, or 0 if
	// the extension defines no errors.
	FirstError uint8

	// Requests maps minor opcodes to request schemas.
	Requests map[uint8]*schema.Request

	// Events holds event schemas indexed by offset from FirstEvent.
	Events []*schema.Event

	// Errors holds error schemas indexed by offset from FirstError.
	Errors []*schema.Error
}

// Registry holds the schema catalogue for one connection. Core schemas
// are typically registered once at startup; extensions are added as
// QueryExtension replies arrive. Safe for concurrent use.
//
// Registry implements frame.Schemas.
type Registry struct {
	mu sync.RWMutex

	requests map[uint8]*schema.Request
	events   map[uint8]*schema.Event
	errors   map[uint8]*schema.Error

	extsByName  map[string]*Extension
	extsByMajor map[uint8]*Extension
}

var _ frame.Schemas = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		requests:    make(map[uint8]*schema.Request),
		events:      make(map[uint8]*schema.Event),
		errors:      make(map[uint8]*schema.Error),
		extsByName:  make(map[string]*Extension),
		extsByMajor: make(map[uint8]*Extension),
	}
}

// RegisterRequest adds a core request schema under its major opcode.
// Re-registering an opcode overwrites.
func (r *Registry) RegisterRequest(sch *schema.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[sch.Opcode] = sch
}

// RegisterEvent adds a core event schema under its code.
func (r *Registry) RegisterEvent(sch *schema.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[sch.Code] = sch
}

// RegisterError adds a core error schema under its code.
func (r *Registry) RegisterError(sch *schema.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[sch.Code] = sch
}

// RegisterExtension records an extension's runtime numbering and schema
// tables. Fails when the major opcode is outside the extension range or
// already claimed by a different extension.
func (r *Registry) RegisterExtension(ext *Extension) error {
	if ext.Major < 128 {
		return fmt.Errorf("extension %s: major opcode %d is in the core range: %w",
			ext.Name, ext.Major, wire.ErrInvalidData)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.extsByMajor[ext.Major]; ok && prev.Name != ext.Name {
		return fmt.Errorf("extension %s: major opcode %d already registered to %s: %w",
			ext.Name, ext.Major, prev.Name, wire.ErrInvalidData)
	}

	r.extsByName[ext.Name] = ext
	r.extsByMajor[ext.Major] = ext
	logger.Debug("Registered extension",
		logger.KeyExtension, ext.Name,
		logger.KeyOpcode, ext.Major,
		logger.KeyEventCode, ext.FirstEvent,
		logger.KeyErrorCode, ext.FirstError)
	return nil
}

// Extension returns a registered extension by name.
func (r *Registry) Extension(name string) (*Extension, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ext, ok := r.extsByName[name]
	return ext, ok
}

// ResolveRequest returns the request schema for a wire (major, minor)
// opcode pair. Core opcodes ignore the minor; extension opcodes index
// the extension's minor table.
func (r *Registry) ResolveRequest(major, minor uint8) (*schema.Request, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if major < 128 {
		sch, ok := r.requests[major]
		return sch, ok
	}
	ext, ok := r.extsByMajor[major]
	if !ok {
		return nil, false
	}
	sch, ok := ext.Requests[minor]
	return sch, ok
}

// NewRequest assembles a core request by opcode.
func (r *Registry) NewRequest(opcode uint8, vals schema.Values) (*frame.Request, error) {
	r.mu.RLock()
	sch, ok := r.requests[opcode]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no request schema for opcode %d: %w", opcode, wire.ErrMissingInfo)
	}
	return frame.NewRequest(sch, vals), nil
}

// NewExtensionRequest assembles an extension request, filling its wire
// major opcode from the extension's runtime registration. Fails with
// ErrMissingInfo when the extension has not been registered, since the
// major opcode is unknowable without it.
func (r *Registry) NewExtensionRequest(extName string, minor uint8, vals schema.Values) (*frame.Request, error) {
	r.mu.RLock()
	ext, ok := r.extsByName[extName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("extension %s not registered: %w", extName, wire.ErrMissingInfo)
	}
	sch, ok := ext.Requests[minor]
	if !ok {
		return nil, fmt.Errorf("extension %s: no request schema for minor opcode %d: %w",
			extName, minor, wire.ErrMissingInfo)
	}
	return &frame.Request{
		Schema:    sch,
		Values:    vals,
		Major:     ext.Major,
		Extension: true,
	}, nil
}

// EventSchema resolves an event code (send-event flag already stripped)
// against the core table first, then the extensions' assigned ranges.
func (r *Registry) EventSchema(code uint8) (*schema.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sch, ok := r.events[code]; ok {
		return sch, ok
	}
	for _, ext := range r.extsByMajor {
		if ext.FirstEvent == 0 || code < ext.FirstEvent {
			continue
		}
		idx := int(code - ext.FirstEvent)
		if idx < len(ext.Events) {
			return ext.Events[idx], true
		}
	}
	return nil, false
}

// ErrorSchema resolves an error code against the core table first, then
// the extensions' assigned ranges.
func (r *Registry) ErrorSchema(code uint8) (*schema.Error, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sch, ok := r.errors[code]; ok {
		return sch, ok
	}
	for _, ext := range r.extsByMajor {
		if ext.FirstError == 0 || code < ext.FirstError {
			continue
		}
		idx := int(code - ext.FirstError)
		if idx < len(ext.Errors) {
			return ext.Errors[idx], true
		}
	}
	return nil, false
}
