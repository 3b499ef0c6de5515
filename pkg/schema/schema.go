// Package schema turns each X11 message into data: a static, ordered
// list of field descriptors interpreted by one generic encode/decode
// engine.
//
// The alternative — hand-writing a codec per message — does not scale to
// the protocol's catalogue, and the protocol's irregularities (fields
// whose presence or length is determined by an earlier field, mandatory
// alignment padding, header metabyte placement) are the same for every
// message, so they are expressed once here and referenced declaratively
// by each message schema.
//
// Context-dependent decoding is explicit: numeric fields decoded earlier
// in a message are recorded in a Context, and dependent fields (lists,
// strings, value lists) name the field they depend on. No shared mutable
// state exists outside the Context threaded through one message's
// decode.
package schema

import (
	"github.com/x11go/xwire/pkg/wire"
)

// Values holds one message's field values keyed by field name.
// Encoding reads from it; decoding fills it.
type Values map[string]any

// Uint returns a numeric field widened to uint64.
func (v Values) Uint(name string) (uint64, bool) {
	raw, ok := v[name]
	if !ok {
		return 0, false
	}
	n, ok := asUint(raw)
	return n, ok
}

// Uint32 returns a numeric field narrowed to uint32.
func (v Values) Uint32(name string) (uint32, bool) {
	n, ok := v.Uint(name)
	return uint32(n), ok
}

// Bytes returns a byte-string field.
func (v Values) Bytes(name string) ([]byte, bool) {
	raw, ok := v[name].([]byte)
	return raw, ok
}

// String returns a string field.
func (v Values) String(name string) (string, bool) {
	raw, ok := v[name].(string)
	return raw, ok
}

func asUint(raw any) (uint64, bool) {
	switch n := raw.(type) {
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Context carries the numeric fields already decoded (or derived during
// encoding) within a single message, for fields whose shape depends on
// them.
type Context struct {
	nums map[string]uint64
}

// NewContext returns an empty decode context.
func NewContext() *Context {
	return &Context{nums: make(map[string]uint64)}
}

// Set records a numeric field value.
func (c *Context) Set(name string, v uint64) {
	c.nums[name] = v
}

// Get returns a recorded numeric field value.
func (c *Context) Get(name string) (uint64, bool) {
	v, ok := c.nums[name]
	return v, ok
}

// Uint32 returns a recorded value narrowed to uint32, failing with
// ErrMissingInfo semantics left to the caller.
func (c *Context) Uint32(name string) (uint32, bool) {
	v, ok := c.nums[name]
	return uint32(v), ok
}

// FieldType describes the wire shape of one field: how big it encodes,
// how to write it, and how to read it back. Dependent shapes receive the
// decode context.
type FieldType interface {
	// Size returns the encoded size in bytes of value v.
	Size(v any) (int, error)

	// Encode writes v. Numeric context needed by the type (list
	// lengths, masks) is read from ctx.
	Encode(w *wire.Writer, v any, ctx *Context) error

	// Decode reads a value, consulting ctx for dependent shapes.
	Decode(r *wire.Reader, ctx *Context) (any, error)
}

// Field is one slot in a message schema.
//
// A field with an empty Name is structural (padding) and carries no
// value. A field with LengthOf, MaskOf, or Derive set is computed from
// other fields at encode time rather than supplied by the caller; on
// decode its value is recorded in the context for the field it
// describes.
type Field struct {
	// Name keys the field's value in Values. Empty for padding.
	Name string

	// Type is the field's wire shape.
	Type FieldType

	// LengthOf derives this field's value from the element count of
	// the named list, string, or byte field.
	LengthOf string

	// MaskOf derives this field's value from the bitmask of the named
	// value-list field.
	MaskOf string

	// Derive computes this field's value from the assembled message.
	// Used for derivations LengthOf/MaskOf cannot express (for
	// example, property data length counted in format units).
	Derive func(vals Values) (uint32, error)
}

func (f Field) derived() bool {
	return f.LengthOf != "" || f.MaskOf != "" || f.Derive != nil
}
