package schema

import (
	"fmt"

	"github.com/x11go/xwire/pkg/codec"
	"github.com/x11go/xwire/pkg/wire"
)

// Object is an ordered list of field descriptors walked by the generic
// engine. Requests, replies, and events embed one for their body.
type Object struct {
	Fields []Field
}

// deriveAll computes the values of derived fields (lengths, masks) from
// the assembled message, before any byte is written.
func (o Object) deriveAll(vals Values) (map[string]uint32, error) {
	derived := make(map[string]uint32)
	for _, f := range o.Fields {
		switch {
		case f.LengthOf != "":
			target, ok := vals[f.LengthOf]
			if !ok {
				return nil, fmt.Errorf("field %q: length target %q missing: %w", f.Name, f.LengthOf, wire.ErrMissingInfo)
			}
			n, err := elementCount(target)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			derived[f.Name] = n
		case f.MaskOf != "":
			target, ok := vals[f.MaskOf].(*codec.ValueList)
			if !ok {
				return nil, fmt.Errorf("field %q: mask target %q is not a value list: %w", f.Name, f.MaskOf, wire.ErrMissingInfo)
			}
			derived[f.Name] = target.Mask()
		case f.Derive != nil:
			n, err := f.Derive(vals)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			derived[f.Name] = n
		}
	}
	return derived, nil
}

func elementCount(v any) (uint32, error) {
	switch t := v.(type) {
	case string:
		return uint32(len(t)), nil
	case []byte:
		return uint32(len(t)), nil
	case []uint32:
		return uint32(len(t)), nil
	case *codec.ValueList:
		return uint32(t.Len()), nil
	default:
		return 0, fmt.Errorf("cannot count elements of %T: %w", v, wire.ErrMissingInfo)
	}
}

// Size returns the encoded size of the object's fields for the given
// values, assuming encoding starts at byte offset start of the message.
// The offset matters only for alignment padding fields.
func (o Object) Size(vals Values, start int) (int, error) {
	total := start
	for _, f := range o.Fields {
		if _, align := f.Type.(AlignPad); align {
			total = codec.Align(total)
			continue
		}
		var v any
		if f.Name != "" && !f.derived() {
			var ok bool
			v, ok = vals[f.Name]
			if !ok {
				return 0, fmt.Errorf("field %q missing: %w", f.Name, wire.ErrMissingInfo)
			}
		}
		n, err := f.Type.Size(v)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", f.Name, err)
		}
		total += n
	}
	return total - start, nil
}

// Encode writes the object's fields in order. Derived fields are
// computed from vals first; every encoded numeric field is recorded in
// the context so later dependent fields can see it.
func (o Object) Encode(w *wire.Writer, vals Values, ctx *Context) error {
	derived, err := o.deriveAll(vals)
	if err != nil {
		return err
	}
	for _, f := range o.Fields {
		if f.Name == "" {
			if err := f.Type.Encode(w, nil, ctx); err != nil {
				return err
			}
			continue
		}
		v, ok := vals[f.Name]
		if f.derived() {
			v, ok = derived[f.Name], true
		}
		if !ok {
			return fmt.Errorf("field %q missing: %w", f.Name, wire.ErrMissingInfo)
		}
		if err := f.Type.Encode(w, v, ctx); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		if n, numeric := asUint(v); numeric {
			ctx.Set(f.Name, n)
		}
	}
	return nil
}

// Decode reads the object's fields in order, recording numeric fields in
// the context as they are decoded so later dependent fields can consult
// them.
func (o Object) Decode(r *wire.Reader, ctx *Context) (Values, error) {
	vals := make(Values, len(o.Fields))
	for _, f := range o.Fields {
		v, err := f.Type.Decode(r, ctx)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		if f.Name == "" {
			continue
		}
		vals[f.Name] = v
		if n, numeric := asUint(v); numeric {
			ctx.Set(f.Name, n)
		}
	}
	return vals, nil
}
