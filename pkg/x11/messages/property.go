package messages

import (
	"fmt"

	"github.com/x11go/xwire/pkg/schema"
	"github.com/x11go/xwire/pkg/wire"
)

// Property data is counted in format units of 8, 16, or 32 bits. The
// length field holds the unit count; the byte length on the wire is
// units * format/8. Format 0 carries no data: the server sends it when
// the property does not exist.

// formatUnits derives a length field's unit count from a byte field
// and the format field governing it.
func formatUnits(dataField, formatField string) func(schema.Values) (uint32, error) {
	return func(vals schema.Values) (uint32, error) {
		data, ok := vals.Bytes(dataField)
		if !ok {
			return 0, fmt.Errorf("field %q: %w", dataField, wire.ErrMissingInfo)
		}
		if len(data) == 0 {
			return 0, nil
		}
		format, ok := vals.Uint(formatField)
		if !ok {
			return 0, fmt.Errorf("field %q: %w", formatField, wire.ErrMissingInfo)
		}
		unit, err := formatBytes(format)
		if err != nil {
			return 0, err
		}
		if len(data)%unit != 0 {
			return 0, fmt.Errorf("%d data bytes do not divide into format %d units: %w",
				len(data), format, wire.ErrInvalidData)
		}
		return uint32(len(data) / unit), nil
	}
}

func formatBytes(format uint64) (int, error) {
	switch format {
	case 8:
		return 1, nil
	case 16:
		return 2, nil
	case 32:
		return 4, nil
	default:
		return 0, fmt.Errorf("property format %d: %w", format, wire.ErrInvalidData)
	}
}

// formatData is a byte field whose wire length is a unit count scaled
// by an earlier format field. Values are Go []byte.
type formatData struct {
	// LenFrom names the field holding the unit count.
	LenFrom string

	// FormatFrom names the field holding the unit width in bits.
	FormatFrom string
}

func (d formatData) Size(v any) (int, error) {
	b, ok := v.([]byte)
	if !ok {
		return 0, fmt.Errorf("property data: expected []byte, got %T: %w", v, wire.ErrMissingInfo)
	}
	return len(b), nil
}

func (d formatData) Encode(w *wire.Writer, v any, _ *schema.Context) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("property data: expected []byte, got %T: %w", v, wire.ErrMissingInfo)
	}
	return w.PutBytes(b)
}

func (d formatData) Decode(r *wire.Reader, ctx *schema.Context) (any, error) {
	units, ok := ctx.Get(d.LenFrom)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", d.LenFrom, wire.ErrMissingInfo)
	}
	if units == 0 {
		return []byte{}, nil
	}
	format, ok := ctx.Get(d.FormatFrom)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", d.FormatFrom, wire.ErrMissingInfo)
	}
	unit, err := formatBytes(format)
	if err != nil {
		return nil, err
	}
	b, err := r.Bytes(int(units) * unit)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
