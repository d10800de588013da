package cell

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/wippyai/memtable/errors"
)

// wire is the tagged JSON shape. Decimal and date payloads travel as
// strings to keep them exact.
type wire struct {
	Kind  Kind            `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind() {
	case KindNil:
		return json.Marshal(wire{Kind: KindNil})
	case KindBool:
		payload = v.b
	case KindInt:
		payload = v.i
	case KindFloat:
		payload = v.f
	case KindText:
		payload = v.s
	case KindDecimal:
		payload = v.dec.String()
	case KindDate:
		payload = v.day.String()
	default:
		return nil, errors.InvalidData(fmt.Sprintf("unknown cell kind %q", v.kind))
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire{Kind: v.Kind(), Value: raw})
}

// UnmarshalJSON decodes the tagged shape back into the matching
// variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(errors.KindInvalidData, err, "cell payload")
	}
	switch w.Kind {
	case KindNil, "":
		*v = Nil()
		return nil
	case KindBool:
		var b bool
		if err := json.Unmarshal(w.Value, &b); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "bool cell")
		}
		*v = Bool(b)
	case KindInt:
		var i int64
		if err := json.Unmarshal(w.Value, &i); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "int cell")
		}
		*v = Int(i)
	case KindFloat:
		var f float64
		if err := json.Unmarshal(w.Value, &f); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "float cell")
		}
		*v = Float(f)
	case KindText:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "text cell")
		}
		*v = Text(s)
	case KindDecimal:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "decimal cell")
		}
		d, err := decimal.Parse(s)
		if err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "decimal cell")
		}
		*v = Dec(d)
	case KindDate:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "date cell")
		}
		d, err := date.ParseISO(s)
		if err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "date cell")
		}
		*v = Date(d)
	default:
		return errors.InvalidData(fmt.Sprintf("unknown cell kind %q", w.Kind))
	}
	return nil
}
