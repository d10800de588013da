package cell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/wippyai/memtable/errors"
)

// Kind identifies the variant a Value holds.
type Kind string

const (
	KindNil     Kind = "nil"
	KindBool    Kind = "bool"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindText    Kind = "text"
	KindDecimal Kind = "decimal"
	KindDate    Kind = "date"
)

// Value is a tagged union for heterogeneous cells. The zero value is
// Nil. Tables treat it as an opaque element type.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	dec  decimal.Decimal
	day  date.Date
}

// Nil returns the empty value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Bool wraps a boolean.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int wraps a signed integer.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float wraps a float.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Text wraps a string.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Dec wraps an exact decimal.
func Dec(v decimal.Decimal) Value {
	return Value{kind: KindDecimal, dec: v}
}

// Date wraps a calendar date.
func Date(v date.Date) Value {
	return Value{kind: KindDate, day: v}
}

// Kind returns the variant tag. The zero Value reports KindNil.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNil
	}
	return v.kind
}

// IsNil reports whether the value is empty.
func (v Value) IsNil() bool {
	return v.Kind() == KindNil
}

// AsBool returns the boolean payload, or absence for other variants.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload, or absence for other variants.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float payload, or absence for other variants.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsText returns the string payload, or absence for other variants.
func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

// AsDecimal returns the decimal payload, or absence for other
// variants.
func (v Value) AsDecimal() (decimal.Decimal, bool) {
	return v.dec, v.kind == KindDecimal
}

// AsDate returns the date payload, or absence for other variants.
func (v Value) AsDate() (date.Date, bool) {
	return v.day, v.kind == KindDate
}

// String renders the payload as text. Nil renders empty.
func (v Value) String() string {
	switch v.Kind() {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindDecimal:
		return v.dec.String()
	case KindDate:
		return v.day.String()
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNil:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindDecimal:
		return v.dec.Cmp(o.dec) == 0
	case KindDate:
		return v.day == o.day
	default:
		return false
	}
}

// Compare orders two values of the same variant. Nil sorts before
// everything. Comparing different non-nil variants fails with a type
// mismatch.
func (v Value) Compare(o Value) (int, error) {
	vk, ok := v.Kind(), o.Kind()
	if vk == KindNil || ok == KindNil {
		return cmpKindNil(vk, ok), nil
	}
	if vk != ok {
		return 0, errors.TypeMismatch(-1, -1, string(vk), string(ok))
	}
	return v.compareSameKind(o, vk)
}

func (v Value) compareSameKind(o Value, vk Kind) (int, error) {
	switch vk {
	case KindBool:
		return cmpBool(v.b, o.b), nil
	case KindInt:
		return cmpOrdered(v.i, o.i), nil
	case KindFloat:
		return cmpOrdered(v.f, o.f), nil
	case KindText:
		return strings.Compare(v.s, o.s), nil
	case KindDecimal:
		return v.dec.Cmp(o.dec), nil
	case KindDate:
		return cmpOrdered(v.day, o.day), nil
	}
	return 0, errors.InvalidData(fmt.Sprintf("unknown cell kind %q", vk))
}

func cmpKindNil(a, b Kind) int {
	switch {
	case a == KindNil && b == KindNil:
		return 0
	case a == KindNil:
		return -1
	default:
		return 1
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func cmpOrdered[T int64 | float64 | date.Date](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Parse converts text to the most specific variant that accepts it:
// empty -> Nil, then bool, integer, date, decimal, float, and
// finally Text as the catch-all.
func Parse(s string) Value {
	if s == "" {
		return Nil()
	}
	if b, err := strconv.ParseBool(s); err == nil && isBoolLiteral(s) {
		return Bool(b)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if d, err := date.ParseISO(s); err == nil && len(s) >= 8 {
		return Date(d)
	}
	if strings.ContainsAny(s, ".") && !strings.ContainsAny(s, "eE") {
		if d, err := decimal.Parse(s); err == nil {
			return Dec(d)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Text(s)
}

// isBoolLiteral restricts bool parsing to the spelled-out forms so
// "1" and "0" stay integers.
func isBoolLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}
