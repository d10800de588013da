package cell

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/memtable/errors"
)

func TestValue_KindsAndAccessors(t *testing.T) {
	dec := decimal.MustParse("10.25")
	day := date.New(2024, 3, 15)

	tests := []struct {
		name string
		v    Value
		kind Kind
		str  string
	}{
		{"nil", Nil(), KindNil, ""},
		{"bool", Bool(true), KindBool, "true"},
		{"int", Int(-42), KindInt, "-42"},
		{"float", Float(2.5), KindFloat, "2.5"},
		{"text", Text("hello"), KindText, "hello"},
		{"decimal", Dec(dec), KindDecimal, "10.25"},
		{"date", Date(day), KindDate, "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.str, tt.v.String())
		})
	}

	i, ok := Int(7).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)

	_, ok = Text("7").AsInt()
	assert.False(t, ok, "accessor must not coerce across variants")

	s, ok := Text("x").AsText()
	require.True(t, ok)
	assert.Equal(t, "x", s)

	assert.True(t, Nil().IsNil())
	assert.False(t, Int(0).IsNil())

	var zero Value
	assert.Equal(t, KindNil, zero.Kind(), "zero value is Nil")
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"", KindNil},
		{"true", KindBool},
		{"FALSE", KindBool},
		{"42", KindInt},
		{"-7", KindInt},
		{"1", KindInt},
		{"0", KindInt},
		{"3.14", KindDecimal},
		{"-0.5", KindDecimal},
		{"1e10", KindFloat},
		{"2024-03-15", KindDate},
		{"hello", KindText},
		{"12abc", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.kind, Parse(tt.in).Kind())
		})
	}

	d, ok := Parse("2024-03-15").AsDate()
	require.True(t, ok)
	assert.Equal(t, date.New(2024, 3, 15), d)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(3).Equal(Int(3)))
	assert.False(t, Int(3).Equal(Int(4)))
	assert.False(t, Int(3).Equal(Float(3)))
	assert.True(t, Nil().Equal(Nil()))
	assert.True(t, Dec(decimal.MustParse("1.50")).Equal(Dec(decimal.MustParse("1.5"))),
		"decimals compare by numeric value, not representation")
}

func TestValue_Compare(t *testing.T) {
	lt := func(a, b Value) {
		t.Helper()
		got, err := a.Compare(b)
		require.NoError(t, err)
		assert.Equal(t, -1, got)
		got, err = b.Compare(a)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	}

	lt(Int(1), Int(2))
	lt(Float(0.5), Float(1.5))
	lt(Text("a"), Text("b"))
	lt(Bool(false), Bool(true))
	lt(Dec(decimal.MustParse("1.1")), Dec(decimal.MustParse("1.2")))
	lt(Date(date.New(2024, 1, 1)), Date(date.New(2024, 6, 1)))
	lt(Nil(), Int(0))

	eq, err := Int(5).Compare(Int(5))
	require.NoError(t, err)
	assert.Zero(t, eq)

	_, err = Int(1).Compare(Text("1"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
}

func TestValue_JSONRoundTrip(t *testing.T) {
	vals := []Value{
		Nil(),
		Bool(true),
		Int(-99),
		Float(2.75),
		Text("some text"),
		Dec(decimal.MustParse("123.456")),
		Date(date.New(2023, 12, 31)),
	}

	for _, v := range vals {
		t.Run(string(v.Kind()), func(t *testing.T) {
			data, err := v.MarshalJSON()
			require.NoError(t, err)

			var back Value
			require.NoError(t, back.UnmarshalJSON(data))
			assert.True(t, v.Equal(back), "got %s %s", back.Kind(), back)
		})
	}
}

func TestValue_JSONRejectsGarbage(t *testing.T) {
	var v Value
	err := v.UnmarshalJSON([]byte(`{"kind":"martian","value":1}`))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))

	err = v.UnmarshalJSON([]byte(`{"kind":"int","value":"nope"}`))
	require.Error(t, err)
}
