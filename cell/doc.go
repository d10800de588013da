// Package cell provides a tagged-union value type for heterogeneous
// tables.
//
// Value holds one of seven variants: Nil, Bool, Int, Float, Text,
// Decimal (exact arithmetic via govalues/decimal), and Date (calendar
// dates via rickb777/date). The core containers treat it as an
// opaque element type; nothing in the table layer depends on it.
//
// Parse converts raw text to the most specific variant that accepts
// it, which is how CSV input becomes typed cells. Values marshal to
// a tagged JSON shape so variants survive a round trip.
package cell
