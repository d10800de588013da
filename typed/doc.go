// Package typed maps Go structs onto cell tables.
//
// A typed.Table compiles the shape of its row struct once at
// construction: exported fields in declaration order become columns,
// labeled by the "table" struct tag when present. Pushing a struct
// converts each field to the matching cell variant; reading a row
// reassembles the struct and rejects cells whose variant disagrees
// with the field type.
//
// Supported field types are bool, string, the signed integer kinds,
// floats, decimal.Decimal, date.Date, and raw cell.Value for columns
// that stay dynamic.
package typed
