// Package csvio moves tables across the CSV boundary.
//
// The core containers own no text syntax; this package adapts
// encoding/csv to the table contract using only row-major iteration
// and PushRow. Read produces string tables, ReadTyped converts each
// field with cell.Parse, and the writers render any table back out.
// Ragged input is rejected with the index of the offending record.
package csvio
