package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindCapacityExceeded   Kind = "capacity_exceeded"
	KindSizeMismatch       Kind = "size_mismatch"
	KindConstructionFailed Kind = "construction_failed"
	KindOutOfRange         Kind = "out_of_range"
	KindTypeMismatch       Kind = "type_mismatch"
	KindMissingCell        Kind = "missing_cell"
	KindInvalidData        Kind = "invalid_data"
	KindClosed             Kind = "closed"
	KindCorruptSnapshot    Kind = "corrupt_snapshot"
	KindStorage            Kind = "storage"
)

// Axis identifies which table dimension an error refers to
type Axis string

const (
	AxisNone   Axis = ""
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Kind   Kind
	Axis   Axis
	Detail string
	Index  int // element or axis index involved, -1 if unknown
	Want   int // expected length or declared limit, -1 if not applicable
	Got    int // actual length supplied, -1 if not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.Axis != AxisNone {
		b.WriteString(" on ")
		b.WriteString(string(e.Axis))
		b.WriteString(" axis")
	}

	if e.Index >= 0 {
		b.WriteString(fmt.Sprintf(" at index %d", e.Index))
	}

	if e.Want >= 0 && e.Got >= 0 {
		b.WriteString(fmt.Sprintf(": want %d, got %d", e.Want, e.Got))
	} else if e.Want >= 0 {
		b.WriteString(fmt.Sprintf(": limit %d", e.Want))
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their kinds are equal, so callers can test against bare-kind sentinels.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder for the given kind
func New(kind Kind) *Builder {
	return &Builder{
		err: Error{
			Kind:  kind,
			Index: -1,
			Want:  -1,
			Got:   -1,
		},
	}
}

// Axis sets the table axis the error refers to
func (b *Builder) Axis(a Axis) *Builder {
	b.err.Axis = a
	return b
}

// Index sets the element index involved
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Want sets the expected length or limit
func (b *Builder) Want(n int) *Builder {
	b.err.Want = n
	return b
}

// Got sets the actual length supplied
func (b *Builder) Got(n int) *Builder {
	b.err.Got = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CapacityExceeded creates an error for a mutation past a fixed axis limit
func CapacityExceeded(axis Axis, limit int) *Error {
	return &Error{
		Kind:  KindCapacityExceeded,
		Axis:  axis,
		Index: -1,
		Want:  limit,
		Got:   -1,
	}
}

// SizeMismatch creates an error for a row/column whose length disagrees
// with the table's orthogonal extent
func SizeMismatch(axis Axis, want, got int) *Error {
	return &Error{
		Kind:  KindSizeMismatch,
		Axis:  axis,
		Index: -1,
		Want:  want,
		Got:   got,
	}
}

// RaggedInput creates a size mismatch error for a non-rectangular grid
// literal, pointing at the offending row
func RaggedInput(row, want, got int) *Error {
	return &Error{
		Kind:   KindSizeMismatch,
		Axis:   AxisRow,
		Index:  row,
		Want:   want,
		Got:    got,
		Detail: "rows must have uniform length",
	}
}

// ConstructionFailed wraps a failure from a fallible element factory,
// carrying the index at which construction stopped
func ConstructionFailed(index int, cause error) *Error {
	return &Error{
		Kind:  KindConstructionFailed,
		Index: index,
		Want:  -1,
		Got:   -1,
		Cause: cause,
	}
}

// OutOfRange creates an error for an index past the current extent
func OutOfRange(axis Axis, index, length int) *Error {
	return &Error{
		Kind:   KindOutOfRange,
		Axis:   axis,
		Index:  index,
		Want:   -1,
		Got:    -1,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
	}
}

// TypeMismatch creates an error for a cell holding a different variant
// than the caller expected
func TypeMismatch(row, col int, want, got string) *Error {
	return &Error{
		Kind:   KindTypeMismatch,
		Index:  row,
		Want:   -1,
		Got:    -1,
		Detail: fmt.Sprintf("cell (%d,%d): want %s, got %s", row, col, want, got),
	}
}

// MissingCell creates an error for a typed-row read that found no usable cell
func MissingCell(row int, column string) *Error {
	return &Error{
		Kind:   KindMissingCell,
		Axis:   AxisRow,
		Index:  row,
		Want:   -1,
		Got:    -1,
		Detail: fmt.Sprintf("missing %s at row %d", column, row),
	}
}

// InvalidData creates an invalid data error
func InvalidData(detail string) *Error {
	return &Error{
		Kind:   KindInvalidData,
		Index:  -1,
		Want:   -1,
		Got:    -1,
		Detail: detail,
	}
}

// Closed creates an error for an operation on a closed store
func Closed(what string) *Error {
	return &Error{
		Kind:   KindClosed,
		Index:  -1,
		Want:   -1,
		Got:    -1,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// CorruptSnapshot creates an error for persisted data that failed validation
func CorruptSnapshot(detail string, cause error) *Error {
	return &Error{
		Kind:   KindCorruptSnapshot,
		Index:  -1,
		Want:   -1,
		Got:    -1,
		Detail: detail,
		Cause:  cause,
	}
}

// Storage wraps an underlying I/O failure from the durable store
func Storage(detail string, cause error) *Error {
	return &Error{
		Kind:   KindStorage,
		Index:  -1,
		Want:   -1,
		Got:    -1,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with a kind and detail
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{
		Kind:   kind,
		Index:  -1,
		Want:   -1,
		Got:    -1,
		Detail: detail,
		Cause:  cause,
	}
}

// IsKind reports whether err is (or wraps) a structured error of the given kind
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
