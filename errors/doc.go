// Package errors provides structured error types for the memtable library.
//
// Errors are categorized by Kind (error category) and, where relevant,
// by the table Axis they refer to. The Error type carries rich context:
// the index involved, the expected and actual lengths, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.KindSizeMismatch).
//		Axis(errors.AxisRow).
//		Want(3).
//		Got(5).
//		Detail("row does not match table width").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.CapacityExceeded(errors.AxisRow, 4)
//	err := errors.SizeMismatch(errors.AxisColumn, 3, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares kinds only, so sentinel values like
// errors.CapacityExceeded(errors.AxisRow, 0) can be used as targets.
package errors
