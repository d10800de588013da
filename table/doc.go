// Package table implements the tabular data containers.
//
// A single generic Grid satisfies the Table contract for all four
// capacity variants. Each axis carries a list.Capacity: unbounded
// axes grow on demand, bounded axes are fixed at construction and
// reject growth past their limit with a typed error. The variants
// come from the constructors:
//
//	New[T]()               both axes dynamic
//	NewFixed[T](r, c)      both axes fixed
//	NewFixedRows[T](r)     fixed rows, dynamic columns
//	NewFixedCols[T](c)     dynamic rows, fixed columns
//
// Tables are always rectangular. Mutations that would break the
// shape or exceed a limit fail atomically; accessors report absence
// for out-of-range coordinates and never fail. CellIter walks cells
// in row-major or column-major order and exposes the position of the
// upcoming cell, so callers can pair values with coordinates.
//
// Grid marshals to and from the stable JSON shape
// {rows, cols, cells} with cells row-major; the capacity variant is
// a property of the receiving table, not of the payload.
//
// Tables are not safe for concurrent mutation. A single writer or
// external synchronization is the caller's responsibility.
package table
