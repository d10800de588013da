// Package list provides the sequence abstraction tables are composed
// from.
//
// Two implementations share the List contract. Dynamic is a growable
// slice-backed list with no upper limit. Fixed allocates its backing
// storage once at a declared capacity and tracks a virtual length
// inside it: pushes past the capacity fail with a typed error, reads
// past the virtual length report absence, and shrinking zeroes the
// released slots so stale values never leak back out.
//
// Capacity describes an axis in one value: Max < 0 is unbounded,
// Max >= 0 is fixed. Tables combine one Capacity per axis to derive
// the four growth variants from a single implementation.
package list
