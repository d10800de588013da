// Package alloc implements the fallible backing-store construction
// protocol shared by lists and tables.
//
// Fixed-capacity containers allocate their full backing storage up
// front. When element construction can fail partway through, the
// already-built prefix must be released before the error propagates,
// so that no element leaks and none is dropped twice. Slice and Grid
// encapsulate that protocol: build in index order, and on failure
// drop the prefix in reverse order and surface a construction failure
// carrying the index and cause.
//
// Elements that hold external resources implement Dropper to receive
// the cleanup call. Plain values need nothing.
package alloc
