// Package memtable provides in-memory tabular data containers for Go.
//
// Tables are rectangular collections of cells addressed by zero-based
// row and column. One generic implementation serves four growth
// variants, chosen per axis at construction: an axis is either
// dynamic (grows on demand) or fixed (storage bounded up front, with
// a virtual length inside it).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	memtable/            Root package re-exporting the core contract
//	├── table/           Table contract, the generic Grid, positional iteration
//	├── list/            Dynamic and fixed sequence backing stores
//	├── alloc/           Fallible construction protocol with cleanup on failure
//	├── cell/            Tagged-union cell values (bool, int, decimal, date, ...)
//	├── csvio/           CSV reading and writing over the table contract
//	├── store/           Directory-backed snapshot + operation log durability
//	├── typed/           Struct-to-columns mapping via reflection
//	└── errors/          Structured error types
//
// # Quick Start
//
// Build a table and walk its cells:
//
//	t := table.New[string]()
//	t.PushRow([]string{"a", "b", "c"})
//	t.PushRow([]string{"d", "e", "f"})
//
//	it := t.Cells()
//	for {
//	    pos, v, ok := it.NextWithPos()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(pos.Row, pos.Col, v)
//	}
//
// Fixed variants reject growth past their limits with typed errors:
//
//	f := table.NewFixedRows[int](2)
//	f.PushRow([]int{1})
//	f.PushRow([]int{2})
//	err := f.PushRow([]int{3}) // capacity_exceeded on row axis
//
// # Error Model
//
// Accessors never fail; they report absence through comma-ok returns
// or nil pointers. Mutations that would break the rectangular shape
// or exceed a fixed limit fail atomically with a structured error
// from the errors package, matchable by kind with errors.Is.
//
// # Thread Safety
//
// Tables are plain data structures and are NOT safe for concurrent
// mutation. Use external synchronization or confine each table to a
// single goroutine.
package memtable
