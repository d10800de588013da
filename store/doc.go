// Package store adds directory-backed durability to any table.
//
// A store.Table wraps an in-memory table with a write-through
// operation log and a checksummed snapshot. Mutations apply to
// memory first and then append a framed, checksummed record to the
// log; Open replays snapshot plus log so the table survives a
// restart, stopping cleanly at a torn tail frame. Flush(true)
// collapses the log into a fresh snapshot.
//
// Log append failures never fail the mutation that already took
// effect in memory. They are stashed in a bounded buffer that
// TakeErrors drains, mirroring the write-behind contract of the
// in-memory table.
//
// Each store carries a persistent uuid identity. Logging goes
// through the package Logger, a no-op unless SetLogger installs one.
package store
