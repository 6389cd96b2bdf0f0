// Package store keeps tracks and their position samples in SQLite, the
// source the emitter streams CZML documents from.
//
// # Ordering
//
// Tracks and samples carry a seq column assigned on insert. Every query
// orders by seq, so a document emitted twice from the same database is
// byte-identical. Sample times are stored as RFC 3339 text in UTC with
// nanosecond precision.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
