// Package store provides SQLite-backed storage for generated datasets.
//
// Every generation run is recorded with the configuration that produced it,
// its seed, and the dataset digest, followed by one curves row per dataset
// row holding the control points, attempt counters, and the potential and
// derivative curves.
//
// # Conventions
//
//   - Runs are ordered by seq, an autoincrement logical counter, never by
//     created_at. created_at is informational.
//   - Curves are always read ORDER BY row_index ASC so a stored dataset
//     comes back in row order.
//   - Curves are stored as little-endian IEEE-754 float64 blobs. A NULL
//     derivative means the run was generated without derivatives.
//   - Seeds are stored as the int64 bit pattern of the uint64 seed.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
