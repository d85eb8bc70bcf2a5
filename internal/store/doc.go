// Package store persists structured booking records into a local SQLite
// database, the repo's edge toward the downstream analytical warehouse.
//
// Columns mirror the record schema one-to-one; instants are stored as
// RFC3339 strings so the UTC offset (including DST) survives round trips.
package store
