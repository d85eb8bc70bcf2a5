// Package record assembles decoded grid slots into structured booking
// records, one per (hourly time slot, surface) pair.
//
// Slot instants are computed in the venue's local civil time zone: the
// civil date comes from the scrape instant converted to that zone, the slot
// label supplies the wall-clock time, and the slot end is start plus one
// civil hour. Bookings are sold in wall-clock hours, so the arithmetic is
// calendar arithmetic, not elapsed-duration arithmetic, across DST
// transitions.
//
// Record field names form the schema contract with the downstream
// analytical store and must stay stable across versions.
package record
