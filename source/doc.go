// Package source defines the row source contract consumed by the query
// engine and provides Table, an immutable in-memory columnar store backed
// by Apache Arrow arrays.
//
// A RowSource yields named, typed column values per row index and is
// read-only during a run, so it is safely shared by all workers. Partition
// splits a row range into contiguous per-worker ranges.
package source
