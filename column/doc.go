// Package column defines the value model shared by row sources and the
// query engine: the set of supported column kinds, the Vec4 composite
// record used by sequence columns, and numeric coercion helpers.
//
// A column is identified by (name, kind). Within one source a name has a
// single declared kind; values cross the engine boundary as `any` and are
// narrowed exactly once per read by the typed callback adapters.
package column
