// Package testutil builds fixture tables for engine tests: event-shaped
// data with a linear column, a squared column and a Poisson-distributed
// list of four-momentum tracks per row, generated from a fixed seed so
// tests are reproducible.
package testutil
