// Package qerr provides structured errors for the query engine.
//
// Errors fall into three families: construction errors (raised while the
// pipeline graph is being built, never during a run), resolution errors
// (raised while rows are evaluated, terminating the run), and worker
// errors (wrapping the first failure inside a parallel scan).
package qerr
