// Package frame implements a lazy, composable query engine over columnar
// row sources.
//
// A DataFrame roots a tree of operation nodes: filters gate their subtree,
// branches derive new columns visible to their descendants, and actions
// (Count, Min, Max, Mean, Histo, Foreach, Take) accumulate terminal
// results. Building the tree does no work: every action returns a
// deferred Result handle, and the whole reachable graph executes in a
// single pass over the rows when the first handle is read or Run is
// called. Actions sharing an upstream chain therefore amortize row
// decoding and predicate evaluation.
//
//	df := frame.New(table, frame.WithDefaultColumns("b1"))
//	sel, err := df.Filter(frame.Pred1(func(b1 float64) bool { return b1 < 5 }))
//	count := sel.Count()
//	n, err := count.Get(ctx) // triggers the run
//
// With WithWorkers(n), a run partitions the row range across n goroutines,
// each owning private accumulators, and merges partial results in row-range
// order so that every result is identical to a sequential run.
package frame
