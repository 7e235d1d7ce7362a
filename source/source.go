package source

import "github.com/kbukum/dframe/column"

// RowSource is the contract the engine consumes: a read-only tabular store
// yielding column values by name and declared kind for a given row index.
type RowSource interface {
	// NumRows returns the total row count.
	NumRows() int
	// Kind returns the declared kind of the named column, or an
	// UnknownColumn error.
	Kind(name string) (column.Kind, error)
	// Value returns the value of the named column at row. It fails with
	// UnknownColumn if the column is absent and TypeMismatch if the
	// declared kind differs from the requested one.
	Value(name string, kind column.Kind, row int) (any, error)
}

// Range is a half-open row-index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, total) into up to workers contiguous ranges in
// ascending order. The last range absorbs the remainder. Fewer ranges are
// returned when total < workers; a non-positive total yields none.
func Partition(total, workers int) []Range {
	if total <= 0 {
		return nil
	}
	if workers <= 1 || total <= workers {
		if workers <= 1 {
			return []Range{{Start: 0, End: total}}
		}
		ranges := make([]Range, total)
		for i := range ranges {
			ranges[i] = Range{Start: i, End: i + 1}
		}
		return ranges
	}

	size := total / workers
	ranges := make([]Range, workers)
	for i := 0; i < workers; i++ {
		ranges[i] = Range{Start: i * size, End: (i + 1) * size}
	}
	ranges[workers-1].End = total
	return ranges
}
