package frame

import (
	"fmt"
	"math"

	"github.com/kbukum/dframe/column"
	"github.com/kbukum/dframe/qerr"
)

// accumulator is the per-worker state of one action. Workers own private
// instances; after the scan a single-threaded merge combines them in
// ascending row-range order and final produces the action's result.
type accumulator interface {
	update(args []any) error
	merge(other accumulator) error
	final() any
}

// action holds the accumulator factory of an action node and, after a
// successful run, its finalized result.
type action struct {
	newAcc func() accumulator
	result any
}

// numericEach feeds the numeric values carried by one column argument to
// fn. Scalar float64 and int64 columns yield one value per row; float
// sequence columns fan out, one value per element.
func numericEach(v any, col string, fn func(float64)) error {
	if f, ok := column.AsFloat64(v); ok {
		fn(f)
		return nil
	}
	if fs, ok := v.([]float64); ok {
		for _, f := range fs {
			fn(f)
		}
		return nil
	}
	return qerr.TypeMismatch(col, "numeric scalar or []float64", fmt.Sprintf("%T", v))
}

// --- Count ---

type countAcc struct {
	n int64
}

func (a *countAcc) update([]any) error { a.n++; return nil }

func (a *countAcc) merge(other accumulator) error {
	a.n += other.(*countAcc).n
	return nil
}

func (a *countAcc) final() any { return a.n }

// --- Min / Max ---

type minAcc struct {
	col string
	v   float64
}

func newMinAcc(col string) *minAcc { return &minAcc{col: col, v: math.Inf(1)} }

func (a *minAcc) update(args []any) error {
	return numericEach(args[0], a.col, func(f float64) {
		if f < a.v {
			a.v = f
		}
	})
}

func (a *minAcc) merge(other accumulator) error {
	if o := other.(*minAcc); o.v < a.v {
		a.v = o.v
	}
	return nil
}

func (a *minAcc) final() any { return a.v }

type maxAcc struct {
	col string
	v   float64
}

func newMaxAcc(col string) *maxAcc { return &maxAcc{col: col, v: math.Inf(-1)} }

func (a *maxAcc) update(args []any) error {
	return numericEach(args[0], a.col, func(f float64) {
		if f > a.v {
			a.v = f
		}
	})
}

func (a *maxAcc) merge(other accumulator) error {
	if o := other.(*maxAcc); o.v > a.v {
		a.v = o.v
	}
	return nil
}

func (a *maxAcc) final() any { return a.v }

// --- Mean ---

type meanAcc struct {
	col string
	sum float64
	n   int64
}

func (a *meanAcc) update(args []any) error {
	return numericEach(args[0], a.col, func(f float64) {
		a.sum += f
		a.n++
	})
}

func (a *meanAcc) merge(other accumulator) error {
	o := other.(*meanAcc)
	a.sum += o.sum
	a.n += o.n
	return nil
}

func (a *meanAcc) final() any {
	if a.n == 0 {
		return 0.0
	}
	return a.sum / float64(a.n)
}

// --- Histogram ---

type histSpec struct {
	col   string
	bins  int
	lo    float64
	hi    float64
	fixed bool
}

type histAcc struct {
	spec histSpec
	// fixed binning fills hist directly and merges bin-wise; auto binning
	// buffers values so the range is known before binning.
	hist *Histogram
	buf  []float64
}

func newHistAcc(spec histSpec) *histAcc {
	a := &histAcc{spec: spec}
	if spec.fixed {
		a.hist = newHistogram(spec.bins, spec.lo, spec.hi)
	}
	return a
}

func (a *histAcc) update(args []any) error {
	return numericEach(args[0], a.spec.col, func(f float64) {
		if a.spec.fixed {
			a.hist.Fill(f)
		} else {
			a.buf = append(a.buf, f)
		}
	})
}

func (a *histAcc) merge(other accumulator) error {
	o := other.(*histAcc)
	if a.spec.fixed {
		return a.hist.merge(o.hist)
	}
	a.buf = append(a.buf, o.buf...)
	return nil
}

func (a *histAcc) final() any {
	if a.spec.fixed {
		return a.hist
	}
	return autoHistogram(a.spec.bins, a.buf)
}

// --- Foreach ---

type eachAcc struct {
	fn RowFunc
}

func (a *eachAcc) update(args []any) error { return a.fn.Visit(args) }
func (a *eachAcc) merge(accumulator) error { return nil }
func (a *eachAcc) final() any              { return nil }

// --- Take ---

type listAcc[T any] struct {
	col  string
	vals []T
}

func newListAcc[T any](col string) *listAcc[T] { return &listAcc[T]{col: col} }

func (a *listAcc[T]) update(args []any) error {
	v, ok := args[0].(T)
	if !ok {
		var zero T
		return qerr.TypeMismatch(a.col, fmt.Sprintf("%T", zero), fmt.Sprintf("%T", args[0]))
	}
	a.vals = append(a.vals, v)
	return nil
}

func (a *listAcc[T]) merge(other accumulator) error {
	a.vals = append(a.vals, other.(*listAcc[T]).vals...)
	return nil
}

func (a *listAcc[T]) final() any { return a.vals }
