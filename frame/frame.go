package frame

import (
	"github.com/kbukum/dframe/config"
	"github.com/kbukum/dframe/logger"
	"github.com/kbukum/dframe/obs"
	"github.com/kbukum/dframe/qerr"
	"github.com/kbukum/dframe/source"
)

type options struct {
	defaults []string
	workers  int
	bins     int
	log      *logger.Logger
	metrics  *obs.Metrics
}

// Option configures a DataFrame.
type Option func(*options)

// WithDefaultColumns sets the default-column list: Filter, AddBranch and
// Foreach calls that omit explicit columns bind the callback arguments to
// this list positionally.
func WithDefaultColumns(cols ...string) Option {
	return func(o *options) { o.defaults = cols }
}

// WithWorkers sets the number of row-range workers used by Run. 1 (the
// default) runs sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithHistogramBins sets the default bin count for Histo actions.
func WithHistogramBins(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.bins = n
		}
	}
}

// WithLogger sets the run logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics enables per-run metric recording.
func WithMetrics(m *obs.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// DataFrame roots a pipeline over a row source. The embedded Frame is the
// source node, so filters, branches and actions chain directly off it.
// Construction is single-goroutine; a built pipeline and its run results
// may be read from any goroutine.
type DataFrame struct {
	Frame

	src     source.RowSource
	opts    options
	sess    *session
	actions []*node
	nDerive int
}

// Frame is a handle on one node of the pipeline tree. Chaining calls
// create child nodes and return new handles; the receiver is never
// mutated, so sibling branches are independent.
type Frame struct {
	df *DataFrame
	n  *node
}

// New creates a DataFrame over a row source.
func New(src source.RowSource, opts ...Option) *DataFrame {
	o := options{workers: 1, bins: 64, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	df := &DataFrame{src: src, opts: o, sess: &session{}}
	df.Frame = Frame{df: df, n: &node{kind: nodeSource}}
	return df
}

// NewFromConfig creates a DataFrame configured from engine settings.
// Explicit options override the configuration.
func NewFromConfig(src source.RowSource, cfg config.Engine, opts ...Option) *DataFrame {
	cfg.ApplyDefaults()
	base := []Option{
		WithWorkers(cfg.Workers),
		WithHistogramBins(cfg.HistogramBins),
		WithLogger(logger.New(&cfg.Logging, "dframe")),
	}
	return New(src, append(base, opts...)...)
}

// bindColumns resolves the column list for a callback of the given arity:
// explicit columns win, then the default-column list; either must match
// the arity exactly. Zero-arity callbacks bind no columns.
func (df *DataFrame) bindColumns(nargs int, explicit []string) ([]string, error) {
	if nargs == 0 {
		if len(explicit) > 0 {
			return nil, qerr.ArityMismatch(0, len(explicit))
		}
		return nil, nil
	}
	cols := explicit
	if len(cols) == 0 {
		cols = df.opts.defaults
	}
	if len(cols) != nargs {
		return nil, qerr.ArityMismatch(nargs, len(cols))
	}
	return append([]string(nil), cols...), nil
}

// Filter creates a filter node: rows reach the new node's subtree only
// when the predicate is true. Omitted columns fall back to the pipeline's
// default-column list.
func (f Frame) Filter(pred Predicate, cols ...string) (Frame, error) {
	if f.df.sess.started() {
		return Frame{}, qerr.PipelineClosed()
	}
	bound, err := f.df.bindColumns(pred.NArgs(), cols)
	if err != nil {
		return Frame{}, err
	}
	child := &node{kind: nodeFilter, cols: bound, pred: pred, parent: f.n}
	f.n.children = append(f.n.children, child)
	return Frame{df: f.df, n: child}, nil
}

// AddBranch creates a derive node computing a new column per row. The
// column is resolvable only within the new node's subtree and its name
// must not collide with a source column or an ancestor branch.
func (f Frame) AddBranch(name string, der Deriver, cols ...string) (Frame, error) {
	if f.df.sess.started() {
		return Frame{}, qerr.PipelineClosed()
	}
	for a := f.n; a != nil; a = a.parent {
		if a.kind == nodeDerive && a.name == name {
			return Frame{}, qerr.DuplicateColumn(name)
		}
	}
	if _, err := f.df.src.Kind(name); err == nil {
		return Frame{}, qerr.DuplicateColumn(name)
	}
	bound, err := f.df.bindColumns(der.NArgs(), cols)
	if err != nil {
		return Frame{}, err
	}
	child := &node{kind: nodeDerive, name: name, cols: bound, der: der, parent: f.n, slot: f.df.nDerive}
	f.df.nDerive++
	f.n.children = append(f.n.children, child)
	return Frame{df: f.df, n: child}, nil
}

// Foreach registers a per-row callback action. Omitted columns fall back
// to the default-column list. Under parallel execution the callback runs
// concurrently from worker goroutines.
func (f Frame) Foreach(fn RowFunc, cols ...string) error {
	if f.df.sess.started() {
		return qerr.PipelineClosed()
	}
	bound, err := f.df.bindColumns(fn.NArgs(), cols)
	if err != nil {
		return err
	}
	f.addAction(bound, func() accumulator { return &eachAcc{fn: fn} })
	return nil
}

// Count returns a handle on the number of rows reaching this node.
func (f Frame) Count() *Result[int64] {
	if f.df.sess.started() {
		return newResult[int64](f.df, nil, qerr.PipelineClosed())
	}
	n := f.addAction(nil, func() accumulator { return &countAcc{} })
	return newResult[int64](f.df, n, nil)
}

// Min returns a handle on the minimum of a numeric column, or +Inf when
// nothing is filled. Float sequence columns contribute one value per
// element.
func (f Frame) Min(col string) *Result[float64] {
	if f.df.sess.started() {
		return newResult[float64](f.df, nil, qerr.PipelineClosed())
	}
	n := f.addAction([]string{col}, func() accumulator { return newMinAcc(col) })
	return newResult[float64](f.df, n, nil)
}

// Max returns a handle on the maximum of a numeric column, or -Inf when
// nothing is filled.
func (f Frame) Max(col string) *Result[float64] {
	if f.df.sess.started() {
		return newResult[float64](f.df, nil, qerr.PipelineClosed())
	}
	n := f.addAction([]string{col}, func() accumulator { return newMaxAcc(col) })
	return newResult[float64](f.df, n, nil)
}

// Mean returns a handle on the mean of a numeric column, or 0 when
// nothing is filled. Sequence columns are averaged over their elements.
func (f Frame) Mean(col string) *Result[float64] {
	if f.df.sess.started() {
		return newResult[float64](f.df, nil, qerr.PipelineClosed())
	}
	n := f.addAction([]string{col}, func() accumulator { return &meanAcc{col: col} })
	return newResult[float64](f.df, n, nil)
}

// HistoOption configures a Histo action.
type HistoOption func(*histSpec)

// HistoBins overrides the bin count for one histogram.
func HistoBins(n int) HistoOption {
	return func(s *histSpec) {
		if n >= 1 {
			s.bins = n
		}
	}
}

// HistoRange fixes the histogram range. Without it the range is computed
// from the data at merge time.
func HistoRange(lo, hi float64) HistoOption {
	return func(s *histSpec) {
		s.lo, s.hi = lo, hi
		s.fixed = true
	}
}

// Histo returns a handle on a histogram of a numeric column. A float
// sequence column fills one entry per element.
func (f Frame) Histo(col string, opts ...HistoOption) *Result[*Histogram] {
	if f.df.sess.started() {
		return newResult[*Histogram](f.df, nil, qerr.PipelineClosed())
	}
	spec := histSpec{col: col, bins: f.df.opts.bins}
	for _, opt := range opts {
		opt(&spec)
	}
	n := f.addAction([]string{col}, func() accumulator { return newHistAcc(spec) })
	return newResult[*Histogram](f.df, n, nil)
}

// Take returns a handle on the materialized values of a column, ordered
// by row index for any worker count. T must match the column's Go type
// exactly.
func Take[T any](f Frame, col string) *Result[[]T] {
	if f.df.sess.started() {
		return newResult[[]T](f.df, nil, qerr.PipelineClosed())
	}
	n := f.addAction([]string{col}, func() accumulator { return newListAcc[T](col) })
	return newResult[[]T](f.df, n, nil)
}

func (f Frame) addAction(cols []string, mk func() accumulator) *node {
	n := &node{
		kind:   nodeAction,
		cols:   cols,
		slot:   len(f.df.actions),
		act:    &action{newAcc: mk},
		parent: f.n,
	}
	f.n.children = append(f.n.children, n)
	f.df.actions = append(f.df.actions, n)
	return n
}
