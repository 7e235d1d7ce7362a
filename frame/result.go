package frame

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/dframe/qerr"
)

type runState int

const (
	runPending runState = iota
	runRunning
	runDone
	runFailed
)

// session tracks the run state of one pipeline construction. A pipeline
// runs at most once: the first Get or Run executes it, concurrent readers
// block on the same run, and both the value and a failure are terminal.
type session struct {
	mu    sync.Mutex
	state runState
	err   error
	done  chan struct{}
}

func (s *session) started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != runPending
}

// Result is a deferred handle on an action's value. Reading it forces the
// pipeline to run if it has not already.
type Result[T any] struct {
	df  *DataFrame
	n   *node
	err error
}

func newResult[T any](df *DataFrame, n *node, err error) *Result[T] {
	return &Result[T]{df: df, n: n, err: err}
}

// Get returns the action's value, running the pipeline on first use.
// After a successful run every read returns the identical cached value;
// after a failed run every read returns the run's error.
func (r *Result[T]) Get(ctx context.Context) (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	if err := r.df.Run(ctx); err != nil {
		return zero, err
	}
	v, ok := r.n.act.result.(T)
	if !ok {
		return zero, qerr.Internal(fmt.Sprintf("action produced %T, handle expects %T", r.n.act.result, zero))
	}
	return v, nil
}
