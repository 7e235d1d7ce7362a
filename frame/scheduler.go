package frame

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/dframe/qerr"
	"github.com/kbukum/dframe/source"
)

// Run executes the pipeline once over all rows. The first call (or the
// first Result read) performs the work; afterwards Run is a no-op
// returning the cached outcome. A failed run is terminal: the error is
// returned on every subsequent call and the pipeline must be rebuilt to
// try again. Concurrent callers during an in-flight run block until it
// finishes or their context is cancelled.
func (df *DataFrame) Run(ctx context.Context) error {
	s := df.sess
	s.mu.Lock()
	switch s.state {
	case runDone:
		s.mu.Unlock()
		return nil
	case runFailed:
		err := s.err
		s.mu.Unlock()
		return err
	case runRunning:
		ch := s.done
		s.mu.Unlock()
		select {
		case <-ch:
			s.mu.Lock()
			err := s.err
			s.mu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.state = runRunning
	s.done = make(chan struct{})
	s.mu.Unlock()

	err := df.execute(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = runFailed
		s.err = err
	} else {
		s.state = runDone
	}
	close(s.done)
	s.mu.Unlock()
	return err
}

func (df *DataFrame) execute(ctx context.Context) error {
	total := df.src.NumRows()
	workers := df.opts.workers
	if workers < 1 {
		workers = 1
	}
	ctx, finish := df.observeRun(ctx, total, workers)

	base := df.newAccSet()
	var err error
	if workers <= 1 {
		err = df.scan(ctx, source.Range{Start: 0, End: total}, base)
	} else {
		err = df.scanParallel(ctx, total, workers, base)
	}
	if err == nil {
		for i, n := range df.actions {
			n.act.result = base[i].final()
		}
	}
	finish(err)
	return err
}

// scanParallel partitions the row range across workers, each with private
// accumulators and a private derive cache, and merges partial results into
// base in ascending range order. Any worker error discards all partials.
func (df *DataFrame) scanParallel(ctx context.Context, total, workers int, base []accumulator) error {
	ranges := source.Partition(total, workers)
	partials := make([][]accumulator, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			accs := df.newAccSet()
			if err := df.scan(gctx, r, accs); err != nil {
				return qerr.Worker(err)
			}
			partials[i] = accs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range partials {
		if err := mergeAccSets(base, p); err != nil {
			return err
		}
	}
	return nil
}

// scan runs the sequential per-row evaluation over one row range.
func (df *DataFrame) scan(ctx context.Context, r source.Range, accs []accumulator) error {
	ec := &evalContext{src: df.src, accs: accs}
	if df.nDerive > 0 {
		ec.derived = make([]any, df.nDerive)
	}
	root := df.Frame.n
	for row := r.Start; row < r.End; row++ {
		if row&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		ec.row = row
		for i := range ec.derived {
			ec.derived[i] = nil
		}
		if err := root.visit(ec); err != nil {
			return err
		}
	}
	return nil
}

func (df *DataFrame) newAccSet() []accumulator {
	accs := make([]accumulator, len(df.actions))
	for i, n := range df.actions {
		accs[i] = n.act.newAcc()
	}
	return accs
}

func mergeAccSets(dst, src []accumulator) error {
	for i := range dst {
		if err := dst[i].merge(src[i]); err != nil {
			return err
		}
	}
	return nil
}
