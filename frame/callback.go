package frame

import (
	"fmt"

	"github.com/kbukum/dframe/qerr"
)

// Predicate is a boolean row callback bound to input columns by position.
// The typed adapters Pred0 through Pred3 resolve the argument types once
// at construction; evaluation costs one type assertion per argument.
type Predicate interface {
	// NArgs returns the number of column arguments the callback takes.
	NArgs() int
	// Eval invokes the callback with resolved column values.
	Eval(args []any) (bool, error)
}

// Deriver computes a new column value from input columns.
// Results pass through column.Normalize, so callbacks may return int or
// float32 where int64 or float64 columns are meant.
type Deriver interface {
	NArgs() int
	Derive(args []any) (any, error)
}

// RowFunc is a side-effecting per-row callback used by Foreach.
// Under parallel execution it is invoked concurrently from worker
// goroutines and must be safe for that.
type RowFunc interface {
	NArgs() int
	Visit(args []any) error
}

// argAs narrows one resolved column value. A failed assertion carries the
// argument position; the evaluating node fills in the column name.
func argAs[T any](args []any, i int) (T, error) {
	v, ok := args[i].(T)
	if !ok {
		var zero T
		return zero, qerr.TypeMismatch("", fmt.Sprintf("%T", zero), fmt.Sprintf("%T", args[i])).
			WithDetail("arg", i)
	}
	return v, nil
}

// --- Predicate adapters ---

// Pred0 adapts a zero-argument predicate.
func Pred0(fn func() bool) Predicate { return pred0{fn: fn} }

// Pred1 adapts a one-column predicate.
func Pred1[A any](fn func(A) bool) Predicate { return pred1[A]{fn: fn} }

// Pred2 adapts a two-column predicate.
func Pred2[A, B any](fn func(A, B) bool) Predicate { return pred2[A, B]{fn: fn} }

// Pred3 adapts a three-column predicate.
func Pred3[A, B, C any](fn func(A, B, C) bool) Predicate { return pred3[A, B, C]{fn: fn} }

type pred0 struct{ fn func() bool }

func (p pred0) NArgs() int               { return 0 }
func (p pred0) Eval([]any) (bool, error) { return p.fn(), nil }

type pred1[A any] struct{ fn func(A) bool }

func (p pred1[A]) NArgs() int { return 1 }
func (p pred1[A]) Eval(args []any) (bool, error) {
	a, err := argAs[A](args, 0)
	if err != nil {
		return false, err
	}
	return p.fn(a), nil
}

type pred2[A, B any] struct{ fn func(A, B) bool }

func (p pred2[A, B]) NArgs() int { return 2 }
func (p pred2[A, B]) Eval(args []any) (bool, error) {
	a, err := argAs[A](args, 0)
	if err != nil {
		return false, err
	}
	b, err := argAs[B](args, 1)
	if err != nil {
		return false, err
	}
	return p.fn(a, b), nil
}

type pred3[A, B, C any] struct{ fn func(A, B, C) bool }

func (p pred3[A, B, C]) NArgs() int { return 3 }
func (p pred3[A, B, C]) Eval(args []any) (bool, error) {
	a, err := argAs[A](args, 0)
	if err != nil {
		return false, err
	}
	b, err := argAs[B](args, 1)
	if err != nil {
		return false, err
	}
	c, err := argAs[C](args, 2)
	if err != nil {
		return false, err
	}
	return p.fn(a, b, c), nil
}

// --- Deriver adapters ---

// Apply1 adapts a one-column derivation.
func Apply1[A, R any](fn func(A) R) Deriver { return apply1[A, R]{fn: fn} }

// Apply2 adapts a two-column derivation.
func Apply2[A, B, R any](fn func(A, B) R) Deriver { return apply2[A, B, R]{fn: fn} }

type apply1[A, R any] struct{ fn func(A) R }

func (d apply1[A, R]) NArgs() int { return 1 }
func (d apply1[A, R]) Derive(args []any) (any, error) {
	a, err := argAs[A](args, 0)
	if err != nil {
		return nil, err
	}
	return d.fn(a), nil
}

type apply2[A, B, R any] struct{ fn func(A, B) R }

func (d apply2[A, B, R]) NArgs() int { return 2 }
func (d apply2[A, B, R]) Derive(args []any) (any, error) {
	a, err := argAs[A](args, 0)
	if err != nil {
		return nil, err
	}
	b, err := argAs[B](args, 1)
	if err != nil {
		return nil, err
	}
	return d.fn(a, b), nil
}

// --- Foreach adapters ---

// Each0 adapts a zero-argument row callback.
func Each0(fn func()) RowFunc { return each0{fn: fn} }

// Each1 adapts a one-column row callback.
func Each1[A any](fn func(A)) RowFunc { return each1[A]{fn: fn} }

// Each2 adapts a two-column row callback.
func Each2[A, B any](fn func(A, B)) RowFunc { return each2[A, B]{fn: fn} }

type each0 struct{ fn func() }

func (e each0) NArgs() int        { return 0 }
func (e each0) Visit([]any) error { e.fn(); return nil }

type each1[A any] struct{ fn func(A) }

func (e each1[A]) NArgs() int { return 1 }
func (e each1[A]) Visit(args []any) error {
	a, err := argAs[A](args, 0)
	if err != nil {
		return err
	}
	e.fn(a)
	return nil
}

type each2[A, B any] struct{ fn func(A, B) }

func (e each2[A, B]) NArgs() int { return 2 }
func (e each2[A, B]) Visit(args []any) error {
	a, err := argAs[A](args, 0)
	if err != nil {
		return err
	}
	b, err := argAs[B](args, 1)
	if err != nil {
		return err
	}
	e.fn(a, b)
	return nil
}
