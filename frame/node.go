package frame

import (
	"errors"

	"github.com/kbukum/dframe/column"
	"github.com/kbukum/dframe/qerr"
)

type nodeKind int

const (
	nodeSource nodeKind = iota
	nodeFilter
	nodeDerive
	nodeAction
)

// node is one vertex of the operation tree. Nodes are immutable after
// construction except for the child list of their parent, which grows as
// the pipeline is built; runs never mutate the tree.
type node struct {
	kind nodeKind
	// name is the derived column name for derive nodes.
	name string
	// cols are the input column names, positionally bound to the callback.
	cols []string
	// slot indexes the per-worker derive cache (derive nodes) or the
	// per-worker accumulator set (action nodes).
	slot int

	pred Predicate
	der  Deriver
	act  *action

	parent   *node
	children []*node
}

// evalContext is the per-worker mutable state of a scan: the current row,
// the row-scoped derived-value cache and the worker-local accumulators.
// Nothing in it is shared between workers.
type evalContext struct {
	src     rowSource
	row     int
	derived []any
	accs    []accumulator
}

// rowSource is the narrow view of source.RowSource the evaluator needs.
type rowSource interface {
	Kind(name string) (column.Kind, error)
	Value(name string, kind column.Kind, row int) (any, error)
}

// visit evaluates the subtree rooted at n for the current row, depth
// first, children in construction order. Each node on the path to every
// reachable action evaluates exactly once per row.
func (n *node) visit(ec *evalContext) error {
	switch n.kind {
	case nodeFilter:
		args, err := n.resolveArgs(ec)
		if err != nil {
			return err
		}
		pass, err := n.pred.Eval(args)
		if err != nil {
			return n.nameArg(err)
		}
		if !pass {
			return nil
		}
	case nodeDerive:
		args, err := n.resolveArgs(ec)
		if err != nil {
			return err
		}
		v, err := n.der.Derive(args)
		if err != nil {
			return n.nameArg(err)
		}
		ec.derived[n.slot] = column.Normalize(v)
	case nodeAction:
		args, err := n.resolveArgs(ec)
		if err != nil {
			return err
		}
		if err := ec.accs[n.slot].update(args); err != nil {
			return n.nameArg(err)
		}
		return nil
	}

	for _, c := range n.children {
		if err := c.visit(ec); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) resolveArgs(ec *evalContext) ([]any, error) {
	if len(n.cols) == 0 {
		return nil, nil
	}
	args := make([]any, len(n.cols))
	for i, col := range n.cols {
		v, err := n.resolveColumn(col, ec)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// resolveColumn looks up one column value for the current row: derived
// columns on the ancestor chain win (their value is already cached, since
// parents evaluate before children), otherwise the row source is asked.
func (n *node) resolveColumn(name string, ec *evalContext) (any, error) {
	for a := n.parent; a != nil; a = a.parent {
		if a.kind == nodeDerive && a.name == name {
			return ec.derived[a.slot], nil
		}
	}
	k, err := ec.src.Kind(name)
	if err != nil {
		return nil, err
	}
	return ec.src.Value(name, k, ec.row)
}

// nameArg enriches a positional type-mismatch error from a callback
// adapter with the column name bound at that position.
func (n *node) nameArg(err error) error {
	var qe *qerr.Error
	if errors.As(err, &qe) && qe.Code == qerr.ErrCodeTypeMismatch {
		if _, named := qe.Details["column"]; !named {
			if idx, ok := qe.Details["arg"].(int); ok && idx >= 0 && idx < len(n.cols) {
				qe.WithDetail("column", n.cols[idx])
			}
		}
	}
	return err
}
