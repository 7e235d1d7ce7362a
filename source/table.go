package source

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/kbukum/dframe/column"
	"github.com/kbukum/dframe/qerr"
)

// Table is an immutable in-memory columnar store. Scalar columns are
// backed by Apache Arrow arrays; sequence columns are stored as native
// slices-per-row. Immutable after Build and safe for concurrent readers.
type Table struct {
	nrows int
	kinds map[string]column.Kind
	names []string

	floats   map[string]*array.Float64
	ints     map[string]*array.Int64
	bools    map[string]*array.Boolean
	fseqs    map[string][][]float64
	vecs     map[string][][]column.Vec4
	released bool
}

// NumRows returns the total row count.
func (t *Table) NumRows() int { return t.nrows }

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Kind returns the declared kind of the named column.
func (t *Table) Kind(name string) (column.Kind, error) {
	k, ok := t.kinds[name]
	if !ok {
		return column.Unknown, qerr.UnknownColumn(name)
	}
	return k, nil
}

// Value returns the value of the named column at row.
func (t *Table) Value(name string, kind column.Kind, row int) (any, error) {
	k, ok := t.kinds[name]
	if !ok {
		return nil, qerr.UnknownColumn(name)
	}
	if k != kind {
		return nil, qerr.TypeMismatch(name, kind.String(), k.String())
	}
	if row < 0 || row >= t.nrows {
		return nil, qerr.Internal(fmt.Sprintf("row %d out of range [0, %d)", row, t.nrows))
	}

	switch k {
	case column.Float64:
		return t.floats[name].Value(row), nil
	case column.Int64:
		return t.ints[name].Value(row), nil
	case column.Bool:
		return t.bools[name].Value(row), nil
	case column.Float64List:
		return t.fseqs[name][row], nil
	case column.Vec4List:
		return t.vecs[name][row], nil
	default:
		return nil, qerr.Internal(fmt.Sprintf("column %q has unsupported kind %v", name, k))
	}
}

// Release frees the arrow buffers backing the scalar columns. The table
// must not be read afterwards.
func (t *Table) Release() {
	if t.released {
		return
	}
	t.released = true
	for _, arr := range t.floats {
		arr.Release()
	}
	for _, arr := range t.ints {
		arr.Release()
	}
	for _, arr := range t.bools {
		arr.Release()
	}
}

// TableBuilder assembles a Table column by column. All columns must have
// the same length.
type TableBuilder struct {
	mem   memory.Allocator
	nrows int
	names []string
	kinds map[string]column.Kind

	floats map[string][]float64
	ints   map[string][]int64
	bools  map[string][]bool
	fseqs  map[string][][]float64
	vecs   map[string][][]column.Vec4
}

// NewTableBuilder creates an empty builder using the Go allocator.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		mem:    memory.NewGoAllocator(),
		nrows:  -1,
		kinds:  make(map[string]column.Kind),
		floats: make(map[string][]float64),
		ints:   make(map[string][]int64),
		bools:  make(map[string][]bool),
		fseqs:  make(map[string][][]float64),
		vecs:   make(map[string][][]column.Vec4),
	}
}

func (b *TableBuilder) declare(name string, kind column.Kind, n int) error {
	if _, exists := b.kinds[name]; exists {
		return qerr.DuplicateColumn(name)
	}
	if b.nrows >= 0 && b.nrows != n {
		return fmt.Errorf("column %q has %d rows, table has %d", name, n, b.nrows)
	}
	b.nrows = n
	b.kinds[name] = kind
	b.names = append(b.names, name)
	return nil
}

// AddFloat64 declares a float64 scalar column.
func (b *TableBuilder) AddFloat64(name string, vals []float64) error {
	if err := b.declare(name, column.Float64, len(vals)); err != nil {
		return err
	}
	b.floats[name] = vals
	return nil
}

// AddInt64 declares an int64 scalar column.
func (b *TableBuilder) AddInt64(name string, vals []int64) error {
	if err := b.declare(name, column.Int64, len(vals)); err != nil {
		return err
	}
	b.ints[name] = vals
	return nil
}

// AddBool declares a boolean scalar column.
func (b *TableBuilder) AddBool(name string, vals []bool) error {
	if err := b.declare(name, column.Bool, len(vals)); err != nil {
		return err
	}
	b.bools[name] = vals
	return nil
}

// AddFloat64List declares a per-row float sequence column.
func (b *TableBuilder) AddFloat64List(name string, vals [][]float64) error {
	if err := b.declare(name, column.Float64List, len(vals)); err != nil {
		return err
	}
	b.fseqs[name] = vals
	return nil
}

// AddVec4List declares a per-row Vec4 sequence column.
func (b *TableBuilder) AddVec4List(name string, vals [][]column.Vec4) error {
	if err := b.declare(name, column.Vec4List, len(vals)); err != nil {
		return err
	}
	b.vecs[name] = vals
	return nil
}

// Build materializes the table, moving scalar columns into arrow arrays.
// The builder must not be reused afterwards.
func (b *TableBuilder) Build() (*Table, error) {
	if b.nrows < 0 {
		return nil, fmt.Errorf("table has no columns")
	}

	t := &Table{
		nrows:  b.nrows,
		kinds:  b.kinds,
		names:  b.names,
		floats: make(map[string]*array.Float64, len(b.floats)),
		ints:   make(map[string]*array.Int64, len(b.ints)),
		bools:  make(map[string]*array.Boolean, len(b.bools)),
		fseqs:  b.fseqs,
		vecs:   b.vecs,
	}

	for name, vals := range b.floats {
		bld := array.NewFloat64Builder(b.mem)
		bld.AppendValues(vals, nil)
		t.floats[name] = bld.NewFloat64Array()
		bld.Release()
	}
	for name, vals := range b.ints {
		bld := array.NewInt64Builder(b.mem)
		bld.AppendValues(vals, nil)
		t.ints[name] = bld.NewInt64Array()
		bld.Release()
	}
	for name, vals := range b.bools {
		bld := array.NewBooleanBuilder(b.mem)
		bld.AppendValues(vals, nil)
		t.bools[name] = bld.NewBooleanArray()
		bld.Release()
	}

	return t, nil
}
