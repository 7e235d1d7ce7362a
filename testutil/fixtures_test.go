package testutil

import (
	"math"
	"testing"

	"github.com/kbukum/dframe/column"
)

func TestEventTableShape(t *testing.T) {
	tbl, err := EventTable(20, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 20 {
		t.Fatalf("rows = %d, want 20", tbl.NumRows())
	}
	for name, want := range map[string]column.Kind{
		"b1":     column.Float64,
		"b2":     column.Int64,
		"tracks": column.Vec4List,
	} {
		k, err := tbl.Kind(name)
		if err != nil {
			t.Fatalf("kind %q: %v", name, err)
		}
		if k != want {
			t.Fatalf("kind %q = %v, want %v", name, k, want)
		}
	}

	v, err := tbl.Value("b2", column.Int64, 7)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v.(int64) != 49 {
		t.Fatalf("b2[7] = %v, want 49", v)
	}
}

func TestEventTableDeterministic(t *testing.T) {
	a, err := EventTable(10, 5)
	if err != nil {
		t.Fatalf("build a: %v", err)
	}
	defer a.Release()
	b, err := EventTable(10, 5)
	if err != nil {
		t.Fatalf("build b: %v", err)
	}
	defer b.Release()

	for row := 0; row < 10; row++ {
		va, err := a.Value("tracks", column.Vec4List, row)
		if err != nil {
			t.Fatalf("a tracks[%d]: %v", row, err)
		}
		vb, err := b.Value("tracks", column.Vec4List, row)
		if err != nil {
			t.Fatalf("b tracks[%d]: %v", row, err)
		}
		ta, tb := va.([]column.Vec4), vb.([]column.Vec4)
		if len(ta) != len(tb) {
			t.Fatalf("row %d: %d tracks vs %d", row, len(ta), len(tb))
		}
		for j := range ta {
			if ta[j] != tb[j] {
				t.Fatalf("row %d track %d differs: %+v vs %+v", row, j, ta[j], tb[j])
			}
		}
	}
}

func TestTrackKinematics(t *testing.T) {
	tbl, err := EventTable(50, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer tbl.Release()

	seen := 0
	for row := 0; row < 50; row++ {
		v, err := tbl.Value("tracks", column.Vec4List, row)
		if err != nil {
			t.Fatalf("tracks[%d]: %v", row, err)
		}
		for _, trk := range v.([]column.Vec4) {
			seen++
			if trk.E < trk.P() {
				t.Fatalf("row %d: E %v below momentum %v", row, trk.E, trk.P())
			}
			if m := trk.M(); math.Abs(m-0.13957) > 1e-6 {
				t.Fatalf("row %d: mass %v, want pion mass", row, m)
			}
			if eta := trk.Eta(); eta < -3.5 || eta > 3.5 {
				t.Fatalf("row %d: eta %v outside generator range", row, eta)
			}
		}
	}
	if seen == 0 {
		t.Fatal("fixture produced no tracks")
	}
}
