package testutil

import (
	"math"
	"math/rand"

	"github.com/kbukum/dframe/column"
	"github.com/kbukum/dframe/source"
)

// pion mass, the particle assumed for track energies.
const trackMass = 0.13957

// EventTable builds an n-row fixture table with columns:
//
//	b1      float64   row index
//	b2      int64     row index squared
//	tracks  []Vec4    Poisson(mu)-distributed random four-momenta
//
// The same n and mu always produce the same table.
func EventTable(n int, mu float64) (*source.Table, error) {
	rng := rand.New(rand.NewSource(1))

	b1 := make([]float64, n)
	b2 := make([]int64, n)
	tracks := make([][]column.Vec4, n)
	for i := 0; i < n; i++ {
		b1[i] = float64(i)
		b2[i] = int64(i) * int64(i)
		tracks[i] = randomTracks(rng, poisson(rng, mu))
	}

	b := source.NewTableBuilder()
	if err := b.AddFloat64("b1", b1); err != nil {
		return nil, err
	}
	if err := b.AddInt64("b2", b2); err != nil {
		return nil, err
	}
	if err := b.AddVec4List("tracks", tracks); err != nil {
		return nil, err
	}
	return b.Build()
}

// ScalarTable builds a minimal two-column table (b1 float64, b2 int64)
// for tests that do not need sequence columns.
func ScalarTable(n int) (*source.Table, error) {
	b1 := make([]float64, n)
	b2 := make([]int64, n)
	for i := 0; i < n; i++ {
		b1[i] = float64(i)
		b2[i] = int64(i) * int64(i)
	}
	b := source.NewTableBuilder()
	if err := b.AddFloat64("b1", b1); err != nil {
		return nil, err
	}
	if err := b.AddInt64("b2", b2); err != nil {
		return nil, err
	}
	return b.Build()
}

func randomTracks(rng *rand.Rand, n int) []column.Vec4 {
	tracks := make([]column.Vec4, 0, n)
	for j := 0; j < n; j++ {
		px := rng.NormFloat64() * 10
		py := rng.NormFloat64() * 10
		pt := math.Hypot(px, py)
		eta := -3 + 6*rng.Float64()
		phi := 2 * math.Pi * rng.Float64()

		v := column.FromCylindrical(pt, eta, phi, 0)
		v.E = math.Sqrt(v.P()*v.P() + trackMass*trackMass)
		tracks = append(tracks, v)
	}
	return tracks
}

// poisson samples a Poisson(mu) count by Knuth's product method; mu stays
// small in fixtures so the linear cost is fine.
func poisson(rng *rand.Rand, mu float64) int {
	l := math.Exp(-mu)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
