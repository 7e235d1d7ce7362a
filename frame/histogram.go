package frame

import (
	"math"

	"github.com/kbukum/dframe/qerr"
)

// Histogram is a fixed-binning numeric accumulator. Values below the
// range count as underflow, values above as overflow; the upper edge is
// inclusive so the maximum of an auto-ranged histogram lands in the last
// bin. Entries, Sum and Mean cover every fill including under/overflow.
type Histogram struct {
	lo, hi, width float64
	bins          []int64
	entries       int64
	sum           float64
	sum2          float64
	under, over   int64
}

func newHistogram(nbins int, lo, hi float64) *Histogram {
	if nbins < 1 {
		nbins = 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &Histogram{
		lo:    lo,
		hi:    hi,
		width: (hi - lo) / float64(nbins),
		bins:  make([]int64, nbins),
	}
}

// autoHistogram bins a buffered value set over its own [min, max] range.
func autoHistogram(nbins int, vals []float64) *Histogram {
	if len(vals) == 0 {
		return newHistogram(nbins, 0, 1)
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	h := newHistogram(nbins, lo, hi)
	for _, v := range vals {
		h.Fill(v)
	}
	return h
}

// Fill adds one value to the histogram.
func (h *Histogram) Fill(x float64) {
	h.entries++
	h.sum += x
	h.sum2 += x * x

	switch {
	case x < h.lo:
		h.under++
	case x > h.hi:
		h.over++
	default:
		idx := int((x - h.lo) / h.width)
		if idx >= len(h.bins) {
			idx = len(h.bins) - 1
		}
		h.bins[idx]++
	}
}

// merge adds another histogram with identical binning bin-wise.
func (h *Histogram) merge(o *Histogram) error {
	if len(h.bins) != len(o.bins) || h.lo != o.lo || h.hi != o.hi {
		return qerr.Internal("merging histograms with different binning")
	}
	for i, c := range o.bins {
		h.bins[i] += c
	}
	h.entries += o.entries
	h.sum += o.sum
	h.sum2 += o.sum2
	h.under += o.under
	h.over += o.over
	return nil
}

// Entries returns the number of fills.
func (h *Histogram) Entries() int64 { return h.entries }

// Sum returns the sum of all filled values.
func (h *Histogram) Sum() float64 { return h.sum }

// Mean returns the mean of all filled values, or 0 with no entries.
func (h *Histogram) Mean() float64 {
	if h.entries == 0 {
		return 0
	}
	return h.sum / float64(h.entries)
}

// StdDev returns the population standard deviation of all filled values.
func (h *Histogram) StdDev() float64 {
	if h.entries == 0 {
		return 0
	}
	m := h.Mean()
	v := h.sum2/float64(h.entries) - m*m
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// NBins returns the number of bins.
func (h *Histogram) NBins() int { return len(h.bins) }

// BinCount returns the count of bin i.
func (h *Histogram) BinCount(i int) int64 { return h.bins[i] }

// BinEdges returns the [lo, hi) edges of bin i.
func (h *Histogram) BinEdges(i int) (float64, float64) {
	return h.lo + float64(i)*h.width, h.lo + float64(i+1)*h.width
}

// Underflow returns the count of values below the range.
func (h *Histogram) Underflow() int64 { return h.under }

// Overflow returns the count of values above the range.
func (h *Histogram) Overflow() int64 { return h.over }
