// SPDX-License-Identifier: MIT

package eqf

import "sort"

// ECDF is a right-continuous empirical cumulative distribution function:
// At(x) is the fraction of sample observations less than or equal to x.
// Immutable after construction.
type ECDF struct {
	sorted []float64
	n      float64
}

// NewECDF builds an ECDF from a nonempty sample. The input is copied and
// never mutated. Returns ErrEmptySample for an empty sample.
func NewECDF(sample []float64) (*ECDF, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	s := make([]float64, len(sample))
	copy(s, sample)
	sort.Float64s(s)
	return &ECDF{sorted: s, n: float64(len(s))}, nil
}

// At returns (# observations ≤ x) / n. Defined for every real x:
// 0 below the sample minimum, 1 at and above the maximum.
func (e *ECDF) At(x float64) float64 {
	// first index strictly greater than x == count of values ≤ x
	i := sort.Search(len(e.sorted), func(i int) bool { return e.sorted[i] > x })
	return float64(i) / e.n
}

// Evaluate applies At to every element of xs and returns a fresh slice.
func (e *ECDF) Evaluate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = e.At(x)
	}
	return out
}

// Len reports the number of observations the ECDF was built from.
func (e *ECDF) Len() int { return len(e.sorted) }
