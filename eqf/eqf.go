// SPDX-License-Identifier: MIT

package eqf

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// EQF is an empirical quantile function: the sorted sample assigned to
// equally spaced knots spanning [0,1] inclusive, linearly interpolated in
// between. It is the interpolated inverse of the sample's ECDF.
// Immutable after construction.
type EQF struct {
	pl       interp.PiecewiseLinear
	min, max float64
	n        int
}

// NewEQF builds an EQF from a sample of at least two observations. The
// input is copied and never mutated.
//
// Errors: ErrEmptySample for an empty sample; ErrDegenerateSample for a
// single observation (no interpolation exists between fewer than two
// knots — see the package doc).
func NewEQF(sample []float64) (*EQF, error) {
	n := len(sample)
	if n == 0 {
		return nil, ErrEmptySample
	}
	if n < 2 {
		return nil, ErrDegenerateSample
	}
	ys := make([]float64, n)
	copy(ys, sample)
	sort.Float64s(ys)

	// knot i sits at quantile i/(n-1); strictly increasing by construction
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("eqf: fit: %w", err)
	}
	return &EQF{pl: pl, min: ys[0], max: ys[n-1], n: n}, nil
}

// At returns the interpolated value at quantile p ∈ [0,1].
// Returns ErrQuantileRange for p outside [0,1] or NaN.
func (q *EQF) At(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrQuantileRange
	}
	// endpoints bypass interpolation so min/max are reproduced exactly
	switch p {
	case 0:
		return q.min, nil
	case 1:
		return q.max, nil
	}
	return q.pl.Predict(p), nil
}

// Evaluate applies At to every element of ps. On the first invalid
// quantile it returns (nil, ErrQuantileRange).
func (q *EQF) Evaluate(ps []float64) ([]float64, error) {
	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := q.At(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Min returns the sample minimum (the value at quantile 0).
func (q *EQF) Min() float64 { return q.min }

// Max returns the sample maximum (the value at quantile 1).
func (q *EQF) Max() float64 { return q.max }

// Len reports the number of observations the EQF was built from.
func (q *EQF) Len() int { return q.n }
