// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/seqfair/wasserstein"
)

// quantilePoints is the fixed probability grid resolution for comparing
// quantile functions.
const quantilePoints = 100

// sampleQuantiles evaluates the linear empirical quantile function of x
// on quantilePoints evenly spaced probabilities spanning [0,1]. A single
// observation yields a constant function.
func sampleQuantiles(x []float64) []float64 {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)

	n := len(s)
	out := make([]float64, quantilePoints)
	for j := range out {
		if n == 1 {
			out[j] = s[0]
			continue
		}
		p := float64(j) / float64(quantilePoints-1)
		pos := p * float64(n-1)
		lo := int(math.Floor(pos))
		hi := lo + 1
		if hi > n-1 {
			hi = n - 1
		}
		frac := pos - float64(lo)
		out[j] = s[lo]*(1-frac) + s[hi]*frac
	}
	return out
}

// QuantileGap returns the sup-norm distance between the empirical
// quantile functions of two samples — the unfairness between two
// populations.
func QuantileGap(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	qa := sampleQuantiles(a)
	qb := sampleQuantiles(b)
	var worst float64
	for j := range qa {
		if d := math.Abs(qa[j] - qb[j]); d > worst {
			worst = d
		}
	}
	return worst, nil
}

// UnfairnessSingle returns the unfairness of predictions with respect to
// one sensitive attribute: the worst QuantileGap between any modality
// subgroup and the whole population.
func UnfairnessSingle(yPred []float64, attr []string) (float64, error) {
	if len(yPred) != len(attr) {
		return 0, ErrLengthMismatch
	}
	if len(yPred) == 0 {
		return 0, ErrEmptyInput
	}
	groups := make(map[string][]float64)
	for i, m := range attr {
		groups[m] = append(groups[m], yPred[i])
	}
	var worst float64
	for m, sub := range groups {
		gap, err := QuantileGap(yPred, sub)
		if err != nil {
			return 0, fmt.Errorf("modality %q: %w", m, err)
		}
		if gap > worst {
			worst = gap
		}
	}
	return worst, nil
}

// Unfairness returns the worst per-attribute unfairness over every column
// of a row-major attribute matrix.
func Unfairness(yPred []float64, attrs [][]string) (float64, error) {
	if len(yPred) != len(attrs) {
		return 0, ErrLengthMismatch
	}
	if len(yPred) == 0 {
		return 0, ErrEmptyInput
	}
	cols := len(attrs[0])
	if cols == 0 {
		return 0, ErrNoColumns
	}
	var worst float64
	col := make([]string, len(attrs))
	for c := 0; c < cols; c++ {
		for r, row := range attrs {
			if len(row) != cols {
				return 0, fmt.Errorf("row %d: %w", r, ErrLengthMismatch)
			}
			col[r] = row[c]
		}
		u, err := UnfairnessSingle(yPred, col)
		if err != nil {
			return 0, err
		}
		if u > worst {
			worst = u
		}
	}
	return worst, nil
}

// UnfairnessTrace evaluates Unfairness at every stage of a
// sequential-fairness trace, returning a stage-name → unfairness map.
func UnfairnessTrace(trace wasserstein.Trace, attrs [][]string) (map[string]float64, error) {
	out := make(map[string]float64, len(trace))
	for _, stage := range trace {
		u, err := Unfairness(stage.Y, attrs)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		out[stage.Name] = u
	}
	return out, nil
}
