// SPDX-License-Identifier: MIT

package permutations

import (
	"fmt"

	"github.com/katalvlaran/seqfair/metrics"
)

// Performance scores every stage of every ordering's trace against the
// true labels, one stage-name → score map per ordering, in enumeration
// order. A nil metric selects metrics.MSE, the regression default.
func Performance(yTrue []float64, results []Result, metric metrics.Metric) ([]map[string]float64, error) {
	if metric == nil {
		metric = metrics.MSE
	}
	out := make([]map[string]float64, len(results))
	for i, res := range results {
		scores := make(map[string]float64, len(res.Trace))
		for _, stage := range res.Trace {
			if len(stage.Y) != len(yTrue) {
				return nil, fmt.Errorf("order %v stage %q: %w", res.Order, stage.Name, ErrLengthMismatch)
			}
			scores[stage.Name] = metric(yTrue, stage.Y)
		}
		out[i] = scores
	}
	return out, nil
}

// Unfairness evaluates metrics.Unfairness at every stage of every
// ordering's trace, against that ordering's own permuted attribute
// matrix. One stage-name → unfairness map per ordering, in enumeration
// order.
func Unfairness(results []Result) ([]map[string]float64, error) {
	out := make([]map[string]float64, len(results))
	for i, res := range results {
		unfs := make(map[string]float64, len(res.Trace))
		for _, stage := range res.Trace {
			u, err := metrics.Unfairness(stage.Y, res.Attrs)
			if err != nil {
				return nil, fmt.Errorf("order %v stage %q: %w", res.Order, stage.Name, err)
			}
			unfs[stage.Name] = u
		}
		out[i] = unfs
	}
	return out, nil
}
