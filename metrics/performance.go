// SPDX-License-Identifier: MIT

package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/seqfair/wasserstein"
)

// Metric is the external performance-metric contract: a scalar score of
// predictions against ground truth. Implementations assume equal-length
// nonempty inputs; Risk and the trace helpers validate before calling.
type Metric func(yTrue, yPred []float64) float64

// MSE returns the mean squared error, the default regression risk.
func MSE(yTrue, yPred []float64) float64 {
	d := make([]float64, len(yTrue))
	floats.SubTo(d, yTrue, yPred)
	return floats.Dot(d, d) / float64(len(d))
}

// Accuracy returns the fraction of exact matches, the default
// classification score.
func Accuracy(yTrue, yPred []float64) float64 {
	var hits int
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue))
}

// Risk scores predictions with Accuracy when classif is true and MSE
// otherwise, after validating the inputs.
func Risk(yTrue, yPred []float64, classif bool) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, ErrLengthMismatch
	}
	if len(yTrue) == 0 {
		return 0, ErrEmptyInput
	}
	if classif {
		return Accuracy(yTrue, yPred), nil
	}
	return MSE(yTrue, yPred), nil
}

// RiskTrace scores every stage of a sequential-fairness trace against the
// true labels, returning a stage-name → risk map.
func RiskTrace(yTrue []float64, trace wasserstein.Trace, classif bool) (map[string]float64, error) {
	out := make(map[string]float64, len(trace))
	for _, stage := range trace {
		r, err := Risk(yTrue, stage.Y, classif)
		if err != nil {
			return nil, err
		}
		out[stage.Name] = r
	}
	return out, nil
}

// IsBinary reports whether every value is 0 or 1.
func IsBinary(y []float64) bool {
	if len(y) == 0 {
		return false
	}
	for _, v := range y {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}

// Advisory returns a non-fatal warning when a continuous metric is about
// to be applied to apparently binary labels — a likely metric/task
// mismatch. An empty string means no concern. Execution is never blocked;
// surfacing the message is the caller's choice.
func Advisory(yTrue []float64, classif bool) string {
	if !classif && IsBinary(yTrue) {
		return "labels look binary; mean squared error may be the wrong metric — consider classif=true"
	}
	return ""
}
