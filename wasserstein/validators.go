// SPDX-License-Identifier: MIT
// Package wasserstein: input validation helpers. Each helper returns a
// package sentinel (possibly wrapped with position context) and performs
// no mutation. Validation happens before any state change, so a failed
// call leaves the adjuster exactly as it was.

package wasserstein

import (
	"fmt"
	"math"
)

// checkShape validates that y and attr have equal nonzero length and that
// every label is a finite real number.
func checkShape(y []float64, attr []string) error {
	if len(y) != len(attr) {
		return ErrLengthMismatch
	}
	return checkFinite(y)
}

// checkFinite rejects NaN and ±Inf labels.
func checkFinite(y []float64) error {
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("label %d: %w", i, ErrNonFiniteLabel)
		}
	}
	return nil
}

// checkEpsilon validates a single trade-off parameter.
func checkEpsilon(eps float64) error {
	if math.IsNaN(eps) || eps < 0 || eps > 1 {
		return ErrEpsilonRange
	}
	return nil
}

// checkSigma validates the jitter half-width.
func checkSigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return ErrInvalidSigma
	}
	return nil
}

// checkMatrix validates a row-major attribute matrix against the label
// count and returns its column count.
func checkMatrix(attrs [][]string, rows int) (int, error) {
	if len(attrs) != rows {
		return 0, ErrLengthMismatch
	}
	if rows == 0 {
		return 0, ErrInsufficientData
	}
	cols := len(attrs[0])
	if cols == 0 {
		return 0, ErrNoColumns
	}
	for i := 1; i < rows; i++ {
		if len(attrs[i]) != cols {
			return 0, fmt.Errorf("row %d: %w", i, ErrRaggedMatrix)
		}
	}
	return cols, nil
}

// checkSeen verifies every test modality was observed at calibration.
func checkSeen(calib map[string]float64, testMods []string) error {
	for _, m := range testMods {
		if _, ok := calib[m]; !ok {
			return fmt.Errorf("modality %q: %w", m, ErrUnseenModality)
		}
	}
	return nil
}
