// SPDX-License-Identifier: MIT

package wasserstein

import "fmt"

// Sequential chains single-attribute adjusters across the columns of an
// attribute matrix, in column order. Column i is fitted against the
// working label vector produced by columns 0..i-1, so the fairness
// achieved for an attribute depends on its position — use the
// permutations package to measure that order dependence.
//
// Sequential follows the same fit-then-transform protocol as Adjuster
// and is likewise not safe for concurrent use.
type Sequential struct {
	opts   Options
	stages []calibration
	trace  Trace
}

// NewSequential returns an unfitted Sequential. A nil opts selects
// DefaultOptions.
func NewSequential(opts *Options) *Sequential {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &Sequential{opts: o}
}

// Fit calibrates one adjuster per attribute column, in order. For column
// i>0 the calibration labels are the previous column's fully adjusted
// (epsilon=0) output, not the originals. attrs is row-major: attrs[r][c]
// is individual r's value for attribute c.
//
// Errors: ErrInsufficientData (fewer than two observations),
// ErrLengthMismatch, ErrNoColumns, ErrRaggedMatrix, ErrNonFiniteLabel,
// ErrInvalidSigma; per-modality failures carry the column index.
func (s *Sequential) Fit(yCalib []float64, attrs [][]string) error {
	if err := checkSigma(s.opts.Sigma); err != nil {
		return err
	}
	cols, err := checkMatrix(attrs, len(yCalib))
	if err != nil {
		return err
	}
	if len(yCalib) < minObservations {
		return ErrInsufficientData
	}
	if err = checkFinite(yCalib); err != nil {
		return err
	}

	cur := append([]float64(nil), yCalib...)
	stages := make([]calibration, 0, cols)
	for c := 0; c < cols; c++ {
		col := column(attrs, c)
		adj := NewAdjuster(&s.opts)
		if err = adj.Fit(cur, col); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
		stages = append(stages, *adj.calib)
		if cur, err = adj.Transform(cur, col, 0); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	s.stages = stages
	return nil
}

// Transform applies the fitted per-column adjusters to the test set in
// fitting order, recording the vector after every stage. epsilon holds
// one trade-off value per column; nil means full fairness at every step
// (an all-zero vector — preserved legacy default). The base vector is
// recorded verbatim under BaseStage, each subsequent stage under
// StageName(column).
//
// Returns the final stage's vector. The full trace is available from
// SequentialFairness until the next Transform call.
//
// Errors: ErrNotFitted, ErrColumnCount, ErrEpsilonSize, plus everything
// Adjuster.Transform can return, wrapped with the failing column.
func (s *Sequential) Transform(yTest []float64, attrs [][]string, epsilon []float64) ([]float64, error) {
	if len(s.stages) == 0 {
		return nil, ErrNotFitted
	}
	cols, err := checkMatrix(attrs, len(yTest))
	if err != nil {
		return nil, err
	}
	if cols != len(s.stages) {
		return nil, ErrColumnCount
	}
	if epsilon == nil {
		epsilon = make([]float64, cols)
	}
	if len(epsilon) != cols {
		return nil, ErrEpsilonSize
	}

	trace := make(Trace, 0, cols+1)
	trace = append(trace, Stage{Name: BaseStage, Y: append([]float64(nil), yTest...)})

	cur := yTest
	for i := range s.stages {
		adj := newFittedAdjuster(s.opts, &s.stages[i])
		if cur, err = adj.Transform(cur, column(attrs, i), epsilon[i]); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		trace = append(trace, Stage{Name: StageName(i), Y: cur})
	}
	s.trace = trace
	return cur, nil
}

// SequentialFairness returns the ordered stage trace recorded by the most
// recent Transform call, or nil if Transform has not run. The trace is
// owned by the Sequential; treat it as read-only.
func (s *Sequential) SequentialFairness() Trace { return s.trace }

// Columns reports the number of attribute columns fitted, 0 before Fit.
func (s *Sequential) Columns() int { return len(s.stages) }

// column extracts column c of a row-major attribute matrix.
func column(attrs [][]string, c int) []string {
	col := make([]string, len(attrs))
	for r := range attrs {
		col[r] = attrs[r][c]
	}
	return col
}
