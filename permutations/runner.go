// SPDX-License-Identifier: MIT

package permutations

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqfair/wasserstein"
)

// Result is one ordering's outcome: the column order applied, the test
// attribute matrix in that column order, and the relabeled stage trace.
// Stage names carry original column identity — "sens_var_3" always means
// input column 2 regardless of where the ordering placed it.
type Result struct {
	Order []int
	Attrs [][]string
	Trace wasserstein.Trace
}

// RunAll fits and transforms a fresh sequential adjuster for every
// ordering of the attribute columns. epsilon, when non-nil, holds one
// trade-off value per original column and is permuted alongside the
// columns; nil means full fairness at every stage. opts configures every
// adjuster; nil selects wasserstein.DefaultOptions.
//
// Orderings are independent and run concurrently, each with its own
// adjuster (and, when opts carries a seeded RNG, its own source derived
// from it up front, in enumeration order). Results come back in
// enumeration (lexicographic) order regardless of scheduling.
//
// Cost is factorial in the column count.
func RunAll(yCalib []float64, attrsCalib [][]string, yTest []float64, attrsTest [][]string, epsilon []float64, opts *wasserstein.Options) ([]Result, error) {
	cols := 0
	if len(attrsCalib) > 0 {
		cols = len(attrsCalib[0])
	}
	orders, err := Orderings(cols)
	if err != nil {
		return nil, err
	}
	if epsilon != nil && len(epsilon) != cols {
		return nil, wasserstein.ErrEpsilonSize
	}

	base := wasserstein.DefaultOptions()
	if opts != nil {
		base = *opts
	}
	// derive per-ordering sources sequentially; sharing one *rand.Rand
	// across goroutines would race
	rngs := make([]*rand.Rand, len(orders))
	if base.Rand != nil {
		for i := range rngs {
			rngs[i] = rand.New(rand.NewSource(base.Rand.Int63()))
		}
	}

	results := make([]Result, len(orders))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for slot, order := range orders {
		g.Go(func() error {
			calibP, err := PermuteColumns(attrsCalib, order)
			if err != nil {
				return fmt.Errorf("order %v: %w", order, err)
			}
			testP, err := PermuteColumns(attrsTest, order)
			if err != nil {
				return fmt.Errorf("order %v: %w", order, err)
			}
			var eps []float64
			if epsilon != nil {
				eps = permuteFloats(epsilon, order)
			}

			o := base
			o.Rand = rngs[slot]
			seq := wasserstein.NewSequential(&o)
			if err = seq.Fit(yCalib, calibP); err != nil {
				return fmt.Errorf("order %v: %w", order, err)
			}
			if _, err = seq.Transform(yTest, testP, eps); err != nil {
				return fmt.Errorf("order %v: %w", order, err)
			}
			results[slot] = Result{
				Order: order,
				Attrs: testP,
				Trace: relabel(seq.SequentialFairness(), order),
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// relabel rewrites positional stage names to ordering-qualified ones:
// the stage at position p becomes StageName(order[p]), i.e. the original
// column identity. The base stage keeps its name.
func relabel(trace wasserstein.Trace, order []int) wasserstein.Trace {
	out := make(wasserstein.Trace, len(trace))
	for i, stage := range trace {
		name := stage.Name
		if i > 0 {
			name = wasserstein.StageName(order[i-1])
		}
		out[i] = wasserstein.Stage{Name: name, Y: stage.Y}
	}
	return out
}
