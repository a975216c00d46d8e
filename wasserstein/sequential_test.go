// SPDX-License-Identifier: MIT

package wasserstein_test

import (
	"testing"

	"github.com/katalvlaran/seqfair/metrics"
	"github.com/katalvlaran/seqfair/wasserstein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yCalibMulti = []float64{0.6, 0.43, 0.32, 0.8}
	aCalibMulti = [][]string{
		{"blue", "5"}, {"blue", "9"}, {"green", "5"}, {"green", "9"},
	}
	yTestMulti = []float64{0.8, 0.35, 0.23, 0.2}
	aTestMulti = [][]string{
		{"blue", "9"}, {"blue", "5"}, {"blue", "5"}, {"green", "9"},
	}
)

func noJitter() *wasserstein.Options {
	return &wasserstein.Options{Sigma: 0}
}

// TestSequential_TraceContract pins the stage naming and ordering wire
// contract: base vector verbatim, then one stage per column, final stage
// equal to the returned vector.
func TestSequential_TraceContract(t *testing.T) {
	t.Parallel()

	seq := wasserstein.NewSequential(noJitter())
	require.NoError(t, seq.Fit(yCalibMulti, aCalibMulti))
	require.Equal(t, 2, seq.Columns())

	final, err := seq.Transform(yTestMulti, aTestMulti, []float64{0.1, 0.2})
	require.NoError(t, err)

	trace := seq.SequentialFairness()
	require.Equal(t, []string{"Base model", "sens_var_1", "sens_var_2"}, trace.Names())

	base, ok := trace.Get(wasserstein.BaseStage)
	require.True(t, ok)
	assert.Equal(t, yTestMulti, base, "base stage records the input verbatim")
	assert.Equal(t, final, trace.Final())

	// deterministic expectations (no jitter), from the reference semantics
	assert.InDeltaSlice(t, []float64{0.7100, 0.3725, 0.3605, 0.3575}, mustGet(t, trace, "sens_var_1"), 1e-4)
	assert.InDeltaSlice(t, []float64{0.7020, 0.5045, 0.5021, 0.5015}, final, 1e-4)
}

func mustGet(t *testing.T, tr wasserstein.Trace, name string) []float64 {
	t.Helper()
	y, ok := tr.Get(name)
	require.True(t, ok, "stage %q missing", name)
	return y
}

// TestSequential_NilEpsilonDefaultsToZeros preserves the legacy default:
// a nil epsilon vector means full fairness at every step.
func TestSequential_NilEpsilonDefaultsToZeros(t *testing.T) {
	t.Parallel()

	seq := wasserstein.NewSequential(noJitter())
	require.NoError(t, seq.Fit(yCalibMulti, aCalibMulti))

	gotNil, err := seq.Transform(yTestMulti, aTestMulti, nil)
	require.NoError(t, err)
	gotZeros, err := seq.Transform(yTestMulti, aTestMulti, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, gotZeros, gotNil)
}

// TestSequential_ValidationErrors walks the sequential-specific taxonomy.
func TestSequential_ValidationErrors(t *testing.T) {
	t.Parallel()

	seq := wasserstein.NewSequential(noJitter())

	_, err := seq.Transform(yTestMulti, aTestMulti, nil)
	assert.ErrorIs(t, err, wasserstein.ErrNotFitted)

	assert.ErrorIs(t, seq.Fit([]float64{1}, [][]string{{"A", "C"}}), wasserstein.ErrInsufficientData)
	assert.ErrorIs(t, seq.Fit([]float64{1, 2}, [][]string{{"A"}, {"B", "C"}}), wasserstein.ErrRaggedMatrix)
	assert.ErrorIs(t, seq.Fit([]float64{1, 2}, [][]string{{}, {}}), wasserstein.ErrNoColumns)
	assert.ErrorIs(t, seq.Fit(yCalibMulti, aCalibMulti[:3]), wasserstein.ErrLengthMismatch)

	require.NoError(t, seq.Fit(yCalibMulti, aCalibMulti))

	_, err = seq.Transform(yTestMulti, aTestMulti, []float64{0.5})
	assert.ErrorIs(t, err, wasserstein.ErrEpsilonSize)

	oneCol := [][]string{{"blue"}, {"blue"}, {"green"}, {"green"}}
	_, err = seq.Transform(yTestMulti, oneCol, nil)
	assert.ErrorIs(t, err, wasserstein.ErrColumnCount)
}

// orderedDataset builds a deterministic dataset with two correlated
// sensitive attributes and labels depending on both, split into
// calibration and test halves.
func orderedDataset() (yCal []float64, aCal [][]string, yTst []float64, aTst [][]string) {
	const n = 60
	y := make([]float64, n)
	attrs := make([][]string, n)
	for i := 0; i < n; i++ {
		g := i%2 == 0
		flip := i%5 == 0
		c := g != flip // correlated with g, flipped every fifth row
		a1, a2 := "B", "D"
		base := 2.0
		if g {
			a1, base = "A", 1.0
		}
		if c {
			a2 = "C"
			base += 0.3
		} else {
			base += 0.9
		}
		jit := float64((i*37)%17) / 100
		y[i] = base + jit
		attrs[i] = []string{a1, a2}
	}
	return y[:40], attrs[:40], y[40:], attrs[40:]
}

// TestSequential_OrderDependence proves sequential adjustment is
// order-dependent: swapping the two correlated attribute columns changes
// the final unfairness measured for the second attribute far beyond any
// jitter tolerance.
func TestSequential_OrderDependence(t *testing.T) {
	t.Parallel()

	yCal, aCal, yTst, aTst := orderedDataset()

	run := func(swap bool) []float64 {
		cal, tst := aCal, aTst
		if swap {
			cal = swapCols(aCal)
			tst = swapCols(aTst)
		}
		seq := wasserstein.NewSequential(noJitter())
		require.NoError(t, seq.Fit(yCal, cal))
		final, err := seq.Transform(yTst, tst, nil)
		require.NoError(t, err)
		return final
	}

	col2 := make([]string, len(aTst))
	for i, row := range aTst {
		col2[i] = row[1]
	}

	unfForward, err := metrics.UnfairnessSingle(run(false), col2)
	require.NoError(t, err)
	unfSwapped, err := metrics.UnfairnessSingle(run(true), col2)
	require.NoError(t, err)

	diff := unfForward - unfSwapped
	if diff < 0 {
		diff = -diff
	}
	assert.Greater(t, diff, 0.05,
		"attribute adjusted last must end up fairer than when adjusted first")
}

func swapCols(attrs [][]string) [][]string {
	out := make([][]string, len(attrs))
	for i, row := range attrs {
		out[i] = []string{row[1], row[0]}
	}
	return out
}

// TestStageName_Wire pins the 1-indexed naming and its parser.
func TestStageName_Wire(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sens_var_1", wasserstein.StageName(0))
	assert.Equal(t, "sens_var_3", wasserstein.StageName(2))

	i, err := wasserstein.StageIndex("sens_var_2")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	for _, bad := range []string{"Base model", "sens_var_", "sens_var_0", "sens_var_x", "var_1"} {
		_, err = wasserstein.StageIndex(bad)
		assert.ErrorIs(t, err, wasserstein.ErrStageName, "name %q", bad)
	}
}
