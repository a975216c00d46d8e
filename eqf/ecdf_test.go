// SPDX-License-Identifier: MIT

package eqf_test

import (
	"testing"

	"github.com/katalvlaran/seqfair/eqf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestECDF_StepSemantics pins right-continuity and tie handling:
// At(x)=(# observations ≤ x)/n, constant between observations.
func TestECDF_StepSemantics(t *testing.T) {
	t.Parallel()

	e, err := eqf.NewECDF([]float64{1, 2, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 4, e.Len())

	assert.Equal(t, 0.0, e.At(0.9), "below minimum")
	assert.Equal(t, 0.25, e.At(1), "at minimum")
	assert.Equal(t, 0.25, e.At(1.5), "between steps")
	assert.Equal(t, 0.75, e.At(2), "tied observations count together")
	assert.Equal(t, 0.75, e.At(2.5))
	assert.Equal(t, 1.0, e.At(3), "at maximum")
	assert.Equal(t, 1.0, e.At(10), "above maximum")
}

// TestECDF_Evaluate checks the vector helper and input immutability.
func TestECDF_Evaluate(t *testing.T) {
	t.Parallel()

	sample := []float64{3, 1, 2}
	e, err := eqf.NewECDF(sample)
	require.NoError(t, err)

	got := e.Evaluate([]float64{0, 1, 2, 3})
	assert.Equal(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, got)
	assert.Equal(t, []float64{3, 1, 2}, sample, "input must not be sorted in place")
}

func TestECDF_EmptySample(t *testing.T) {
	t.Parallel()

	_, err := eqf.NewECDF([]float64{})
	assert.ErrorIs(t, err, eqf.ErrEmptySample)
}
