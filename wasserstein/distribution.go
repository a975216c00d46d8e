// SPDX-License-Identifier: MIT
// Package wasserstein: per-attribute distribution estimation. One
// calibration value object per attribute column holds everything the
// transport map needs; it is built once during fit and read-only after.

package wasserstein

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/seqfair/eqf"
)

// calibration is the fitted transport state for one sensitive attribute:
// its modalities (sorted for deterministic iteration), their empirical
// frequencies, and the per-modality ECDF/EQF pair estimated from jittered
// calibration labels. Sequential passes these around as explicit owned
// values rather than sharing keyed maps across stages.
type calibration struct {
	modalities []string
	weights    map[string]float64
	ecdf       map[string]*eqf.ECDF
	eqf        map[string]*eqf.EQF
}

// modalities returns the distinct attribute values in sorted order.
func modalities(attr []string) []string {
	seen := make(map[string]struct{}, len(attr))
	out := make([]string, 0, 8)
	for _, v := range attr {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// locations maps each modality to the indices where it occurs.
func locations(attr []string) map[string][]int {
	loc := make(map[string][]int)
	for i, v := range attr {
		loc[v] = append(loc[v], i)
	}
	return loc
}

// weights maps each modality to count/total; the values sum to 1.
func weights(attr []string) map[string]float64 {
	n := float64(len(attr))
	counts := make(map[string]int)
	for _, v := range attr {
		counts[v]++
	}
	w := make(map[string]float64, len(counts))
	for v, c := range counts {
		w[v] = float64(c) / n
	}
	return w
}

// uniformJitter draws n independent values uniformly in [-sigma, sigma].
// A nil rng falls back to the shared global source.
func uniformJitter(n int, sigma float64, rng *rand.Rand) []float64 {
	jit := make([]float64, n)
	if sigma == 0 {
		return jit
	}
	for i := range jit {
		var u float64
		if rng != nil {
			u = rng.Float64()
		} else {
			u = rand.Float64()
		}
		jit[i] = (2*u - 1) * sigma
	}
	return jit
}

// fitDistributions estimates the per-modality ECDF/EQF tables from
// calibration labels. A single jitter draw per individual is shared by
// every modality of the call, keeping the displacement consistent across
// the row. A modality with fewer than minObservations observations is
// rejected: its quantile function would not be interpolable.
func fitDistributions(y []float64, attr []string, sigma float64, rng *rand.Rand) (calibration, error) {
	mods := modalities(attr)
	loc := locations(attr)
	jit := uniformJitter(len(y), sigma, rng)

	c := calibration{
		modalities: mods,
		weights:    weights(attr),
		ecdf:       make(map[string]*eqf.ECDF, len(mods)),
		eqf:        make(map[string]*eqf.EQF, len(mods)),
	}
	for _, m := range mods {
		idx := loc[m]
		if len(idx) < minObservations {
			return calibration{}, fmt.Errorf("modality %q has %d observation(s): %w", m, len(idx), ErrInsufficientData)
		}
		sub := make([]float64, len(idx))
		for k, i := range idx {
			sub[k] = y[i] + jit[i]
		}
		cdf, err := eqf.NewECDF(sub)
		if err != nil {
			return calibration{}, fmt.Errorf("modality %q: %w", m, err)
		}
		qf, err := eqf.NewEQF(sub)
		if err != nil {
			return calibration{}, fmt.Errorf("modality %q: %w", m, err)
		}
		c.ecdf[m] = cdf
		c.eqf[m] = qf
	}
	return c, nil
}
