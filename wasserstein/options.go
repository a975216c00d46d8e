// SPDX-License-Identifier: MIT

package wasserstein

import "math/rand"

// DefaultSigma is the half-width of the uniform tie-breaking jitter.
// It must stay small relative to the label scale: the jitter exists only
// to separate duplicated scores so each per-modality CDF/EQF pair remains
// invertible, never to perturb the distribution itself.
const DefaultSigma = 1e-4

// minObservations is the smallest calibration size (total and per
// modality) for which the quantile machinery is well-defined.
const minObservations = 2

// Options configures an Adjuster or Sequential.
//
// Fields:
//   - Sigma — half-width of the uniform jitter drawn per individual and
//     added to labels before estimating and querying the per-modality
//     distributions. Zero disables jitter (fine for already-continuous,
//     tie-free scores; required for the deterministic examples).
//   - Rand  — jitter source. Nil uses the shared math/rand global source;
//     supply a seeded *rand.Rand for reproducible output.
//
// Example:
//
//	opts := wasserstein.DefaultOptions()
//	opts.Rand = rand.New(rand.NewSource(42))
//	adj := wasserstein.NewAdjuster(&opts)
type Options struct {
	Sigma float64
	Rand  *rand.Rand
}

// DefaultOptions returns the documented defaults: Sigma=DefaultSigma and
// the shared global jitter source.
func DefaultOptions() Options {
	return Options{Sigma: DefaultSigma}
}
