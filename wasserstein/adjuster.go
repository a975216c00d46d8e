// SPDX-License-Identifier: MIT

package wasserstein

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Adjuster enforces distributional fairness for a single sensitive
// attribute via Wasserstein barycentric projection.
//
// Protocol: Fit on calibration data, then Transform on test data, any
// number of times. Transform before Fit returns ErrNotFitted. An
// Adjuster is not safe for concurrent use; independent instances are.
type Adjuster struct {
	opts  Options
	calib *calibration
}

// NewAdjuster returns an unfitted Adjuster. A nil opts selects
// DefaultOptions.
func NewAdjuster(opts *Options) *Adjuster {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &Adjuster{opts: o}
}

// newFittedAdjuster rebuilds an Adjuster around calibration state owned
// by a Sequential stage.
func newFittedAdjuster(opts Options, c *calibration) *Adjuster {
	return &Adjuster{opts: opts, calib: c}
}

// Fit estimates modalities, weights and per-modality distributions from
// the calibration set. Previous calibration state, if any, is replaced
// only on success.
//
// Errors: ErrInvalidSigma, ErrLengthMismatch, ErrNonFiniteLabel,
// ErrInsufficientData (fewer than two observations, in total or within
// one modality).
func (a *Adjuster) Fit(yCalib []float64, attrCalib []string) error {
	if err := checkSigma(a.opts.Sigma); err != nil {
		return err
	}
	if err := checkShape(yCalib, attrCalib); err != nil {
		return err
	}
	if len(yCalib) < minObservations {
		return ErrInsufficientData
	}
	c, err := fitDistributions(yCalib, attrCalib, a.opts.Sigma, a.opts.Rand)
	if err != nil {
		return err
	}
	a.calib = &c
	return nil
}

// Transform maps test labels into the fairness-adjusted space.
//
// For an individual with modality m the raw fair value is the weighted
// barycenter Σ_{m′} w_{m′}·EQF_{m′}(CDF_m(y+jitter)) over the modalities
// m′ present in the test set. The returned value blends it with the
// original: (1-epsilon)·fair + epsilon·y.
//
// Every modality present in attrTest must have been seen during Fit
// (ErrUnseenModality otherwise); calibration modalities missing from the
// test set are fine. Epsilon must lie in [0,1] (ErrEpsilonRange).
func (a *Adjuster) Transform(yTest []float64, attrTest []string, epsilon float64) ([]float64, error) {
	if a.calib == nil {
		return nil, ErrNotFitted
	}
	if err := checkEpsilon(epsilon); err != nil {
		return nil, err
	}
	if err := checkShape(yTest, attrTest); err != nil {
		return nil, err
	}
	testMods := modalities(attrTest)
	if err := checkSeen(a.calib.weights, testMods); err != nil {
		return nil, err
	}

	loc := locations(attrTest)
	jit := uniformJitter(len(yTest), a.opts.Sigma, a.opts.Rand)
	fair := make([]float64, len(yTest))
	for _, m := range testMods {
		cdf := a.calib.ecdf[m]
		for _, i := range loc[m] {
			u := cdf.At(yTest[i] + jit[i])
			var v float64
			for _, m2 := range testMods {
				q, err := a.calib.eqf[m2].At(u)
				if err != nil {
					// u comes from an ECDF, so this is unreachable; keep
					// the contract explicit rather than swallowing it.
					return nil, fmt.Errorf("modality %q: %w", m2, err)
				}
				v += a.calib.weights[m2] * q
			}
			fair[i] = v
		}
	}

	out := make([]float64, len(yTest))
	floats.ScaleTo(out, 1-epsilon, fair)
	floats.AddScaled(out, epsilon, yTest)
	return out, nil
}

// FitTransform fits on the given calibration set and immediately
// transforms it, a convenience mirroring the usual estimator surface.
func (a *Adjuster) FitTransform(y []float64, attr []string, epsilon float64) ([]float64, error) {
	if err := a.Fit(y, attr); err != nil {
		return nil, err
	}
	return a.Transform(y, attr, epsilon)
}

// Modalities returns the calibration modalities in sorted order, or nil
// before Fit.
func (a *Adjuster) Modalities() []string {
	if a.calib == nil {
		return nil
	}
	out := make([]string, len(a.calib.modalities))
	copy(out, a.calib.modalities)
	return out
}

// Weights returns a copy of the per-modality empirical frequencies, or
// nil before Fit. The values sum to 1.
func (a *Adjuster) Weights() map[string]float64 {
	if a.calib == nil {
		return nil
	}
	out := make(map[string]float64, len(a.calib.weights))
	for m, w := range a.calib.weights {
		out[m] = w
	}
	return out
}
