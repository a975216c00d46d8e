// SPDX-License-Identifier: MIT
// Package eqf: sentinel error set. All constructors and queries return
// these sentinels; callers branch with errors.Is. No user-triggered
// condition panics.

package eqf

import "errors"

var (
	// ErrEmptySample is returned when a distribution is built from an
	// empty sample.
	ErrEmptySample = errors.New("eqf: sample must be non-empty")

	// ErrDegenerateSample is returned when an EQF is built from a single
	// observation: one knot admits no interpolation, so the resulting
	// function could not be queried at more than one quantile.
	ErrDegenerateSample = errors.New("eqf: sample needs at least two observations")

	// ErrQuantileRange is returned when a quantile query lies outside
	// [0,1] or is NaN.
	ErrQuantileRange = errors.New("eqf: quantile must be within [0,1]")
)
