// SPDX-License-Identifier: MIT
// Package wasserstein: sentinel error set (unified, consistent).
// All validation failures surface as these sentinels, matched with
// errors.Is; context (column index, modality) is attached via %w wrapping
// at the call site. No user-triggered condition panics, and no partial
// result is ever returned alongside an error.

package wasserstein

import "errors"

var (
	// ErrLengthMismatch is returned when a label vector and an attribute
	// column (or matrix) disagree in length.
	ErrLengthMismatch = errors.New("wasserstein: labels and attribute must have the same length")

	// ErrNonFiniteLabel is returned when a label is NaN or ±Inf; labels
	// must be finite real numbers.
	ErrNonFiniteLabel = errors.New("wasserstein: labels must be finite real numbers")

	// ErrInsufficientData is returned when calibration has fewer than two
	// observations, in total or within a single modality.
	ErrInsufficientData = errors.New("wasserstein: need at least two calibration observations")

	// ErrEpsilonRange is returned when an epsilon value lies outside [0,1].
	ErrEpsilonRange = errors.New("wasserstein: epsilon must be within [0,1]")

	// ErrEpsilonSize is returned when an epsilon vector's length disagrees
	// with the number of attribute columns.
	ErrEpsilonSize = errors.New("wasserstein: epsilon length must match attribute column count")

	// ErrUnseenModality is returned when a test row carries a modality the
	// calibration data never exhibited. The converse — calibration
	// modalities absent from the test set — is allowed.
	ErrUnseenModality = errors.New("wasserstein: test modality absent from calibration")

	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = errors.New("wasserstein: transform called before fit")

	// ErrInvalidSigma is returned when the jitter half-width is negative
	// or non-finite.
	ErrInvalidSigma = errors.New("wasserstein: sigma must be finite and non-negative")

	// ErrNoColumns is returned when an attribute matrix has no columns.
	ErrNoColumns = errors.New("wasserstein: attribute matrix needs at least one column")

	// ErrRaggedMatrix is returned when attribute matrix rows differ in length.
	ErrRaggedMatrix = errors.New("wasserstein: attribute matrix rows must have equal length")

	// ErrColumnCount is returned when a test attribute matrix has a
	// different column count than the matrix the adjuster was fitted on.
	ErrColumnCount = errors.New("wasserstein: attribute columns disagree with fitted columns")

	// ErrStageName is returned by StageIndex for names outside the
	// "sens_var_<i>" wire convention.
	ErrStageName = errors.New("wasserstein: not a sens_var stage name")
)
