// SPDX-License-Identifier: MIT
// Package metrics: sentinel error set; matched with errors.Is.

package metrics

import "errors"

var (
	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("metrics: input lengths must match")

	// ErrEmptyInput is returned when a metric is evaluated on no data.
	ErrEmptyInput = errors.New("metrics: inputs must be non-empty")

	// ErrNoColumns is returned when unfairness is evaluated against an
	// attribute matrix with no columns.
	ErrNoColumns = errors.New("metrics: attribute matrix needs at least one column")
)
