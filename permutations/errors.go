// SPDX-License-Identifier: MIT
// Package permutations: sentinel error set; matched with errors.Is.

package permutations

import "errors"

var (
	// ErrNoColumns is returned when an ordering enumeration or run is
	// requested for fewer than one attribute column.
	ErrNoColumns = errors.New("permutations: need at least one attribute column")

	// ErrBadOrder is returned when an order slice is not a permutation of
	// the attribute column indices.
	ErrBadOrder = errors.New("permutations: order is not a permutation of the attribute columns")

	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("permutations: input lengths must match")
)
