// SPDX-License-Identifier: MIT

package permutations

import "fmt"

// Orderings returns every ordering of k attribute columns as index
// slices, in lexicographic order: k! orderings, each a permutation of
// 0..k-1. Returns ErrNoColumns for k < 1.
func Orderings(k int) ([][]int, error) {
	if k < 1 {
		return nil, ErrNoColumns
	}
	total := 1
	for i := 2; i <= k; i++ {
		total *= i
	}
	out := make([][]int, 0, total)

	cur := make([]int, 0, k)
	used := make([]bool, k)
	var rec func()
	rec = func() {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		// ascending candidate scan keeps the enumeration lexicographic
		for i := 0; i < k; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out, nil
}

// PermuteColumns returns a copy of the row-major attribute matrix with
// its columns rearranged so that output column j holds input column
// order[j]. The order must be a permutation of the column indices.
func PermuteColumns(attrs [][]string, order []int) ([][]string, error) {
	cols := 0
	if len(attrs) > 0 {
		cols = len(attrs[0])
	}
	if err := checkOrder(order, cols); err != nil {
		return nil, err
	}
	out := make([][]string, len(attrs))
	for r, row := range attrs {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", r, ErrLengthMismatch)
		}
		pr := make([]string, cols)
		for j, c := range order {
			pr[j] = row[c]
		}
		out[r] = pr
	}
	return out, nil
}

// permuteFloats rearranges one value per column, same convention as
// PermuteColumns. Used for per-column epsilon vectors.
func permuteFloats(vals []float64, order []int) []float64 {
	out := make([]float64, len(order))
	for j, c := range order {
		out[j] = vals[c]
	}
	return out
}

// checkOrder verifies order is a permutation of 0..cols-1.
func checkOrder(order []int, cols int) error {
	if cols < 1 {
		return ErrNoColumns
	}
	if len(order) != cols {
		return ErrBadOrder
	}
	seen := make([]bool, cols)
	for _, c := range order {
		if c < 0 || c >= cols || seen[c] {
			return ErrBadOrder
		}
		seen[c] = true
	}
	return nil
}
