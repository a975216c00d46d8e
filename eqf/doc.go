// Package eqf provides the empirical distribution primitives used by the
// Wasserstein fairness adjusters: a right-continuous empirical CDF and an
// interpolated empirical quantile function (EQF).
//
// 🚀 What is an EQF?
//
//	Sort a sample of n values and pin the i-th order statistic to the
//	quantile position i/(n-1); linear interpolation between those knots
//	yields a continuous map from [0,1] back into value space — the
//	(pseudo-)inverse of the ECDF. Composing ECDF and EQF across subgroup
//	distributions is the whole transport machinery of this module.
//
// ✨ Key properties:
//   - ECDF.At(x) = (# observations ≤ x) / n — right-continuous steps
//   - EQF.At(0) and EQF.At(1) reproduce the sample min/max exactly
//   - EQF.At(i/(n-1)) reproduces the i-th order statistic exactly
//   - queries outside [0,1] (or NaN) return ErrQuantileRange
//
// ⚙️ Usage:
//
//	q, err := eqf.NewEQF([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	v, err := q.At(0.5) // 5.5
//
// A one-observation sample has no interpolable quantile function; NewEQF
// rejects it with ErrDegenerateSample. Callers that partition data by
// subgroup must guarantee at least two observations per subgroup.
//
// Complexity: construction O(n log n) (sort), queries O(log n).
package eqf
