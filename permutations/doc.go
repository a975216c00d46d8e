// Package permutations measures how much the order of sensitive
// attributes matters for sequential fairness adjustment.
//
// 🚀 Why orderings?
//
//	Sequential adjustment corrects attribute i against a label vector
//	already reshaped by attributes 0..i-1, so the fairness achieved per
//	attribute depends on its position. This package makes that
//	order-dependence observable: it runs a fresh sequential adjuster for
//	every one of the k! column orderings and aggregates risk and
//	unfairness per stage for each.
//
// ✨ Key features:
//   - Orderings — all k! column orderings, lexicographic
//   - RunAll — fit+transform per ordering, concurrently (each ordering
//     owns an independent adjuster; no shared mutable state), with stage
//     names relabeled to the original column identity ("sens_var_<col+1>")
//   - Performance / Unfairness — one stage-name → scalar map per
//     ordering, in enumeration order, ready for plotting layers
//
// ⚙️ Usage:
//
//	results, err := permutations.RunAll(yCalib, aCalib, yTest, aTest, nil, nil)
//	perf, err := permutations.Performance(yTrue, results, nil) // nil ⇒ metrics.MSE
//	unfs, err := permutations.Unfairness(results)
//
// Cost is factorial in the attribute count — accepted and documented, not
// optimized; sensitive attributes are few in practice (typically ≤4).
package permutations
