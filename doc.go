// Package seqfair post-processes model scores for demographic parity —
// sequential Wasserstein-barycenter fairness adjustment with a continuous
// fairness/accuracy trade-off and full order-sensitivity analysis.
//
// 🚀 What is seqfair?
//
//	An in-memory library that removes statistical dependence between a
//	model's continuous output and categorical sensitive attributes, one
//	attribute at a time:
//		• Empirical primitives: ECDF & interpolated quantile functions (EQF)
//		• Transport: per-attribute Wasserstein barycentric projection
//		• Sequencing: chained multi-attribute adjustment with a stage trace
//		• Trade-off: epsilon knob from full fairness (0) to identity (1)
//		• Analysis: all k! attribute orderings, fairness & risk per stage
//
// ✨ Why choose seqfair?
//
//   - Model-agnostic – adjusts scores, never touches the predictor
//   - Deterministic on demand – injectable RNG for the tie-breaking jitter
//   - Honest about order – sequential fairness is order-dependent, and the
//     permutations package measures exactly how much
//   - Pure Go – no cgo, no I/O, no hidden deps
//
// Everything is organized under four subpackages:
//
//	eqf/          — empirical CDF & quantile-function primitives
//	wasserstein/  — single- and multi-attribute transport adjusters
//	metrics/      — risk (MSE/accuracy) & quantile-gap unfairness
//	permutations/ — exhaustive attribute-ordering analysis
//
// Quick sketch:
//
//	adj := wasserstein.NewSequential(nil)
//	_ = adj.Fit(yCalib, attrsCalib)           // one column per sensitive attribute
//	yFair, _ := adj.Transform(yTest, attrsTest, nil) // nil ⇒ full fairness per stage
//	trace := adj.SequentialFairness()          // "Base model", "sens_var_1", ...
//
// Dive into the per-package doc.go files for contracts, edge cases and
// complexity notes.
//
//	go get github.com/katalvlaran/seqfair
package seqfair
