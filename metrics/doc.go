// Package metrics quantifies both sides of the fairness/performance
// trade-off for adjusted model scores.
//
// Performance side:
//   - Metric — the collaborator contract (yTrue, yPred) → scalar
//   - MSE for regression, Accuracy for classification, Risk to pick one
//   - Advisory flags a likely metric/task mismatch (continuous metric on
//     apparently binary labels) without blocking anything
//
// Fairness side:
//   - QuantileGap — sup-norm distance between two empirical quantile
//     functions, sampled at 100 evenly spaced probabilities
//   - Unfairness — the worst QuantileGap between any modality subgroup
//     and the whole population, over every attribute column
//
// Both sides have trace helpers (RiskTrace, UnfairnessTrace) producing
// the stage-name → scalar maps that rendering layers consume.
//
// The quantile rule here is the classic linear one (index p·(n-1) into
// the sorted sample), which stays defined for single-observation
// subgroups — unlike eqf.EQF, which deliberately rejects them.
package metrics
