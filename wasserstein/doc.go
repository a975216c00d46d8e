// Package wasserstein adjusts continuous model scores so their
// distribution no longer depends on categorical sensitive attributes,
// using 1-D optimal-transport barycentric projection — one attribute at a
// time, chained sequentially for multiple attributes.
//
// 🚀 How the transport works
//
//	For one sensitive attribute, calibration data is partitioned by
//	modality (each distinct attribute value). Every modality gets an
//	empirical CDF and quantile function (EQF), plus a weight equal to its
//	empirical frequency. A test score y with modality m is then mapped as
//
//	  fair(y) = Σ_{m′} w_{m′} · EQF_{m′}( CDF_m(y + jitter) )
//
//	i.e. through its own group's distribution into quantile space, then
//	back through the prevalence-weighted mixture of every group's inverse
//	distribution. The output distribution is identical across modalities.
//
// ✨ Key features:
//   - Adjuster: fit/transform for a single attribute
//   - Sequential: chains adjusters across attribute columns, recording a
//     stage trace ("Base model", "sens_var_1", …) after every step
//   - epsilon knob: output = (1-ε)·fair + ε·original; ε=0 full fairness,
//     ε=1 identity pass-through, anything between trades the two off
//   - tie-breaking uniform jitter in [-Sigma, Sigma] keeps the CDF/EQF
//     pair invertible on discrete or duplicated scores (injectable RNG)
//
// ⚙️ Usage:
//
//	opts := wasserstein.DefaultOptions()
//	adj := wasserstein.NewAdjuster(&opts)
//	if err := adj.Fit(yCalib, attrCalib); err != nil { ... }
//	yFair, err := adj.Transform(yTest, attrTest, 0.2)
//
// Sequential fairness is order-dependent: attribute i is corrected with
// respect to a score vector already reshaped by attributes 0..i-1. That
// is a property of the method, not a bug — the permutations package
// measures it across all orderings.
//
// Instances follow a strict two-phase fit-then-transform protocol and are
// not safe for concurrent use; independent instances are.
//
// Complexity: fit O(n log n) per attribute, transform O(n·k + n·log n)
// for n samples and k test modalities.
package wasserstein
