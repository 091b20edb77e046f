// Package unconstr is your toolbox for moving between unconstrained
// ℝ-space and constrained supports — half-lines, bounded intervals, the
// unit interval — with exact log-Jacobian bookkeeping along the way.
//
// 🚀 What is unconstr?
//
//	A small, pure-Go bijection algebra for probabilistic inference:
//		• Elementary transforms: Identity, Exp, Logistic, Shift, Scale, Negate
//		• A composition algebra that chains them into one evaluable pipeline
//		• An interval dispatcher that picks the right chain for any pair of
//		  (possibly infinite) open-interval boundaries
//		• Canonical supports: the real line, both half-lines, the unit interval
//
// ✨ Why choose unconstr?
//
//   - Correct by construction — composition order, inverse order and
//     Jacobian accumulation verified against finite differences
//   - Numerically careful — logistic/logit log-derivatives never overflow,
//     even for |x| in the hundreds
//   - Pure Go — no cgo, immutable value types, safe for concurrent reads
//   - Zero-allocation hot paths — scalar structs, no hidden state
//
// Everything lives in three subpackages:
//
//	transform/ — the Transform contract, elementary bijections, Chain & Compose
//	interval/  — boundary sentinels, the (left,right) dispatcher, canonical supports
//	sigmoid/   — numerically stable logistic/logit primitives
//
// Quick example:
//
//	tr, _ := interval.Transform(interval.Finite(2), interval.Finite(5))
//	y, logJac := tr.TransformLogJac(0) // y = 3.5, strictly inside (2,5)
//	x := tr.Inverse(y)                 // x = 0 again
//
// Typical use: a sampler or optimizer walks freely over ℝ while the model's
// parameter lives in (l, r); Transform maps proposals onto the support and
// logJac corrects the target density for the change of variables.
//
//	go get github.com/katalvlaran/unconstr
package unconstr
