// Package sigmoid provides numerically stable logistic/logit primitives
// and their log-derivatives, the numeric backbone of the transform and
// interval packages.
//
// 🚀 What is sigmoid?
//
//	Four scalar functions and one constant-maker:
//	  • Logistic(x)        — σ(x) = 1/(1+e⁻ˣ), ℝ → (0,1)
//	  • Logit(p)           — σ⁻¹(p) = log(p/(1−p)), (0,1) → ℝ
//	  • LogisticLogDeriv(x) — log σ'(x), safe for |x| in the hundreds
//	  • LogitLogDeriv(p)    — log |logit'(p)| = −log p − log(1−p)
//	  • ZeroLogJac()        — additive identity for log-Jacobian sums
//
// ✨ Why not just math.Exp / math.Log?
//
//	The naive log σ'(x) = log(eˣ/(1+eˣ)²) overflows already near x ≈ 710.
//	Every function here is written in Log1p form and branches on the sign
//	of its argument, so the result stays finite and accurate wherever the
//	true value is representable.
//
// Domain behavior follows the math package's conventions: out-of-domain
// inputs yield ±Inf or NaN, never a panic. Logit(0) is -Inf, Logit(1) is
// +Inf, and Logit(p) for p outside [0,1] is NaN.
//
// Complexity: every function is O(1), allocation-free.
package sigmoid
