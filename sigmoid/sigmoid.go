package sigmoid

import "math"

// Logistic returns σ(x) = 1/(1+e⁻ˣ).
//
// The computation branches on the sign of x so the exponential argument is
// never positive: e⁻ˣ for x ≥ 0, eˣ otherwise. Both branches agree exactly
// at x = 0 and neither can overflow.
func Logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// Logit returns σ⁻¹(p) = log(p/(1−p)), the functional inverse of Logistic.
//
// Written as log(p) − log1p(−p) to keep precision for p near 0 and 1.
// Out-of-domain inputs follow math.Log conventions: Logit(0) = -Inf,
// Logit(1) = +Inf, and p < 0 or p > 1 yields NaN.
func Logit(p float64) float64 {
	return math.Log(p) - math.Log1p(-p)
}

// LogisticLogDeriv returns log σ'(x) = log σ(x) + log(1−σ(x)).
//
// For x ≥ 0 this is −x − 2·log1p(e⁻ˣ); for x < 0 the mirrored form
// x − 2·log1p(eˣ). Unlike log(eˣ/(1+eˣ)²), neither form overflows: the
// exponential argument is always ≤ 0.
func LogisticLogDeriv(x float64) float64 {
	if x >= 0 {
		return -x - 2*math.Log1p(math.Exp(-x))
	}

	return x - 2*math.Log1p(math.Exp(x))
}

// LogitLogDeriv returns log|logit'(p)| = −log(p) − log1p(−p).
//
// It equals −LogisticLogDeriv(Logit(p)) analytically; computing it directly
// from p avoids the round trip through Logit.
func LogitLogDeriv(p float64) float64 {
	return -math.Log(p) - math.Log1p(-p)
}

// ZeroLogJac returns the additive identity for log-Jacobian accumulation.
// Zero-derivative-magnitude-one transforms (Identity, Shift, Negate) report
// it, and chain folds use it as their seed.
func ZeroLogJac() float64 { return 0 }
