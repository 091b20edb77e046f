// Package interval dispatches open-interval boundaries to the transform
// chain whose range is exactly that interval.
//
// 🚀 What is interval?
//
//	Given a target support "real value in (left, right)" — each boundary
//	finite or infinite — Transform picks one of four chains:
//
//	  (−∞, +∞) ↦ Identity
//	  ( l, +∞) ↦ Shift(l) ∘ Exp
//	  (−∞,  r) ↦ Shift(r) ∘ Negate ∘ Exp
//	  ( l,  r) ↦ Shift(l) ∘ Scale(r−l) ∘ Logistic   (requires l < r)
//
//	No other boundary pattern is valid; l == r is the distinct empty
//	interval, everything else (reversed infinities, l > r, NaN or an
//	infinite value smuggled through Finite) is an invalid interval.
//
// Boundaries are Bound values, a dedicated sentinel type: PosInf and
// NegInf are markers, not numbers, and never participate in arithmetic.
// Negating a sentinel flips its sign.
//
// The four most common supports are pre-built as package singletons, each
// under two names: Real/Unbounded, Positive/PositiveHalfLine,
// Negative/NegativeHalfLine, Unit/UnitInterval. Each is the minimal chain
// behaviorally identical to the dispatcher's output for the matching
// boundary pair.
//
// ⚙️ Usage:
//
//	tr, err := interval.Transform(interval.Finite(2), interval.Finite(5))
//	if err != nil {
//	  // ErrEmptyInterval or ErrInvalidInterval
//	}
//	y, logJac := tr.TransformLogJac(0) // y = 3.5
//
// Errors:
//   - ErrEmptyInterval   — left == right.
//   - ErrInvalidInterval — any other unsupported boundary pattern.
package interval
