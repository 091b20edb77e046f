// Package transform implements scalar bijections between the real line
// and a target support, together with the log-absolute-determinant of
// their derivative (the "log-Jacobian") needed for change-of-variables
// corrections in probabilistic inference.
//
// 🚀 What is transform?
//
//	The algebra has two layers:
//	  • Elementary bijections — Identity, Exp, Logistic, Shift, Scale,
//	    Negate — each a stateless (or single-parameter) immutable value.
//	  • Chain — an ordered composition of transforms, evaluated as the
//	    mathematical function composition: (t₁,t₂,…,tₙ) applies tₙ first
//	    and t₁ last in the forward direction.
//
// ✨ Key guarantees:
//
//   - Inverse order is the exact mirror of forward order — the defining
//     correctness property of the chain.
//   - Forward and inverse log-Jacobians sum elementary contributions at
//     their own intermediate inputs (chain rule), seeded with
//     sigmoid.ZeroLogJac().
//   - Compose always flattens: composing chains never nests, so
//     (t₁∘t₂)∘t₃ and t₁∘(t₂∘t₃) produce identical sequences.
//   - All values are immutable after construction; concurrent reads need
//     no locking.
//
// ⚙️ Usage:
//
//	tr := transform.Compose(transform.Shift{Offset: 1}, transform.Exp{})
//	y, logJac := tr.TransformLogJac(0) // y = 2, logJac = 0
//	x := tr.Inverse(y)                 // x = 0
//
// Errors:
//   - ErrNonPositiveScale — NewScale called with factor ≤ 0 (or NaN).
//
// Runtime domain failures follow the math package's conventions: e.g.
// Exp{}.Inverse(y) for y ≤ 0 goes through math.Log and returns -Inf or
// NaN rather than panicking. See the interval package for building chains
// from open-interval boundaries.
//
// Complexity: elementary operations are O(1); chain operations are
// O(chain length). Nothing blocks, suspends, or allocates on the
// evaluation path.
package transform
