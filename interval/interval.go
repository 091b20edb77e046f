package interval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unconstr/transform"
)

// Transform builds the scalar bijection whose range is the open interval
// (left, right).
//
// Exactly four boundary patterns are valid:
//
//	(−∞, +∞) ↦ Identity
//	( l, +∞) ↦ Shift(l) ∘ Exp
//	(−∞,  r) ↦ Shift(r) ∘ Negate ∘ Exp
//	( l,  r) ↦ Shift(l) ∘ Scale(r−l) ∘ Logistic, requiring l < r
//
// left == right fails with ErrEmptyInterval; every other combination —
// including the reversed pair (+∞, −∞), which gets no implicit swap —
// fails with ErrInvalidInterval. Both errors wrap the offending pair.
func Transform(left, right Bound) (transform.Transform, error) {
	switch {
	case left.kind == boundNegInf && right.kind == boundPosInf:
		return transform.Identity{}, nil

	case left.kind == boundFinite && right.kind == boundPosInf:
		if !finite(left.value) {
			break
		}

		return transform.Compose(transform.Shift{Offset: left.value}, transform.Exp{}), nil

	case left.kind == boundNegInf && right.kind == boundFinite:
		if !finite(right.value) {
			break
		}

		return transform.Compose(
			transform.Shift{Offset: right.value},
			transform.Negate{},
			transform.Exp{},
		), nil

	case left.kind == boundFinite && right.kind == boundFinite:
		if !finite(left.value) || !finite(right.value) {
			break
		}
		if left.value == right.value {
			return nil, fmt.Errorf("%w: (%v, %v)", ErrEmptyInterval, left, right)
		}
		if left.value > right.value {
			break
		}

		scale, err := transform.NewScale(right.value - left.value)
		if err != nil {
			// Unreachable for ordered finite boundaries, but the scale
			// invariant stays authoritative.
			return nil, fmt.Errorf("interval (%v, %v): %w", left, right, err)
		}

		return transform.Compose(
			transform.Shift{Offset: left.value},
			scale,
			transform.Logistic{},
		), nil
	}

	return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidInterval, left, right)
}

// finite reports whether v is an ordinary real, excluding NaN and ±Inf
// that were smuggled through Finite instead of the sentinels.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
