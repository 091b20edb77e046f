package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unconstr/sigmoid"
)

// Chain is an ordered, non-empty composition of transforms, evaluated as
// their mathematical function composition: the last element of the
// sequence is applied first in the forward direction, the first element
// last. So Compose(t1, t2, t3) forward-evaluates t1(t2(t3(x))).
//
// A Chain is always flat — Compose never nests one Chain inside another —
// and immutable once built.
type Chain struct {
	seq []Transform
}

// Compose combines any number of transforms into a single flat pipeline,
// folding left: Compose(a, b, c) == Compose(Compose(a, b), c).
//
// Chain arguments contribute their elements in place, which makes the
// operator associative at the sequence level, not just behaviorally.
// Compose of one transform returns that transform unchanged; Compose of
// none returns Identity.
func Compose(ts ...Transform) Transform {
	seq := make([]Transform, 0, len(ts))
	for _, t := range ts {
		if c, ok := t.(Chain); ok {
			seq = append(seq, c.seq...)
			continue
		}
		seq = append(seq, t)
	}

	switch len(seq) {
	case 0:
		return Identity{}
	case 1:
		// A composite of one element behaves identically to that element,
		// so hand it back unwrapped.
		return seq[0]
	default:
		return Chain{seq: seq}
	}
}

// Sequence returns a copy of the flattened element sequence, leftmost
// (applied last in the forward direction) first.
func (c Chain) Sequence() []Transform {
	out := make([]Transform, len(c.seq))
	copy(out, c.seq)

	return out
}

// Len reports the number of elements in the chain.
func (c Chain) Len() int { return len(c.seq) }

// Transform forward-evaluates the chain right-to-left.
func (c Chain) Transform(x float64) float64 {
	for i := len(c.seq) - 1; i >= 0; i-- {
		x = c.seq[i].Transform(x)
	}

	return x
}

// TransformLogJac forward-evaluates the chain and accumulates the
// log-Jacobian by the chain rule: each element contributes its own
// log-|derivative| evaluated at its own intermediate input, and the
// contributions sum.
func (c Chain) TransformLogJac(x float64) (float64, float64) {
	logJac := sigmoid.ZeroLogJac()
	var lj float64
	for i := len(c.seq) - 1; i >= 0; i-- {
		x, lj = c.seq[i].TransformLogJac(x)
		logJac += lj
	}

	return x, logJac
}

// Inverse evaluates the chain left-to-right — the exact mirror of the
// forward order, which is what makes the chain a bijection.
func (c Chain) Inverse(y float64) float64 {
	for _, t := range c.seq {
		y = t.Inverse(y)
	}

	return y
}

// InverseLogJac mirrors TransformLogJac in the inverse direction, summing
// each element's inverse log-Jacobian along the way.
func (c Chain) InverseLogJac(y float64) (float64, float64) {
	logJac := sigmoid.ZeroLogJac()
	var lj float64
	for _, t := range c.seq {
		y, lj = t.InverseLogJac(y)
		logJac += lj
	}

	return y, logJac
}

// Dimension reports ScalarDimension: a chain of scalar bijections is
// still a scalar bijection.
func (c Chain) Dimension() int { return ScalarDimension }

// String renders the chain in composition notation, leftmost element
// first, e.g. "Shift(2) ∘ Scale(3) ∘ Logistic".
func (c Chain) String() string {
	parts := make([]string, len(c.seq))
	for i, t := range c.seq {
		if s, ok := t.(fmt.Stringer); ok {
			parts[i] = s.String()
			continue
		}
		parts[i] = "Transform"
	}

	return strings.Join(parts, " ∘ ")
}
