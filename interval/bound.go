package interval

import "fmt"

// boundKind discriminates the three shapes a Bound can take.
type boundKind uint8

const (
	boundFinite boundKind = iota
	boundNegInf
	boundPosInf
)

// Bound is one endpoint of an open interval: either a finite real or a
// signed-infinity sentinel. The sentinels are markers, not numbers — they
// are matched by the dispatcher and never enter arithmetic.
//
// The zero value is Finite(0).
type Bound struct {
	kind  boundKind
	value float64
}

// Finite wraps a finite real as a boundary. Passing NaN or ±Inf here does
// not promote to a sentinel; the dispatcher rejects such a pair with
// ErrInvalidInterval (use PosInf/NegInf for infinite endpoints).
func Finite(v float64) Bound { return Bound{kind: boundFinite, value: v} }

// PosInf and NegInf are the two sentinel boundaries.
var (
	PosInf = Bound{kind: boundPosInf}
	NegInf = Bound{kind: boundNegInf}
)

// Negate flips the boundary's sign: sentinels swap, finite values negate.
func (b Bound) Negate() Bound {
	switch b.kind {
	case boundPosInf:
		return NegInf
	case boundNegInf:
		return PosInf
	default:
		return Finite(-b.value)
	}
}

// IsFinite reports whether b carries a finite value.
func (b Bound) IsFinite() bool { return b.kind == boundFinite }

// Value returns the finite value and true, or (0, false) for a sentinel.
func (b Bound) Value() (float64, bool) {
	if b.kind != boundFinite {
		return 0, false
	}

	return b.value, true
}

func (b Bound) String() string {
	switch b.kind {
	case boundPosInf:
		return "+∞"
	case boundNegInf:
		return "-∞"
	default:
		return fmt.Sprintf("%v", b.value)
	}
}
