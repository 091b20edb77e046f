package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unconstr/sigmoid"
)

// Identity maps x ↦ x over the whole line. Its log-Jacobian is zero.
type Identity struct{}

func (Identity) Transform(x float64) float64 { return x }

func (Identity) TransformLogJac(x float64) (float64, float64) {
	return x, sigmoid.ZeroLogJac()
}

func (Identity) Inverse(y float64) float64 { return y }

func (Identity) InverseLogJac(y float64) (float64, float64) {
	return y, sigmoid.ZeroLogJac()
}

func (Identity) Dimension() int { return ScalarDimension }

func (Identity) String() string { return "Identity" }

// Exp maps x ↦ eˣ, taking the whole line onto the positive half-line
// (0, ∞). Its forward log-Jacobian at x is x itself.
type Exp struct{}

func (Exp) Transform(x float64) float64 { return math.Exp(x) }

func (Exp) TransformLogJac(x float64) (float64, float64) {
	return math.Exp(x), x
}

// Inverse is the natural logarithm. For y ≤ 0 it follows math.Log's
// conventions (Inverse(0) = -Inf, Inverse(y<0) = NaN); the domain failure
// surfaces to the caller, it is not caught here.
func (Exp) Inverse(y float64) float64 { return math.Log(y) }

func (Exp) InverseLogJac(y float64) (float64, float64) {
	x := math.Log(y)

	return x, -x
}

func (Exp) Dimension() int { return ScalarDimension }

func (Exp) String() string { return "Exp" }

// Logistic maps x ↦ σ(x) = 1/(1+e⁻ˣ), taking the whole line onto the
// unit interval (0, 1). Both the map and its log-derivative delegate to
// the sigmoid package's overflow-safe forms.
type Logistic struct{}

func (Logistic) Transform(x float64) float64 { return sigmoid.Logistic(x) }

func (Logistic) TransformLogJac(x float64) (float64, float64) {
	return sigmoid.Logistic(x), sigmoid.LogisticLogDeriv(x)
}

func (Logistic) Inverse(y float64) float64 { return sigmoid.Logit(y) }

func (Logistic) InverseLogJac(y float64) (float64, float64) {
	return sigmoid.Logit(y), sigmoid.LogitLogDeriv(y)
}

func (Logistic) Dimension() int { return ScalarDimension }

func (Logistic) String() string { return "Logistic" }

// Shift maps x ↦ x + Offset over the whole line. Its log-Jacobian is zero.
type Shift struct {
	// Offset is added in the forward direction and subtracted on the way back.
	Offset float64
}

func (s Shift) Transform(x float64) float64 { return x + s.Offset }

func (s Shift) TransformLogJac(x float64) (float64, float64) {
	return x + s.Offset, sigmoid.ZeroLogJac()
}

func (s Shift) Inverse(y float64) float64 { return y - s.Offset }

func (s Shift) InverseLogJac(y float64) (float64, float64) {
	return y - s.Offset, sigmoid.ZeroLogJac()
}

func (s Shift) Dimension() int { return ScalarDimension }

func (s Shift) String() string { return fmt.Sprintf("Shift(%v)", s.Offset) }

// Scale maps x ↦ factor·x over the whole line, with the invariant
// factor > 0 enforced at construction. Its forward log-Jacobian is
// log(factor) everywhere.
type Scale struct {
	factor float64
}

// NewScale validates factor > 0 and returns the Scale value.
// A zero, negative, or NaN factor yields ErrNonPositiveScale and no
// usable transform.
func NewScale(factor float64) (Scale, error) {
	if !(factor > 0) {
		return Scale{}, fmt.Errorf("%w: got %v", ErrNonPositiveScale, factor)
	}

	return Scale{factor: factor}, nil
}

// Factor reports the validated multiplier.
func (s Scale) Factor() float64 { return s.factor }

func (s Scale) Transform(x float64) float64 { return s.factor * x }

func (s Scale) TransformLogJac(x float64) (float64, float64) {
	return s.factor * x, math.Log(s.factor)
}

func (s Scale) Inverse(y float64) float64 { return y / s.factor }

func (s Scale) InverseLogJac(y float64) (float64, float64) {
	return y / s.factor, -math.Log(s.factor)
}

func (s Scale) Dimension() int { return ScalarDimension }

func (s Scale) String() string { return fmt.Sprintf("Scale(%v)", s.factor) }

// Negate maps x ↦ −x over the whole line. The derivative magnitude is 1,
// so its log-Jacobian is zero.
type Negate struct{}

func (Negate) Transform(x float64) float64 { return -x }

func (Negate) TransformLogJac(x float64) (float64, float64) {
	return -x, sigmoid.ZeroLogJac()
}

func (Negate) Inverse(y float64) float64 { return -y }

func (Negate) InverseLogJac(y float64) (float64, float64) {
	return -y, sigmoid.ZeroLogJac()
}

func (Negate) Dimension() int { return ScalarDimension }

func (Negate) String() string { return "Negate" }
