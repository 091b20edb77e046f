package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/unconstr/transform"
)

const (
	// tolExact bounds errors where the arithmetic is a handful of flops.
	tolExact = 1e-12
	// tolNumeric bounds analytic-vs-finite-difference comparisons.
	tolNumeric = 1e-6
)

// checkContract verifies the full four-operation consistency of tr at x:
// TransformLogJac agrees with Transform plus a finite-difference
// log-derivative, Inverse undoes Transform, and InverseLogJac negates the
// forward log-Jacobian at the recovered point.
func checkContract(t *testing.T, tr transform.Transform, x float64) {
	t.Helper()

	y := tr.Transform(x)
	y2, logJac := tr.TransformLogJac(x)
	assert.Equal(t, y, y2, "%v: TransformLogJac value must equal Transform at x=%v", tr, x)

	numeric := math.Log(math.Abs(fd.Derivative(tr.Transform, x, nil)))
	assert.True(t, scalar.EqualWithinAbsOrRel(logJac, numeric, tolNumeric, tolNumeric),
		"%v: forward log-Jacobian at x=%v: analytic %v vs numeric %v", tr, x, logJac, numeric)

	back := tr.Inverse(y)
	assert.True(t, scalar.EqualWithinAbsOrRel(back, x, 1e-9, 1e-9),
		"%v: round trip at x=%v came back as %v", tr, x, back)

	back2, invLogJac := tr.InverseLogJac(y)
	assert.Equal(t, back, back2, "%v: InverseLogJac value must equal Inverse at y=%v", tr, y)
	assert.True(t, scalar.EqualWithinAbsOrRel(invLogJac, -logJac, 1e-7, 1e-7),
		"%v: inverse log-Jacobian at y=%v must negate the forward one", tr, y)

	assert.Equal(t, transform.ScalarDimension, tr.Dimension(),
		"%v: every transform here is one-dimensional", tr)
}

// mustScale builds a Scale or fails the test.
func mustScale(t *testing.T, factor float64) transform.Scale {
	t.Helper()

	s, err := transform.NewScale(factor)
	if err != nil {
		t.Fatalf("NewScale(%v): %v", factor, err)
	}

	return s
}
