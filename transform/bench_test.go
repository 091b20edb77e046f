package transform_test

import (
	"testing"

	"github.com/katalvlaran/unconstr/transform"
)

// benchTransform runs TransformLogJac over a fixed probe so different
// shapes stay comparable.
func benchTransform(b *testing.B, tr transform.Transform) {
	x := 0.37
	var y, lj float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, lj = tr.TransformLogJac(x)
	}
	_, _ = y, lj
}

func BenchmarkLogistic_TransformLogJac(b *testing.B) {
	benchTransform(b, transform.Logistic{})
}

func BenchmarkChain3_TransformLogJac(b *testing.B) {
	sc, err := transform.NewScale(3)
	if err != nil {
		b.Fatalf("NewScale: %v", err)
	}
	benchTransform(b, transform.Compose(transform.Shift{Offset: 2}, sc, transform.Logistic{}))
}

// BenchmarkReadTransform_NoJacobian measures the cheap buffer path, which
// must not touch derivative code.
func BenchmarkReadTransform_NoJacobian(b *testing.B) {
	tr := transform.Compose(transform.Shift{Offset: 1}, transform.Exp{})
	buf := []float64{0.37}
	var y float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, _ = transform.ReadTransform(tr, buf, 0)
	}
	_ = y
}
