package interval_test

import (
	"testing"

	"github.com/katalvlaran/unconstr/interval"
	"github.com/katalvlaran/unconstr/transform"
)

// BenchmarkTransform_Bounded measures dispatcher construction for the
// bounded pattern, the only one that validates a scale.
func BenchmarkTransform_Bounded(b *testing.B) {
	var tr transform.Transform
	var err error

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err = interval.Transform(interval.Finite(2), interval.Finite(5))
		if err != nil {
			b.Fatalf("Transform: %v", err)
		}
	}
	_ = tr
}

// BenchmarkBounded_TransformLogJac measures evaluation of the dispatched
// bounded chain, the hot path of an inference loop.
func BenchmarkBounded_TransformLogJac(b *testing.B) {
	tr, err := interval.Transform(interval.Finite(2), interval.Finite(5))
	if err != nil {
		b.Fatalf("Transform: %v", err)
	}
	x := 0.37
	var y, lj float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, lj = tr.TransformLogJac(x)
	}
	_, _ = y, lj
}
