package transform_test

import (
	"fmt"

	"github.com/katalvlaran/unconstr/transform"
)

// ExampleCompose builds the positive-half-line pipeline shifted to start
// at 1 and walks a point there and back.
//
// Scenario:
//
//	A model parameter lives in (1, ∞) while the sampler proposes on ℝ.
//	Shift(1)∘Exp maps proposals onto the support; the log-Jacobian
//	corrects the target density.
func ExampleCompose() {
	tr := transform.Compose(transform.Shift{Offset: 1}, transform.Exp{})

	y, logJac := tr.TransformLogJac(0)
	fmt.Printf("forward: %.1f (logJac %.1f)\n", y, logJac)
	fmt.Printf("back:    %.1f\n", tr.Inverse(y))
	// Output:
	// forward: 2.0 (logJac 0.0)
	// back:    0.0
}

// ExampleChain_String shows the composition notation a chain renders.
func ExampleChain_String() {
	sc, _ := transform.NewScale(3)
	tr := transform.Compose(transform.Shift{Offset: 2}, sc, transform.Logistic{})

	fmt.Println(tr)
	// Output:
	// Shift(2) ∘ Scale(3) ∘ Logistic
}
