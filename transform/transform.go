package transform

// ScalarDimension is the number of buffer slots a scalar transform
// consumes or produces; every transform in this package reports it.
const ScalarDimension = 1

// Transform is the capability contract shared by every bijection in the
// algebra, elementary or composite.
//
// The four evaluation operations must be mutually consistent:
//
//   - TransformLogJac(x) == (Transform(x), J(x)), where J is the analytic
//     log-|derivative| of the forward map at x;
//   - Inverse(Transform(x)) == x for all x in the domain (up to
//     floating-point tolerance);
//   - InverseLogJac(y) returns the log-Jacobian of the inverse map,
//     which equals −J(Inverse(y)).
//
// TransformLogJac and InverseLogJac exist alongside the plain variants so
// hot loops that only need the mapped value never pay for derivative
// computation; callers choose the entry point, not a runtime flag.
//
// Implementations are immutable values: all methods are pure and safe for
// concurrent use.
type Transform interface {
	// Transform maps x from the unconstrained line into the support.
	Transform(x float64) float64

	// TransformLogJac maps x and also returns the forward log-Jacobian at x.
	TransformLogJac(x float64) (y, logJac float64)

	// Inverse maps y from the support back to the unconstrained line.
	Inverse(y float64) float64

	// InverseLogJac maps y back and also returns the log-Jacobian of the
	// inverse map at y.
	InverseLogJac(y float64) (x, logJac float64)

	// Dimension reports how many scalar slots the transform spans: always
	// ScalarDimension for this package.
	Dimension() int
}
