package transform

// Buffer-interaction contract.
//
// Array-valued transform trees lay many scalar transforms out against a
// flat buffer: each scalar consumes exactly Dimension() == 1 slot at the
// current position and hands the advanced position to the next scalar.
// The helpers below implement that slot discipline for any Transform, in
// both directions, with and without log-Jacobian.
//
// The no-Jacobian entry points never touch derivative code, so hot loops
// that only need mapped values pay nothing for the capability.

// ReadTransform applies t to buf[pos] and returns the mapped value along
// with the advanced position.
func ReadTransform(t Transform, buf []float64, pos int) (y float64, next int) {
	return t.Transform(buf[pos]), pos + t.Dimension()
}

// ReadTransformLogJac applies t to buf[pos] and returns the mapped value,
// the forward log-Jacobian at buf[pos], and the advanced position.
func ReadTransformLogJac(t Transform, buf []float64, pos int) (y, logJac float64, next int) {
	y, logJac = t.TransformLogJac(buf[pos])

	return y, logJac, pos + t.Dimension()
}

// WriteInverse writes t's inverse of y into buf[pos] and returns the
// advanced position.
func WriteInverse(t Transform, y float64, buf []float64, pos int) (next int) {
	buf[pos] = t.Inverse(y)

	return pos + t.Dimension()
}

// WriteInverseLogJac writes t's inverse of y into buf[pos] and returns
// the inverse log-Jacobian at y along with the advanced position.
func WriteInverseLogJac(t Transform, y float64, buf []float64, pos int) (logJac float64, next int) {
	buf[pos], logJac = t.InverseLogJac(y)

	return logJac, pos + t.Dimension()
}
