package transform

import "errors"

// ErrNonPositiveScale indicates Scale construction with a factor that is
// zero, negative, or NaN. Scale must have a strictly positive factor so
// its log-Jacobian log(factor) is finite and the map stays a bijection.
// Usage: if errors.Is(err, ErrNonPositiveScale) { /* reject the factor */ }.
var ErrNonPositiveScale = errors.New("transform: scale factor must be strictly positive")
