// SPDX-License-Identifier: MIT
// Package: unconstr/interval
//
// errors.go — sentinel errors for the interval package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • The dispatcher attaches the offending boundary pair via %w wrapping.

package interval

import "errors"

// ErrInvalidInterval indicates a boundary pair that matches none of the
// four supported patterns: reversed infinities such as (+∞, −∞),
// left > right, or a NaN/non-finite value passed through Finite.
// Usage: if errors.Is(err, ErrInvalidInterval) { /* reject the pair */ }.
var ErrInvalidInterval = errors.New("interval: boundaries do not form an open interval")

// ErrEmptyInterval indicates left == right: the open interval (l, l)
// contains no points. Kept distinct from ErrInvalidInterval so callers
// can tell a degenerate request from a malformed one.
// Usage: if errors.Is(err, ErrEmptyInterval) { /* widen the bounds */ }.
var ErrEmptyInterval = errors.New("interval: empty interval, left equals right")
