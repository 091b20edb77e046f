// Package interval: canonical support singletons.
//
// supports.go — pre-built transforms for the four most common supports,
// each the minimal chain behaviorally identical to what the dispatcher
// produces for the matching boundary pair (the dispatcher's half-line
// chains carry an extra Shift(0), which moves nothing).
//
// Every support is reachable under two names for ergonomic compatibility;
// the pairs alias the same immutable value. All are initialized once at
// startup and never reassigned.

package interval

import "github.com/katalvlaran/unconstr/transform"

// Real maps ℝ onto itself: the (−∞, +∞) support.
var Real transform.Transform = transform.Identity{}

// Unbounded is Real's alternate name.
var Unbounded = Real

// Positive maps ℝ onto the positive half-line (0, ∞).
var Positive transform.Transform = transform.Exp{}

// PositiveHalfLine is Positive's alternate name.
var PositiveHalfLine = Positive

// Negative maps ℝ onto the negative half-line (−∞, 0).
var Negative = transform.Compose(transform.Negate{}, transform.Exp{})

// NegativeHalfLine is Negative's alternate name.
var NegativeHalfLine = Negative

// Unit maps ℝ onto the unit interval (0, 1).
var Unit transform.Transform = transform.Logistic{}

// UnitInterval is Unit's alternate name.
var UnitInterval = Unit
