package math

import "math"

// Epsilon is the tolerance used for all floating point comparisons.
// Transform chains accumulate error, so exact equality is never used.
const Epsilon = 1e-5

// Equals reports whether two floats are equal within Epsilon.
func Equals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
