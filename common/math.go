package common

import "math"

// Epsilon is the relative tolerance used for geometry change detection.
const Epsilon = 1e-5

// NearlyEqual reports whether a and b differ by no more than Epsilon relative
// to the larger magnitude. Only an exact match equals zero.
func NearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= Epsilon*math.Max(math.Abs(a), math.Abs(b))
}
