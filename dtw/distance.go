package dtw

import "math"

// DistanceFunc is a pluggable pointwise cost between two sequence
// elements. Implementations must be pure (no side effects), total
// (defined for any pair) and return a non-negative value.
type DistanceFunc func(x, y float64) float64

// SquaredDistance returns (x−y)². The default metric of BuildCostMatrix.
func SquaredDistance(x, y float64) float64 {
	d := x - y

	return d * d
}

// AbsDistance returns |x−y|.
func AbsDistance(x, y float64) float64 {
	return math.Abs(x - y)
}
