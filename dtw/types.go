// Package dtw defines options, coordinates and sentinel errors for
// Dynamic Time Warping.
package dtw

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dtw package.
var (
	// ErrBadWindow indicates a negative time-warp window.
	ErrBadWindow = errors.New("dtw: time-warp window must be non-negative")

	// ErrNoAlignment indicates that the final cell of the cost matrix is
	// unreachable: no alignment exists within the given window (typically
	// the window is too narrow for the length difference of the inputs).
	ErrNoAlignment = errors.New("dtw: no alignment exists within the given window")

	// ErrUnreachableCell indicates that backtracking would have to step
	// through an unreachable (+Inf) cell. The matrix violates the tracer's
	// precondition: either it was not produced by BuildCostMatrix, or the
	// window left the origin unreachable.
	ErrUnreachableCell = errors.New("dtw: path tracing reached an unreachable cell")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("dtw: index out of bounds")
)

// UnboundedWindow is a Window value wide enough to never constrain the
// search, whatever the input lengths. BuildCostMatrix clamps the band to
// the matrix, so any window ≥ max(len(t1), len(t2)) behaves identically.
const UnboundedWindow = math.MaxInt

// Coord is one step of an alignment path: the first I elements of t1
// aligned with the first J elements of t2.
type Coord struct {
	I, J int
}

// Options configures a DTW computation.
//
// Fields:
//   - Window   — Sakoe–Chiba band radius: only cells with |i−j| ≤ Window
//     are examined. Must be ≥ 0; use UnboundedWindow to disable the
//     constraint. A window narrower than |len(t1)−len(t2)| makes the final
//     cell unreachable and DTW reports ErrNoAlignment.
//   - Distance — pointwise cost between two elements. nil selects
//     SquaredDistance.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10            // only compare elements within ±10 steps
//	opts.Distance = dtw.AbsDistance
//
//	cost, path, m, err := dtw.DTW(t1, t2, &opts)
type Options struct {
	Window   int
	Distance DistanceFunc
}

// DefaultOptions returns Options with an unbounded window and the default
// squared-difference distance.
func DefaultOptions() Options {
	return Options{
		Window:   UnboundedWindow,
		Distance: nil, // BuildCostMatrix substitutes SquaredDistance
	}
}
