package dtw

import "math"

// DTW computes the Dynamic Time Warping alignment between t1 and t2.
// Returns the optimal accumulated cost, the alignment path from (0, 0) to
// (len(t1), len(t2)), and the full cost matrix for diagnostics or
// visualization.
//
// A nil opts selects DefaultOptions: unbounded window, squared-difference
// distance.
//
// Errors:
//   - ErrBadWindow if opts.Window < 0; nothing is computed.
//   - ErrNoAlignment if no alignment exists within the window (the final
//     cell is unreachable). The matrix is still returned for inspection so
//     callers can see which cells stayed at +Inf; an infinite final cost is
//     never handed back as if it were a numeric distance.
//
// Both empty inputs are a valid degenerate case: cost 0, path [(0,0)].
// One empty input cannot be aligned with a non-empty one and reports
// ErrNoAlignment.
//
// Deterministic and pure: failures are structural, never transient, so
// there is nothing to retry.
func DTW(t1, t2 []float64, opts *Options) (float64, []Coord, *CostMatrix, error) {
	window := UnboundedWindow
	var dist DistanceFunc
	if opts != nil {
		window = opts.Window
		dist = opts.Distance
	}

	m, err := BuildCostMatrix(t1, t2, dist, window)
	if err != nil {
		return 0, nil, nil, err
	}

	cost := m.Final()
	if math.IsInf(cost, 1) {
		return 0, nil, m, ErrNoAlignment
	}

	path, err := TracePath(m)
	if err != nil {
		return 0, nil, m, err
	}

	return cost, path, m, nil
}
