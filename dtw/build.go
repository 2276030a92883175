package dtw

// BuildCostMatrix computes the accumulated-cost matrix for t1 (length r)
// and t2 (length c) under the given pointwise distance and Sakoe–Chiba
// window, pruning cells whose accumulated cost exceeds a baseline
// alignment cost.
//
// Recurrence (missing neighbors read as +Inf):
//
//	D[0][0] = 0
//	D[i][j] = dist(t1[i-1], t2[j-1]) + min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//
// Only columns within [i−window, i+window] are examined, further narrowed
// by two cursors carried across rows: searchStart advances past a prefix
// of cells that exceeded the bound before any in-bound cell was seen, and
// searchEnd marks how far the previous row stayed under the bound — once
// the current row exceeds the bound at or beyond it, the rest of the row
// is skipped. Cells never examined keep the +Inf sentinel.
//
// The bound is Σ dist(t1[k], t2[k]) for k < min(r, c): the cost of the
// trivial index-by-index alignment. For r == c this is attainable, so
// pruning never changes D[r][c]. For r != c the sum covers only the
// overlapping prefix and may undercut the true optimum; this matches the
// reference behavior and is a known limitation, not silently corrected.
//
// A nil dist selects SquaredDistance. window must be ≥ 0 (ErrBadWindow
// otherwise); a window narrower than |r−c| leaves D[r][c] at +Inf.
// Zero-length inputs yield a degenerate matrix with only D[0][0] filled.
//
// Complexity: O(r·c) time worst case, O(r·c) memory.
func BuildCostMatrix(t1, t2 []float64, dist DistanceFunc, window int) (*CostMatrix, error) {
	if window < 0 {
		return nil, ErrBadWindow
	}
	if dist == nil {
		dist = SquaredDistance
	}

	r, c := len(t1), len(t2)

	// Baseline alignment cost over the overlapping prefix.
	overlap := r
	if c < overlap {
		overlap = c
	}
	var upperBound float64
	for k := 0; k < overlap; k++ {
		upperBound += dist(t1[k], t2[k])
	}

	m := newCostMatrix(r+1, c+1)
	m.set(0, 0, 0)

	searchStart, searchEnd := 1, 1
	for i := 1; i <= r; i++ {
		belowUpperBound := false
		nextSearchEnd := i

		// Band for this row: [max(searchStart, i−window), min(i+window, c)],
		// clamped without overflow (window may be UnboundedWindow).
		jBegin := searchStart
		if window < i && i-window > jBegin {
			jBegin = i - window
		}
		jEnd := c
		if window <= c-i {
			jEnd = i + window
		}

		for j := jBegin; j <= jEnd; j++ {
			cell := dist(t1[i-1], t2[j-1]) + min3(m.at(i-1, j-1), m.at(i-1, j), m.at(i, j-1))
			m.set(i, j, cell)

			if cell > upperBound {
				if !belowUpperBound {
					// Nothing in-bound yet: the next row starts past j.
					searchStart = j + 1
				}
				if j >= searchEnd {
					// Past the previous row's in-bound reach every remaining
					// cell of this row can only grow; skip them.
					break
				}
			} else {
				belowUpperBound = true
				nextSearchEnd = j + 1
			}
		}

		searchEnd = nextSearchEnd
	}

	return m, nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
