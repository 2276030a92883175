package dtw

import "math"

// TracePath reconstructs one optimal alignment path from a matrix produced
// by BuildCostMatrix, walking from the final cell back to the origin.
//
// At each step the minimal of the three predecessors wins — diagonal
// (i−1, j−1), vertical (i−1, j), horizontal (i, j−1), with out-of-range
// cells read as +Inf. On ties the first minimum wins: diagonal over
// vertical over horizontal. The tie-break is a behavioral contract, not an
// implementation detail: multiple optimal paths can exist and callers rely
// on reproducible output.
//
// The returned path starts at (0, 0), ends at (Rows()-1, Cols()-1), and
// consecutive coordinates differ by exactly one of the unit steps
// (1,1), (1,0), (0,1) when read forward.
//
// Returns ErrUnreachableCell if the final cell is +Inf or backtracking
// would have to step through a +Inf cell.
//
// Complexity: O(Rows()+Cols()) time, path length ≤ Rows()+Cols()−1.
func TracePath(m *CostMatrix) ([]Coord, error) {
	i, j := m.rows-1, m.cols-1
	if math.IsInf(m.at(i, j), 1) {
		return nil, ErrUnreachableCell
	}

	path := make([]Coord, 0, m.rows+m.cols-1)
	path = append(path, Coord{I: i, J: j})

	for i > 0 || j > 0 {
		diag := m.pred(i-1, j-1)
		vert := m.pred(i-1, j)
		horiz := m.pred(i, j-1)

		switch {
		case diag <= vert && diag <= horiz:
			// The minimum can only be +Inf when all three are, and then
			// the diagonal branch is the one selected.
			if math.IsInf(diag, 1) {
				return nil, ErrUnreachableCell
			}
			i--
			j--
		case vert <= horiz:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i, J: j})
	}

	// Built backward from (r, c); reverse in place.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}
