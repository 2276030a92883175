package dtw

import (
	"fmt"
	"math"
	"strings"
)

// CostMatrix is the accumulated-cost matrix of one DTW computation:
// a dense (r+1)×(c+1) grid of float64 values in row-major order.
// Cell (i, j) with i, j ≥ 1 holds the minimum accumulated distance to
// align the first i elements of t1 with the first j elements of t2;
// cell (0, 0) is 0 and every cell never examined by the builder stays
// at the +Inf sentinel.
//
// BuildCostMatrix exclusively owns construction; after it returns the
// matrix is read-only. TracePath and callers only read it.
type CostMatrix struct {
	rows, cols int       // matrix dimensions, len(t1)+1 × len(t2)+1
	cells      []float64 // flat backing storage, length rows*cols
}

// newCostMatrix allocates a rows×cols matrix with every cell at +Inf.
// Complexity: O(rows·cols) time and memory, a single allocation.
func newCostMatrix(rows, cols int) *CostMatrix {
	cells := make([]float64, rows*cols)
	inf := math.Inf(1)
	for i := range cells {
		cells[i] = inf
	}

	return &CostMatrix{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows, len(t1)+1.
// Complexity: O(1).
func (m *CostMatrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns, len(t2)+1.
// Complexity: O(1).
func (m *CostMatrix) Cols() int {
	return m.cols
}

// At retrieves the accumulated cost at (i, j). Cells outside the examined
// band read as +Inf. Returns ErrIndexOutOfBounds for indices outside the
// matrix. Complexity: O(1).
func (m *CostMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("CostMatrix.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	if j < 0 || j >= m.cols {
		return 0, fmt.Errorf("CostMatrix.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.cells[i*m.cols+j], nil
}

// Final returns the accumulated cost of the last cell, (Rows()-1, Cols()-1).
// +Inf means no alignment was reachable within the window.
// Complexity: O(1).
func (m *CostMatrix) Final() float64 {
	return m.cells[len(m.cells)-1]
}

// at reads (i, j) without bounds checking. Builder/tracer hot path only;
// callers guarantee 0 ≤ i < rows and 0 ≤ j < cols.
func (m *CostMatrix) at(i, j int) float64 {
	return m.cells[i*m.cols+j]
}

// set writes (i, j) without bounds checking. Builder only.
func (m *CostMatrix) set(i, j int, v float64) {
	m.cells[i*m.cols+j] = v
}

// pred reads a backtracking predecessor: out-of-range coordinates read as
// the +Inf sentinel, so missing neighbors never win the argmin.
func (m *CostMatrix) pred(i, j int) float64 {
	if i < 0 || j < 0 {
		return math.Inf(1)
	}

	return m.cells[i*m.cols+j]
}

// String implements fmt.Stringer for easy debugging: one bracketed line
// per row, +Inf cells rendered as "+Inf".
// Complexity: O(rows·cols) for string construction.
func (m *CostMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ { // iterate over columns
			fmt.Fprintf(&b, "%g", m.cells[i*m.cols+j])
			if j < m.cols-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
