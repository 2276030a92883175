// Package dtw computes Dynamic Time Warping (DTW) alignments between
// numeric sequences using a Sakoe–Chiba band and upper-bound pruning.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative pointwise distance.  It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - banded search: only cells with |i−j| ≤ Window are examined
//   - upper-bound pruning: cells whose accumulated cost already exceeds a
//     cheap baseline alignment cost are skipped (PrunedDTW-style)
//   - full (r+1)×(c+1) cost matrix returned for diagnostics/visualization
//   - exact alignment path recovery with a fixed tie-break policy
//   - pluggable pointwise distance (default: squared difference)
//
// ⚙️ Usage:
//
//	import "github.com/seqalign/seqalign/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 5 // Sakoe–Chiba band ±5
//
//	cost, path, m, err := dtw.DTW(t1, t2, &opts)
//
// Algorithm outline:
//  1. upperBound = Σ dist(t1[k], t2[k]) over the overlapping prefix —
//     the cost of the trivial index-by-index alignment.
//  2. Fill the (r+1)×(c+1) matrix row by row inside the band, carrying a
//     per-row search window that shrinks as cells exceed upperBound.
//  3. Backtrack from (r, c) to (0, 0) along minimal predecessors
//     (diagonal preferred over vertical over horizontal on ties).
//
// Pruning is an optimization, not an approximation: a cell whose
// accumulated cost exceeds a cost attainable by some complete alignment
// cannot lie on the optimal path.  When len(t1) != len(t2) the baseline
// sum covers only the overlapping prefix and is not guaranteed to be
// attainable; see BuildCostMatrix for the documented limitation.
//
// Performance:
//
//   - Time:   O(r·c) worst case, typically far less inside a narrow band
//   - Memory: O(r·c) (dense matrix, allocated once per call)
//
// Errors:
//
//   - ErrBadWindow        — Window < 0.
//   - ErrNoAlignment      — no alignment exists within the given window.
//   - ErrUnreachableCell  — backtracking hit an unreachable (+Inf) cell.
//   - ErrIndexOutOfBounds — CostMatrix.At with indices outside the matrix.
package dtw
