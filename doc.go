// Package seqalign measures similarity between time-ordered numeric
// sequences by warping the time axis.
//
// 🚀 What is seqalign?
//
//	A small, pure-Go library for sequence alignment built around
//	Dynamic Time Warping (DTW) with a Sakoe–Chiba band and
//	upper-bound pruning:
//	  • dtw/    — banded, pruned cost-matrix construction, optimal
//	              alignment path recovery, pluggable pointwise distance
//	  • seqgen/ — deterministic synthetic series (pulse, chirp, drift)
//	              for fixtures, demos and benchmarks
//
// ✨ Why choose seqalign?
//
//   - Exact results – windowing and pruning skip work, never change the
//     answer (given a valid pointwise upper bound; see dtw package docs)
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same inputs, same matrix, same path, every time
//
// Quick ASCII picture of an alignment path through the cost matrix:
//
//	t2 →   1   6   2   3
//	t1 ↓ ┌───┬───┬───┬───┐
//	  1  │ ● │   │   │   │
//	  3  │   │ ● │ ● │   │
//	  4  │   │   │   │ ● │
//	     └───┴───┴───┴───┘
//
// Dive into the dtw package docs for the algorithm walkthrough, error
// semantics and complexity notes, and into examples/ for a runnable driver.
//
//	go get github.com/seqalign/seqalign/dtw
package seqalign
