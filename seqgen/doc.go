// SPDX-License-Identifier: MIT
// Package: seqalign/seqgen
//
// Package seqgen produces deterministic 1-D synthetic time series for
// tests, demos and benchmarks.
//
// What:
//
//   - Pulse — rectangular or triangular pulse train.
//   - Chirp — linear frequency sweep from f0 to f1.
//   - Drift — Gaussian random walk with optional linear trend.
//
// Why:
//
//   - Alignment algorithms need reproducible inputs of arbitrary length;
//     hand-written fixtures stop scaling past a few dozen samples.
//   - Warped copies of the same generator (different trend/noise) make
//     realistic DTW scenarios without shipping recorded data.
//
// Determinism:
//
//   - The same (n, seed, options) always yields the same slice.
//   - WithRand shares one stream across composed calls, keeping a whole
//     fixture reproducible from a single seed.
//
// Policy:
//
//   - n < 1 returns nil; generators never panic.
//   - Out-of-range knob values fall back to the documented defaults.
//
// Complexity: every generator is O(n) time and O(n) memory.
package seqgen
