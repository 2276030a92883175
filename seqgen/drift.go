// SPDX-License-Identifier: MIT
// Package: seqalign/seqgen
//
// drift.go — deterministic Gaussian random-walk generator.
//
// Purpose:
//   - Produce a non-periodic, trend-capable series; paired walks from
//     different seeds make realistic "similar but locally shifted" DTW
//     inputs where pulse/chirp are too regular.

package seqgen

// driftParams holds the resolved knobs of one Drift call.
type driftParams struct {
	step  float64 // random step scale > 0 (reuses the amplitude knob)
	sigma float64 // observation noise sigma ≥ 0
	trend float64 // deterministic increment per sample
}

// resolveDrift maps config → driftParams with default fallbacks.
func resolveDrift(cfg config) driftParams {
	p := driftParams{
		step:  cfg.amp,
		sigma: cfg.sigma,
		trend: cfg.trend,
	}
	if p.step <= 0 {
		p.step = defAmp
	}
	if p.sigma < 0 {
		p.sigma = defSigma
	}

	return p
}

// Drift returns a length-n random walk: each sample advances the previous
// level by step·N(0,1) + trend, with optional observation noise on top.
// Model:
//   - vᵢ = vᵢ₋₁ + step·N(0,1) + trend   (v₋₁ = 0)
//   - yᵢ = vᵢ + sigma·N(0,1)
//
// n < 1 returns nil. Complexity: O(n) time, O(n) memory.
func Drift(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	p := resolveDrift(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var level float64
	for i := 0; i < n; i++ {
		level += p.step*rng.NormFloat64() + p.trend

		out[i] = level
		if p.sigma > 0 {
			out[i] += p.sigma * rng.NormFloat64()
		}
	}

	return out
}
