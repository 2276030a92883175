// SPDX-License-Identifier: MIT
// Package: seqalign/seqgen
//
// chirp.go — deterministic linear chirp generator.
//
// Purpose:
//   - Produce a 1-D linear chirp (frequency sweep from f0 to f1) for
//     tests and demos; a warped chirp against the original is the classic
//     DTW benchmark input.
//   - Optional linear trend and Gaussian noise with the shared policy.

package seqgen

import "math"

// tau is 2π, precomputed to keep the phase update to one multiplication.
const tau = 2.0 * math.Pi

// chirpParams holds the resolved knobs of one Chirp call.
type chirpParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // start frequency > 0 (cycles/sample)
	f1    float64 // end   frequency > 0 (cycles/sample)
	sigma float64 // noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

// resolveChirp maps config → chirpParams with default fallbacks.
func resolveChirp(cfg config) chirpParams {
	p := chirpParams{
		amp:   cfg.amp,
		f0:    cfg.f0,
		f1:    cfg.f1,
		sigma: cfg.sigma,
		trend: cfg.trend,
	}
	if p.amp <= 0 {
		p.amp = defAmp
	}
	if p.f0 <= 0 || p.f1 <= 0 {
		p.f0, p.f1 = defChirpF0, defChirpF1
	}
	if p.sigma < 0 {
		p.sigma = defSigma
	}

	return p
}

// Chirp returns a length-n linear chirp: frequency sweeps from f0 to f1.
// Model:
//   - fᵢ = f0 + (f1 − f0) · i/(n−1)   (cycles/sample)
//   - θ  accumulates τ·fᵢ per sample   (phase accumulator, τ = 2π)
//   - yᵢ = A·sin(θ) + trend·i + noise
//
// n < 1 returns nil. Complexity: O(n) time, O(n) memory.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	p := resolveChirp(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var t, fi, theta float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}

		// Instantaneous frequency, then discrete phase integration (dt=1).
		fi = p.f0 + (p.f1-p.f0)*t
		theta += tau * fi

		out[i] = p.amp*math.Sin(theta) + p.trend*float64(i)
		if p.sigma > 0 {
			out[i] += p.sigma * rng.NormFloat64()
		}
	}

	return out
}
