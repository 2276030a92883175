// SPDX-License-Identifier: MIT
// Package: seqalign/seqgen
//
// pulse.go — deterministic rectangular/triangular pulse generator.
//
// Purpose:
//   - Provide a reproducible 1-D pulse sequence for tests, demos and fixtures.
//   - Shape controls: rectangular (duty ∈ [0,1]) or triangular (0..A envelope).
//   - Optional linear trend and additive Gaussian noise, both deterministic.

package seqgen

import "math"

// pulseParams holds the resolved knobs of one Pulse call.
type pulseParams struct {
	amp        float64 // amplitude > 0
	freq       float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0, 1]
	triangular bool    // rectangular(false) or triangular(true)
	sigma      float64 // Gaussian noise sigma ≥ 0
	trend      float64 // linear trend increment per sample
}

// resolvePulse maps config → pulseParams, replacing out-of-range values
// with the documented defaults.
func resolvePulse(cfg config) pulseParams {
	p := pulseParams{
		amp:        cfg.amp,
		freq:       cfg.freq,
		duty:       cfg.duty,
		triangular: cfg.triangular,
		sigma:      cfg.sigma,
		trend:      cfg.trend,
	}
	if p.amp <= 0 {
		p.amp = defAmp
	}
	if p.freq <= 0 {
		p.freq = defBaseFreq
	}
	if p.duty < 0 || p.duty > 1 {
		p.duty = defDuty
	}
	if p.sigma < 0 {
		p.sigma = defSigma
	}

	return p
}

// Pulse returns a length-n pulse sequence with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2·frac − 1| (no trig).
//
// Additions:
//   - Linear trend: y += trend · i.
//   - Gaussian noise: y += sigma · N(0,1), deterministic per seed.
//
// n < 1 returns nil. Complexity: O(n) time, O(n) memory.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	p := resolvePulse(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): frac = (i·freq) mod 1.
		frac = math.Mod(float64(i)*p.freq, 1)

		if p.triangular {
			// Triangle in [0,1]: 1 − |2·frac − 1|, scaled to [0..A].
			base = p.amp * (1 - math.Abs(2*frac-1))
		} else {
			base = 0
			if frac < p.duty {
				base = p.amp
			}
		}

		out[i] = base + p.trend*float64(i)
		if p.sigma > 0 {
			out[i] += p.sigma * rng.NormFloat64()
		}
	}

	return out
}
