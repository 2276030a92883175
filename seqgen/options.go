// SPDX-License-Identifier: MIT
// Package: seqalign/seqgen
//
// options.go — generator configuration: defaults, functional options and
// the deterministic RNG selection policy shared by all generators.
//
// Contract:
//   - Options never validate eagerly; each generator resolves its own
//     parameter bundle and falls back to defaults on out-of-range values.
//   - Determinism is explicit: seeding happens via the generator's seed
//     argument or a shared stream passed with WithRand.

package seqgen

import "math/rand"

// Cross-generator defaults.
const (
	defAmp        = 1.0   // default amplitude / step scale (> 0)
	defSigma      = 0.0   // default Gaussian noise sigma (≥ 0); 0 disables noise
	defTrendSlope = 0.0   // default linear trend increment per sample
	defBaseFreq   = 0.125 // default pulse frequency in cycles/sample (> 0); period ≈ 8
	defDuty       = 0.5   // default rectangular duty cycle in [0, 1]
	defChirpF0    = 0.02  // default chirp start frequency (> 0)
	defChirpF1    = 0.25  // default chirp end frequency (> 0)
)

// config carries every knob a generator may consume. Generators read only
// the fields they understand.
type config struct {
	amp        float64 // amplitude (Pulse/Chirp) or step scale (Drift)
	freq       float64 // pulse base frequency, cycles/sample
	f0, f1     float64 // chirp sweep endpoints, cycles/sample
	duty       float64 // rectangular duty cycle
	triangular bool    // pulse shape: rectangular(false) or triangular(true)
	sigma      float64 // additive Gaussian noise sigma
	trend      float64 // linear trend increment per sample
	rng        *rand.Rand
}

// Option mutates the generator configuration.
type Option func(*config)

// newConfig resolves defaults then applies opts in order.
func newConfig(opts ...Option) config {
	c := config{
		amp:  defAmp,
		freq: defBaseFreq,
		f0:   defChirpF0,
		f1:   defChirpF1,
		duty: defDuty,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the waveform amplitude (Pulse, Chirp) or the random
// step scale (Drift). Values ≤ 0 fall back to the default of 1.
func WithAmplitude(a float64) Option {
	return func(c *config) {
		c.amp = a
	}
}

// WithFrequency sets the pulse base frequency in cycles/sample.
// Values ≤ 0 fall back to the default of 0.125.
func WithFrequency(f float64) Option {
	return func(c *config) {
		c.freq = f
	}
}

// WithSweep sets the chirp frequency endpoints in cycles/sample.
// Non-positive endpoints fall back to the defaults (0.02 → 0.25).
func WithSweep(f0, f1 float64) Option {
	return func(c *config) {
		c.f0 = f0
		c.f1 = f1
	}
}

// WithDuty sets the rectangular duty cycle. Values outside [0, 1] fall
// back to the default of 0.5.
func WithDuty(d float64) Option {
	return func(c *config) {
		c.duty = d
	}
}

// WithTriangular switches Pulse to the triangular 0..A envelope.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithNoise sets the additive Gaussian noise sigma. Negative values fall
// back to the default of 0 (no noise).
func WithNoise(sigma float64) Option {
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithTrend sets the linear trend increment per sample.
func WithTrend(slope float64) Option {
	return func(c *config) {
		c.trend = slope
	}
}

// WithRand supplies a shared random stream, overriding the per-call seed.
// A nil stream is ignored; prefer the seed argument for one-off fixtures.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}
