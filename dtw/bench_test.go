package dtw_test

import (
	"testing"

	"github.com/seqalign/seqalign/dtw"
	"github.com/seqalign/seqalign/seqgen"
)

// benchmarkDTW runs DTW on two deterministic chirps of length n — one
// clean, one noisy — with the given window. It resets the timer after
// setup and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, window int) {
	t1 := seqgen.Chirp(n, 1)
	t2 := seqgen.Chirp(n, 2, seqgen.WithNoise(0.05))

	opts := dtw.DefaultOptions()
	opts.Window = window

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, _, err := dtw.DTW(t1, t2, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_UnboundedSmall measures the pruned full search on 100×100.
func BenchmarkDTW_UnboundedSmall(b *testing.B) {
	benchmarkDTW(b, 100, dtw.UnboundedWindow)
}

// BenchmarkDTW_UnboundedMedium measures the pruned full search on 500×500.
func BenchmarkDTW_UnboundedMedium(b *testing.B) {
	benchmarkDTW(b, 500, dtw.UnboundedWindow)
}

// BenchmarkDTW_BandedSmall measures a ±10 band on 100×100.
func BenchmarkDTW_BandedSmall(b *testing.B) {
	benchmarkDTW(b, 100, 10)
}

// BenchmarkDTW_BandedMedium measures a ±25 band on 500×500.
func BenchmarkDTW_BandedMedium(b *testing.B) {
	benchmarkDTW(b, 500, 25)
}

// BenchmarkBuildCostMatrix_Drift measures matrix construction alone on
// random walks, where the pointwise bound prunes aggressively.
func BenchmarkBuildCostMatrix_Drift(b *testing.B) {
	t1 := seqgen.Drift(500, 3)
	t2 := seqgen.Drift(500, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.BuildCostMatrix(t1, t2, nil, dtw.UnboundedWindow); err != nil {
			b.Fatalf("BuildCostMatrix failed: %v", err)
		}
	}
}
