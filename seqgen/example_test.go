package seqgen_test

import (
	"fmt"

	"github.com/seqalign/seqalign/seqgen"
)

// ExamplePulse generates one noiseless rectangular period: with the
// default frequency of 0.125 cycles/sample the waveform spends four
// samples high and four samples low.
func ExamplePulse() {
	fmt.Println(seqgen.Pulse(8, 1))
	// Output:
	// [1 1 1 1 0 0 0 0]
}

// ExamplePulse_triangular shows the 0..A triangular envelope.
func ExamplePulse_triangular() {
	fmt.Println(seqgen.Pulse(8, 1, seqgen.WithTriangular(), seqgen.WithAmplitude(4)))
	// Output:
	// [0 1 2 3 4 3 2 1]
}
