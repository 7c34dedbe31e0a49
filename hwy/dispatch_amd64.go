//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// init selects the widest vector tier this CPU supports. Unlike the
// teacher's dispatch_amd64.go/dispatch_amd64_simd.go pair — which split on
// GOEXPERIMENT=simd to reach the experimental archsimd package, and along
// the way detected F16C/AVX512FP16/AVX512BF16 for float-codec lanes this
// module has no use for — bitpack only ever loads uint64 words for
// popcount-and-reduce, so plain cpu.X86 feature bits are enough: no
// archsimd dependency, no float-lane detection.
func init() {
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel, currentWidth, currentName = DispatchAVX512, 64, "avx512"
	case cpu.X86.HasAVX2:
		currentLevel, currentWidth, currentName = DispatchAVX2, 32, "avx2"
	default:
		currentLevel, currentWidth, currentName = DispatchScalar, 8, "scalar"
	}
}
