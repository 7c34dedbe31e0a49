// Package hwy provides the small slice of portable, runtime-CPU-width-
// adaptive vector arithmetic that bitpack's aggregate density reporting
// needs (bitmap.AnalyzeDensity, cmd/bitpack info): loading a native-width
// batch of words, counting set bits per lane, and reducing lanes to a
// total. It follows the Highway C++ library's write-once-dispatch-
// everywhere philosophy, scaled down to the operations this module
// actually calls — see DESIGN.md for why the wire-critical fixed-256-bit
// chunk primitives in package bitmap do NOT go through this package.
package hwy

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in a Vec or Mask.
// bitpack only ever instantiates these with uint64, but the constraint is
// kept general so Load/MaskLoad/ReduceSum stay usable for any unsigned
// word size, matching how the teacher library parameterizes its ops.
type Lanes interface {
	UnsignedInts
}

// Vec is a native-width batch of lane values. Callers obtain instances
// from Load, MaskLoad and PopCount rather than constructing them.
type Vec[T Lanes] struct {
	data []T
}

// Mask marks which lanes of a Vec are active, as produced by TailMask.
type Mask[T Lanes] struct {
	bits []bool
}
