package bitmap

import (
	"encoding/binary"

	"github.com/ajroetker/bitpack/hwy"
)

// Density summarizes the bit population of an arbitrary byte buffer. It
// has no bearing on the wire format — the wire format's per-chunk
// category decision always works on exactly one fixed 256-bit chunk — but
// it is useful for callers (e.g. cmd/bitpack's info subcommand) deciding
// whether a bitmap is a good candidate for this codec at all, since the
// codec only wins on sparse or dense inputs.
type Density struct {
	TotalBits int
	SetBits   int
	SIMDLevel string // e.g. "avx2", "neon", "scalar" — see hwy.CurrentName
	Width     int    // SIMD register width in bytes for SIMDLevel
}

// Ratio returns SetBits/TotalBits, or 0 for an empty buffer.
func (d Density) Ratio() float64 {
	if d.TotalBits == 0 {
		return 0
	}
	return float64(d.SetBits) / float64(d.TotalBits)
}

// AnalyzeDensity computes the overall population count of data using the
// CPU's native-width SIMD vectors (via package hwy), independent of this
// codec's fixed 256-bit chunk size. data is viewed as a sequence of
// little-endian uint64 words, zero-padded to a whole number of words.
func AnalyzeDensity(data []byte) Density {
	words := make([]uint64, (len(data)+7)/8)
	for i := range words {
		var buf [8]byte
		copy(buf[:], data[i*8:min(len(data), i*8+8)])
		words[i] = binary.LittleEndian.Uint64(buf[:])
	}

	var total uint64
	hwy.ProcessWithTail[uint64](len(words),
		func(offset int) {
			v := hwy.Load(words[offset:])
			total += hwy.ReduceSum(hwy.PopCount(v))
		},
		func(offset, count int) {
			mask := hwy.TailMask[uint64](count)
			v := hwy.MaskLoad(mask, words[offset:])
			total += hwy.ReduceSum(hwy.PopCount(v))
		},
	)

	return Density{
		TotalBits: len(data) * 8,
		SetBits:   int(total),
		SIMDLevel: hwy.CurrentName(),
		Width:     hwy.CurrentWidth(),
	}
}
