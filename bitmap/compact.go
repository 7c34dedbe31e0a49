package bitmap

import (
	"encoding/binary"
	"math/bits"
)

// CompactPositions writes the ascending byte-positions ([0,255]) of
// chunk's set bits into dst and returns how many positions were written
// (equivalently, popcount(chunk)). The chunk is scanned as four 64-bit
// lanes, low lane first, each contributing the positions that fall in
// its 64-bit range.
//
// A true wide-SIMD compaction (e.g. an AVX-512 masked byte-compress)
// stores a full vector register's worth of bytes at the cursor on every
// lane, even though only popcount(lane) of those bytes are meaningful,
// and relies on the next lane's store — or, for the chunk's last lane, on
// slack past the logical end of the buffer — to absorb the invalid tail.
// This Go implementation writes exactly popcount(lane) bytes per lane, so
// it never touches memory past the bytes it reports as written; the
// output buffer is nonetheless sized with the wide-store slack Context
// allocates (see context.go), so the same call sequence stays safe if a
// future build swaps this scalar loop for an actual masked-compress
// intrinsic behind a build tag.
func CompactPositions(chunk *[ChunkBytes]byte, dst []byte) int {
	cursor := 0
	for l := 0; l < ChunkBytes; l += 8 {
		v := binary.LittleEndian.Uint64(chunk[l : l+8])
		base := l * 8 // first bit position this lane covers
		for v != 0 {
			bit := bits.TrailingZeros64(v)
			dst[cursor] = byte(base + bit)
			cursor++
			v &= v - 1 // clear lowest set bit
		}
	}
	return cursor
}
