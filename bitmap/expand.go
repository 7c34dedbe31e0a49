package bitmap

import "sync"

// scatterTable[v] holds the 256-bit value with only bit v set, stored as
// ChunkBytes little-endian bytes. Indexed by position v in [0,255], this
// turns bit-expansion into a sequence of wide OR-accumulations: the
// decoded chunk is the bitwise OR of scatterTable[P[0]], ..., scatterTable[P[k-1]]
// for a packed position list P.
//
// At ChunkBits*ChunkBytes == 256*32 == 8 KiB, this table is process-wide,
// read-only once built, and initialized lazily on first use under a
// sync.Once guard rather than eagerly at package load — either is a valid
// strategy as long as it completes before any decode call, and building
// it lazily keeps programs that only ever compress from paying for it.
var (
	scatterTable     [ChunkBits][ChunkBytes]byte
	scatterTableOnce sync.Once
)

func buildScatterTable() {
	for v := 0; v < ChunkBits; v++ {
		scatterTable[v][v/8] = 1 << uint(v%8)
	}
}

// Expand256 reconstructs a 256-bit chunk containing exactly the bits at
// the positions listed in positions, all others clear, and writes it into
// dst.
func Expand256(positions []byte, dst *[ChunkBytes]byte) {
	scatterTableOnce.Do(buildScatterTable)

	*dst = [ChunkBytes]byte{}
	for _, p := range positions {
		row := &scatterTable[p]
		for i := range dst {
			dst[i] |= row[i]
		}
	}
}
