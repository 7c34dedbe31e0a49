package bitmap

// sparseThreshold and denseThreshold are the popcount boundaries the
// classifier uses to pick a chunk's encoding. At count == ChunkBytes the
// sparse encoding would cost 1 header byte + 32 payload bytes, already
// losing to raw; the dense case is the bit-complement of the same
// argument. The two thresholds are symmetric around ChunkBits/2 and
// between them no chunk can tie: the popcount domain is partitioned, not
// merely covered.
const (
	sparseThreshold = ChunkBytes      // count < 32 => sparse
	denseThreshold  = ChunkBits - ChunkBytes // count > 224 => dense
)

// encodeChunk classifies chunk by population density and appends its
// header byte and payload to dst, returning the number of bytes written.
// scratch is used to hold the bitwise complement of chunk for the dense
// path and must be at least ChunkBytes long.
//
// dst must have room for at least 1+ChunkBytes bytes (the worst case,
// raw encoding).
func encodeChunk(chunk *[ChunkBytes]byte, scratch *[ChunkBytes]byte, dst []byte) int {
	count := PopCount256(chunk)

	switch {
	case count < sparseThreshold:
		dst[0] = header(categorySparse, count)
		n := CompactPositions(chunk, dst[1:])
		return 1 + n

	case count > denseThreshold:
		length := ChunkBits - count
		dst[0] = header(categoryDense, length)
		Invert256(chunk, scratch)
		n := CompactPositions(scratch, dst[1:])
		return 1 + n

	default:
		dst[0] = header(categoryRaw, ChunkBytes)
		copy(dst[1:1+ChunkBytes], chunk[:])
		return 1 + ChunkBytes
	}
}
