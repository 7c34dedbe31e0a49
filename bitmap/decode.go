package bitmap

// decodeChunk reads one chunk record from src (header byte followed by its
// payload) and reconstructs the 256-bit chunk into dst. It returns the
// number of input bytes consumed (1 + payload length).
//
// Category 11 is never produced by encodeChunk; a conforming decoder
// treats it, and any payload that would run past the end of src, as a
// corrupt stream.
func decodeChunk(src []byte, dst *[ChunkBytes]byte) (int, error) {
	if len(src) < 1 {
		return 0, newError(ErrCorruptStream, "truncated chunk header")
	}

	cat, length := splitHeader(src[0])
	payload := src[1:]

	switch cat {
	case categorySparse:
		if length > len(payload) {
			return 0, newError(ErrCorruptStream, "sparse payload runs past end of stream")
		}
		Expand256(payload[:length], dst)

	case categoryDense:
		if length > len(payload) {
			return 0, newError(ErrCorruptStream, "dense payload runs past end of stream")
		}
		Expand256(payload[:length], dst)
		invertInPlace(dst)

	case categoryRaw:
		if length != ChunkBytes || ChunkBytes > len(payload) {
			return 0, newError(ErrCorruptStream, "raw payload is not one full chunk")
		}
		copy(dst[:], payload[:ChunkBytes])

	default:
		return 0, newError(ErrCorruptStream, "reserved category 11 in chunk header")
	}

	return 1 + length, nil
}
