package bitmap

import "encoding/binary"

// framePrefixBytes is the width of the frame's original-size prefix.
const framePrefixBytes = 4

// putFrameHeader writes the 4-byte little-endian original size prefix.
func putFrameHeader(dst []byte, originalSize int) {
	binary.LittleEndian.PutUint32(dst, uint32(originalSize))
}

// PeekDecodedSize reads a compressed frame's 4-byte size prefix and
// returns the original (unpadded) data size and the buffer capacity a
// caller must provide to Decompress: ceil(dataSize/ChunkBytes)*ChunkBytes.
// It does not decode any chunk records and does not modify compressed.
func PeekDecodedSize(compressed []byte) (dataSize, bufferSize int, err error) {
	if len(compressed) < framePrefixBytes {
		return 0, 0, newError(ErrCorruptStream, "frame shorter than the size prefix")
	}
	dataSize = int(binary.LittleEndian.Uint32(compressed))
	bufferSize = numChunks(dataSize) * ChunkBytes
	return dataSize, bufferSize, nil
}

// Decompress decodes compressed into out, which must be at least as large
// as the bufferSize PeekDecodedSize reports for the same bytes. It writes
// exactly bufferSize bytes: the original dataSize bytes followed by
// zero padding up to the next chunk boundary.
func Decompress(compressed []byte, out []byte) error {
	dataSize, bufferSize, err := PeekDecodedSize(compressed)
	if err != nil {
		return err
	}
	if len(out) < bufferSize {
		return newError(ErrOutputTooSmall, "destination buffer smaller than the decoded size")
	}

	src := compressed[framePrefixBytes:]
	chunks := numChunks(dataSize)

	for i := 0; i < chunks; i++ {
		var chunk [ChunkBytes]byte
		n, err := decodeChunk(src, &chunk)
		if err != nil {
			return err
		}
		copy(out[i*ChunkBytes:(i+1)*ChunkBytes], chunk[:])
		src = src[n:]
	}
	return nil
}
