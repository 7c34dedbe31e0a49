package bitmap

// Context owns the input, output, and scratch buffers for one compression
// pipeline. Its buffers are mutated by every call, so a single Context
// must not be used concurrently; independent Contexts share no state and
// may be driven from different goroutines in parallel (cmd/bitpack's
// batch subcommand relies on exactly this).
type Context struct {
	maxSize int // declared upper bound on input size, in bytes
	chunks  int // maxSize rounded up to a whole number of chunks

	input   []byte // capacity chunks*ChunkBytes
	output  []byte // capacity 4 + chunks*(1+ChunkBytes) + ChunkBytes
	scratch [ChunkBytes]byte
}

// NewContext allocates a Context sized for inputs up to upperBoundBytes.
// The input buffer is zero-initialized so that padding past any active
// region written by the caller is well-defined.
func NewContext(upperBoundBytes int) (ctx *Context, err error) {
	if upperBoundBytes < 0 {
		return nil, newError(ErrAllocationFailed, "negative upper bound")
	}

	chunks := numChunks(upperBoundBytes)
	c := &Context{
		maxSize: upperBoundBytes,
		chunks:  chunks,
	}

	// make() panics rather than returning an error on allocation failure;
	// recover it here so a caller asking for an unreasonable upper bound
	// gets the documented null-context-and-error outcome instead of a
	// crash, and so any partially-initialized buffers are released.
	defer func() {
		if r := recover(); r != nil {
			c.Close()
			ctx, err = nil, newError(ErrAllocationFailed, "buffer allocation panicked")
		}
	}()

	c.input = make([]byte, chunks*ChunkBytes)
	c.output = make([]byte, framePrefixBytes+chunks*(1+ChunkBytes)+ChunkBytes)

	return c, nil
}

// Input returns a writable view into the context's input buffer, sized to
// the declared upper bound. Callers write their actual data into the
// prefix of this slice.
func (c *Context) Input() []byte {
	return c.input[:c.maxSize]
}

// Compress encodes the first actualSize bytes of the input buffer
// (zero-padded up to the next chunk boundary) into the context's output
// buffer and returns the length of the valid compressed prefix. Bytes
// past that length in the returned output buffer are scratch slack and
// must be ignored by the caller.
func (c *Context) Compress(actualSize int) (int, error) {
	if actualSize < 0 || actualSize > c.maxSize {
		return 0, newError(ErrInputTooLarge, "actual size exceeds context's max size")
	}

	chunks := numChunks(actualSize)
	// Zero the padding between actualSize and the chunk boundary so a
	// reused context never leaks a previous call's tail bytes.
	for i := actualSize; i < chunks*ChunkBytes; i++ {
		c.input[i] = 0
	}

	putFrameHeader(c.output, actualSize)
	cursor := framePrefixBytes

	for i := 0; i < chunks; i++ {
		var chunk [ChunkBytes]byte
		copy(chunk[:], c.input[i*ChunkBytes:(i+1)*ChunkBytes])
		cursor += encodeChunk(&chunk, &c.scratch, c.output[cursor:])
	}

	return cursor, nil
}

// Output returns the context's output buffer. Only the first n bytes
// returned by the most recent Compress call are valid.
func (c *Context) Output() []byte {
	return c.output
}

// Close releases the context's buffers. Using the context after Close is
// a programming error.
func (c *Context) Close() {
	c.input = nil
	c.output = nil
}
