package hwy

// TailMask returns a mask with exactly the first count lanes active,
// sized to one native vector. count must be <= MaxLanes[T]().
func TailMask[T Lanes](count int) Mask[T] {
	n := MaxLanes[T]()
	bits := make([]bool, n)
	for i := 0; i < count && i < n; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail walks size elements of a T slice in native-vector-width
// strides, calling fullFn at each full-vector offset and tailFn once for
// a final partial vector (0 < count < MaxLanes[T]()); when size is a
// multiple of MaxLanes[T](), tailFn is not called. It is the
// same full-vector/tail split the teacher's library uses throughout
// ops_base.go, reduced to this package's one caller's shape: a single
// accumulation pass over a slice with no destination buffer.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := MaxLanes[T]()
	if n <= 0 {
		if size > 0 {
			tailFn(0, size)
		}
		return
	}

	offset := 0
	for ; offset+n <= size; offset += n {
		fullFn(offset)
	}
	if remaining := size - offset; remaining > 0 {
		tailFn(offset, remaining)
	}
}
