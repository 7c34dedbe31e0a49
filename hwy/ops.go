package hwy

// Load reads up to MaxLanes[T]() values from the front of src into a Vec.
// If src is longer than one native vector, only the leading lanes are
// read; callers iterate via ProcessWithTail/TailMask for the remainder.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if n > len(src) {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// MaskLoad is like Load but only the lanes marked active in mask are
// populated; inactive lanes read as zero. It is how ProcessWithTail's tail
// callback loads a final, partial vector without reading past src.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	data := make([]T, len(mask.bits))
	for i, active := range mask.bits {
		if active && i < len(src) {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// ReduceSum adds every lane of v and returns the total.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}
