package lanes

// Comparisons produce a Mask of the operands' lane count. Floating NaN
// lanes follow IEEE semantics: every ordered comparison is false and
// NotEqual is true, which is exactly what Go's comparison operators do.

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less performs element-wise less-than comparison.
func Less[T Reals](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Reals](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater performs element-wise greater-than comparison.
func Greater[T Reals](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Reals](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// TestBit returns a mask marking the lanes that have the given bit set.
// Bit 0 is the least significant bit.
func TestBit[T Integers](v Vec[T], bit int) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x&(1<<bit) != 0
	}
	return Mask[T]{bits: bits}
}
