package lanes

// Lane-wise combination of same-shape masks. Combining masks of different
// lane counts truncates to the shorter, matching the binary vector ops.

// MaskAnd combines two masks lane-wise with logical AND.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr combines two masks lane-wise with logical OR.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor combines two masks lane-wise with logical XOR.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskCast rebinds a mask to element type U, preserving the lane bits
// and lane count. Comparisons on one kind can then select or load lanes
// of another kind with the same lane count.
func MaskCast[U Lanes, T Lanes](m Mask[T]) Mask[U] {
	bits := make([]bool, len(m.bits))
	copy(bits, m.bits)
	return Mask[U]{bits: bits}
}

// FirstN returns a mask with the first count lanes true and the rest
// false. Useful with MaskLoad and MaskStore for the tail of a slice that
// is not a multiple of the lane count.
func FirstN[T Lanes](d Desc, count int) Mask[T] {
	bits := make([]bool, d.Lanes)
	for i := 0; i < d.Lanes && i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskNot inverts every lane of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}
