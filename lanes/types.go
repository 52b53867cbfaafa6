// Package lanes provides fixed-width vector value types with portable,
// per-lane semantics.
//
// A vector is a small aggregate of N lanes of one scalar kind (integer,
// float or complex) packed into a 64/128/256/512-bit shape. Operations are
// elementwise and value-identical whether or not the host CPU can map the
// shape onto a hardware vector register; the trait descriptor reports which
// case applies (see Desc.Native), but both paths compute the same bits.
//
// Basic usage:
//
//	d := lanes.DescFor[int32](lanes.W128) // 4 lanes of int32
//	a := lanes.Int32x4(1, 2, 3, 4)
//	b := lanes.Broadcast(d, int32(10))
//
//	sum := lanes.Add(a, b)          // {11, 12, 13, 14}
//	m := lanes.Greater(sum, b)      // per-lane mask
//	if m.AllTrue() { ... }
package lanes

// The lane constraints admit exactly the 12 catalog scalar kinds, with no
// ~ approximation: kind resolution, formatting, parsing and bit encoding
// switch on the concrete type, so a named type over a catalog kind must be
// rejected when its vector shape is requested, not misbehave at run time.

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Complexes is a constraint for complex lane types.
type Complexes interface {
	complex64 | complex128
}

// Reals is a constraint for all ordered (non-complex) lane types.
type Reals interface {
	Floats | Integers
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Reals | Complexes
}

// Vec is a fixed-shape vector value: a contiguous aggregate of lanes of T.
// The lane count is fixed at construction and never changes; all operations
// return new values, so Vec behaves as an immutable value type by
// convention (SetLane is the single mutating escape hatch).
//
// Vec instances should not be created directly; use Broadcast, FromSlice,
// Zero, the OfN list constructors, or the named shape constructors in the
// generated catalog.
type Vec[T Lanes] struct {
	// data holds the lanes, contiguously, with the backing array allocated
	// at the shape's alignment.
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// At returns lane i. Indices outside [0, NumLanes) are the caller's
// responsibility; there is no library-level bounds handling beyond the
// runtime's.
func (v Vec[T]) At(i int) T {
	return v.data[i]
}

// SetLane overwrites lane i with x. The write is visible through every
// copy of this value sharing the backing storage.
func (v Vec[T]) SetLane(i int, x T) {
	v.data[i] = x
}

// ToSlice extracts the lanes into a freshly allocated slice, in lane order.
// FromSlice(d, v.ToSlice()) reproduces v exactly.
func (v Vec[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store writes the vector's lanes to dst, stopping at the shorter length.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// String renders the vector in the canonical text form "(l0;l1;...;lN-1)".
func (v Vec[T]) String() string {
	return Format(v, DefaultFormat())
}

// Mask is the boolean-lane result of a comparison. A mask is only produced
// by comparisons and only consumed by the reduction and combination
// operations below, by conditional selection, and by the explicit
// MaskToVec conversion; there is no implicit conversion to bool.
type Mask[T Lanes] struct {
	// bits[i] is true iff lane i passed the comparison.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane is true.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is true.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// NoneTrue reports whether no lane is true. Equivalent to !AnyTrue().
func (m Mask[T]) NoneTrue() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of true lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is true. Out-of-range indices return false.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
