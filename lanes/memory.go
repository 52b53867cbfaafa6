package lanes

import "unsafe"

// Heap storage for vector lanes must honor the shape's alignment. Go's
// allocator only guarantees element-size alignment, so AlignedSlice
// over-allocates and re-slices, the same technique allocLanes uses for
// Vec-internal storage.

// AlignedSlice allocates storage for count vectors of shape d, laid out
// back to back. The address of element 0 is a multiple of d.Alignment,
// and because each vector spans exactly d.Alignment bytes, so is the
// address of every vector's lane 0. A zero count returns an empty slice.
func AlignedSlice[T Lanes](d Desc, count int) []T {
	if count == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := count * d.Lanes
	align := d.Alignment
	if align <= size {
		return make([]T, n)
	}
	pad := (align - 1) / size
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		off = (align - rem) / size
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the slice's backing storage starts at a
// multiple of align bytes. Empty slices are trivially aligned.
func IsAligned[T Lanes](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(align) == 0
}

// Aligned reports whether the vector's lane storage honors its shape's
// alignment. This holds for every vector the package constructs.
func Aligned[T Lanes](v Vec[T]) bool {
	return IsAligned(v.data, DescOf(v).Alignment)
}
