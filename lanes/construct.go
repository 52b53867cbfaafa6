// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "unsafe"

//go:generate go run github.com/janpfeifer/go-lanes/cmd/lanegen -out shapes_gen.go

// allocLanes allocates backing storage for an n-lane vector whose lane 0
// sits at the shape's alignment. Storage for every Vec goes through here,
// so the alignment contract holds no matter where the Vec header itself
// lives (stack, heap, array, container).
func allocLanes[T Lanes](n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := alignmentFor(n * size)
	if align <= size {
		return make([]T, n)
	}
	// Over-allocate by enough elements that an aligned offset must exist,
	// then slice to it. The runtime already aligns to the element size, so
	// the remainder is always a whole number of elements.
	pad := (align - 1) / size
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		off = (align - rem) / size
	}
	return buf[off : off+n : off+n]
}

// vecOf wraps already-allocated lane storage. Internal constructors own
// their storage, so no copy is made.
func vecOf[T Lanes](data []T) Vec[T] {
	return Vec[T]{data: data}
}

// Broadcast constructs a vector of shape d with every lane set to x.
func Broadcast[T Lanes](d Desc, x T) Vec[T] {
	data := allocLanes[T](d.Lanes)
	for i := range data {
		data[i] = x
	}
	return Vec[T]{data: data}
}

// Zero constructs a vector of shape d with all lanes zero.
func Zero[T Lanes](d Desc) Vec[T] {
	return Vec[T]{data: allocLanes[T](d.Lanes)}
}

// FromSlice constructs a vector of shape d from an ordered scalar
// sequence, assigning src[i] to lane i. Shorter sequences leave the
// trailing lanes zero. FromSlice(d, v.ToSlice()) reproduces v exactly.
func FromSlice[T Lanes](d Desc, src []T) Vec[T] {
	data := allocLanes[T](d.Lanes)
	copy(data, src[:min(len(src), d.Lanes)])
	return Vec[T]{data: data}
}

// Iota constructs a vector of shape d with lanes set to [0, 1, 2, ...].
func Iota[T Reals](d Desc) Vec[T] {
	data := allocLanes[T](d.Lanes)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Of2 constructs a 2-lane vector from explicit per-lane values. The lane
// count is fixed by the arity, so a mismatch cannot compile.
func Of2[T Lanes](v0, v1 T) Vec[T] {
	data := allocLanes[T](2)
	data[0], data[1] = v0, v1
	return Vec[T]{data: data}
}

// Of4 constructs a 4-lane vector from explicit per-lane values.
func Of4[T Lanes](v0, v1, v2, v3 T) Vec[T] {
	data := allocLanes[T](4)
	data[0], data[1], data[2], data[3] = v0, v1, v2, v3
	return Vec[T]{data: data}
}

// Of8 constructs an 8-lane vector from explicit per-lane values.
func Of8[T Lanes](v0, v1, v2, v3, v4, v5, v6, v7 T) Vec[T] {
	data := allocLanes[T](8)
	data[0], data[1], data[2], data[3] = v0, v1, v2, v3
	data[4], data[5], data[6], data[7] = v4, v5, v6, v7
	return Vec[T]{data: data}
}

// Of16 constructs a 16-lane vector from explicit per-lane values.
func Of16[T Lanes](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 T) Vec[T] {
	data := allocLanes[T](16)
	data[0], data[1], data[2], data[3] = v0, v1, v2, v3
	data[4], data[5], data[6], data[7] = v4, v5, v6, v7
	data[8], data[9], data[10], data[11] = v8, v9, v10, v11
	data[12], data[13], data[14], data[15] = v12, v13, v14, v15
	return Vec[T]{data: data}
}
