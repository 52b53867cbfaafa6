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

import (
	"fmt"
	"unsafe"
)

// Width is one of the supported aggregate sizes. The set of Width constants
// is closed: together with the Lanes constraint it forms the whole shape
// catalog, so an unsupported shape cannot be expressed.
type Width int

const (
	// W64 is a 64-bit (8-byte) aggregate.
	W64 Width = 8

	// W128 is a 128-bit (16-byte) aggregate (SSE, NEON register size).
	W128 Width = 16

	// W256 is a 256-bit (32-byte) aggregate (AVX2 register size).
	W256 Width = 32

	// W512 is a 512-bit (64-byte) aggregate (AVX-512 register size).
	W512 Width = 64
)

// Bytes returns the aggregate size in bytes.
func (w Width) Bytes() int { return int(w) }

// Bits returns the aggregate size in bits.
func (w Width) Bits() int { return int(w) * 8 }

// String returns a human-readable name for the width ("128bit", etc.).
func (w Width) String() string {
	switch w {
	case W64:
		return "64bit"
	case W128:
		return "128bit"
	case W256:
		return "256bit"
	case W512:
		return "512bit"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// Widths lists the supported aggregate sizes in ascending order.
var Widths = []Width{W64, W128, W256, W512}

// Kind identifies the scalar kind of a vector's lanes.
type Kind int

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// String returns the Go name of the kind's element type.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Size returns the element size in bytes for this kind.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// Desc is the trait descriptor for one concrete shape: the scalar kind, the
// lane count, the required storage alignment, and whether the host can map
// the shape onto a single hardware vector register. Emulated shapes compute
// bit-identical results; Native only predicts throughput.
type Desc struct {
	Kind      Kind
	Lanes     int
	Alignment int
	Native    bool
}

// Width returns the total aggregate width of the described shape.
func (d Desc) Width() Width {
	return Width(d.Lanes * d.Kind.Size())
}

// String returns a name like "int32x4".
func (d Desc) String() string {
	return fmt.Sprintf("%sx%d", d.Kind, d.Lanes)
}

// KindOf returns the Kind for element type T.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

// DescFor resolves the shape (T, w) to its trait descriptor. The lane count
// is w.Bytes()/sizeof(T) and the alignment equals the aggregate size.
//
// Every (element type, Width) pair whose element fits the aggregate is in
// the catalog. The one degenerate family outside it is an element wider
// than the aggregate (complex128 at W64), which DescFor rejects with a
// panic; the generated shape constructors only exist for catalog shapes, so
// code built against them cannot reach this path.
func DescFor[T Lanes](w Width) Desc {
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := w.Bytes() / size
	if n < 1 {
		panic(fmt.Sprintf("lanes: %s does not fit a %s aggregate", KindOf[T](), w))
	}
	return Desc{
		Kind:      KindOf[T](),
		Lanes:     n,
		Alignment: w.Bytes(),
		Native:    nativeWidth(w),
	}
}

// DescForLanes resolves the shape of T with an explicit lane count. The
// catalog equivalent of DescFor for call sites that know the lane count of
// an existing value rather than a Width, such as a classification result
// that must match its operand's lane count under a different kind.
func DescForLanes[T Lanes](n int) Desc {
	var zero T
	total := n * int(unsafe.Sizeof(zero))
	return Desc{
		Kind:      KindOf[T](),
		Lanes:     n,
		Alignment: alignmentFor(total),
		Native:    nativeWidth(Width(total)),
	}
}

// DescOf reconstructs the trait descriptor of an existing vector value.
func DescOf[T Lanes](v Vec[T]) Desc {
	var zero T
	total := len(v.data) * int(unsafe.Sizeof(zero))
	return Desc{
		Kind:      KindOf[T](),
		Lanes:     len(v.data),
		Alignment: alignmentFor(total),
		Native:    nativeWidth(Width(total)),
	}
}

// alignmentFor returns the storage alignment for an aggregate of the given
// total byte size: the size itself for catalog shapes (always a power of
// two), rounded down to a power of two otherwise.
func alignmentFor(total int) int {
	if total <= 1 {
		return 1
	}
	a := 1
	for a*2 <= total {
		a *= 2
	}
	return a
}
