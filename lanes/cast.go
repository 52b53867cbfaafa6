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
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Two distinct conversions exist and stay distinct on purpose:
//
//   - Cast converts the logical value of each lane to a new scalar kind
//     (Go conversion semantics per lane), preserving the lane count.
//   - Bitcast reinterprets the raw storage bits under a new shape of equal
//     total byte width, preserving nothing but the bits.
//
// MaskToVec is the one sanctioned bridge from logical to numeric lanes:
// a true lane materializes as the all-bits-set value of the target kind.

// Cast converts each lane of v to element type U, preserving the lane
// count. Float-to-integer conversion truncates toward zero; out-of-range
// conversions have Go's platform-defined behavior.
//
// Complex kinds are excluded on both sides: a complex lane has no single
// Go conversion to or from a real kind. Use Complex64Parts/Complex64From
// (and the 128-bit pair) for the component-wise conversions, or Bitcast
// to reinterpret storage.
func Cast[U Reals, T Reals](v Vec[T]) Vec[U] {
	result := allocLanes[U](len(v.data))
	for i, x := range v.data {
		result[i] = U(x)
	}
	return Vec[U]{data: result}
}

// MaskToVec converts a mask to a numeric vector of the same lane count.
// True lanes become the all-bits-set value of U (-1 for signed kinds, the
// maximum value for unsigned kinds); false lanes become zero.
func MaskToVec[U Integers, T Lanes](m Mask[T]) Vec[U] {
	result := allocLanes[U](len(m.bits))
	for i, b := range m.bits {
		if b {
			result[i] = ^U(0)
		}
	}
	return Vec[U]{data: result}
}

// Bitcast reinterprets the raw bits of v as a vector with element type U.
// The total byte width is preserved, so the lane count changes by the
// ratio of the element sizes; lane bytes are taken in little-endian order.
// Bitcast panics if v's total byte width is not a multiple of U's size.
func Bitcast[U Lanes, T Lanes](v Vec[T]) Vec[U] {
	var zt T
	var zu U
	ts := int(unsafe.Sizeof(zt))
	us := int(unsafe.Sizeof(zu))
	total := len(v.data) * ts
	if total%us != 0 {
		panic(fmt.Sprintf("lanes: cannot reinterpret %d bytes as %s lanes", total, KindOf[U]()))
	}
	buf := make([]byte, total)
	for i, x := range v.data {
		putLaneBits(buf[i*ts:], x)
	}
	result := allocLanes[U](total / us)
	for i := range result {
		result[i] = laneFromBits[U](buf[i*us:])
	}
	return Vec[U]{data: result}
}

// AsInt32 reinterprets a float32 vector as int32 (bit cast).
func AsInt32(v Vec[float32]) Vec[int32] {
	result := allocLanes[int32](len(v.data))
	for i, x := range v.data {
		result[i] = int32(math.Float32bits(x))
	}
	return Vec[int32]{data: result}
}

// AsFloat32 reinterprets an int32 vector as float32 (bit cast).
func AsFloat32(v Vec[int32]) Vec[float32] {
	result := allocLanes[float32](len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32frombits(uint32(x))
	}
	return Vec[float32]{data: result}
}

// AsInt64 reinterprets a float64 vector as int64 (bit cast).
func AsInt64(v Vec[float64]) Vec[int64] {
	result := allocLanes[int64](len(v.data))
	for i, x := range v.data {
		result[i] = int64(math.Float64bits(x))
	}
	return Vec[int64]{data: result}
}

// AsFloat64 reinterprets an int64 vector as float64 (bit cast).
func AsFloat64(v Vec[int64]) Vec[float64] {
	result := allocLanes[float64](len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64frombits(uint64(x))
	}
	return Vec[float64]{data: result}
}

// Complex64From builds a complex64 vector from real and imaginary parts.
func Complex64From(re, im Vec[float32]) Vec[complex64] {
	n := min(len(im.data), len(re.data))
	result := allocLanes[complex64](n)
	for i := 0; i < n; i++ {
		result[i] = complex(re.data[i], im.data[i])
	}
	return Vec[complex64]{data: result}
}

// Complex64Parts splits a complex64 vector into real and imaginary parts.
func Complex64Parts(v Vec[complex64]) (re, im Vec[float32]) {
	reData := allocLanes[float32](len(v.data))
	imData := allocLanes[float32](len(v.data))
	for i, x := range v.data {
		reData[i] = real(x)
		imData[i] = imag(x)
	}
	return Vec[float32]{data: reData}, Vec[float32]{data: imData}
}

// Complex128From builds a complex128 vector from real and imaginary parts.
func Complex128From(re, im Vec[float64]) Vec[complex128] {
	n := min(len(im.data), len(re.data))
	result := allocLanes[complex128](n)
	for i := 0; i < n; i++ {
		result[i] = complex(re.data[i], im.data[i])
	}
	return Vec[complex128]{data: result}
}

// Complex128Parts splits a complex128 vector into real and imaginary parts.
func Complex128Parts(v Vec[complex128]) (re, im Vec[float64]) {
	reData := allocLanes[float64](len(v.data))
	imData := allocLanes[float64](len(v.data))
	for i, x := range v.data {
		reData[i] = real(x)
		imData[i] = imag(x)
	}
	return Vec[float64]{data: reData}, Vec[float64]{data: imData}
}

// putLaneBits writes one lane's raw bits to buf in little-endian order.
func putLaneBits[T Lanes](buf []byte, x T) {
	switch v := any(x).(type) {
	case int8:
		buf[0] = byte(v)
	case uint8:
		buf[0] = v
	case int16:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case uint16:
		binary.LittleEndian.PutUint16(buf, v)
	case int32:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case uint32:
		binary.LittleEndian.PutUint32(buf, v)
	case int64:
		binary.LittleEndian.PutUint64(buf, uint64(v))
	case uint64:
		binary.LittleEndian.PutUint64(buf, v)
	case float32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	case float64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	case complex64:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(real(v)))
		binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(imag(v)))
	case complex128:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(imag(v)))
	}
}

// laneFromBits reads one lane's raw bits from buf in little-endian order.
func laneFromBits[T Lanes](buf []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(buf[0])).(T)
	case uint8:
		return any(buf[0]).(T)
	case int16:
		return any(int16(binary.LittleEndian.Uint16(buf))).(T)
	case uint16:
		return any(binary.LittleEndian.Uint16(buf)).(T)
	case int32:
		return any(int32(binary.LittleEndian.Uint32(buf))).(T)
	case uint32:
		return any(binary.LittleEndian.Uint32(buf)).(T)
	case int64:
		return any(int64(binary.LittleEndian.Uint64(buf))).(T)
	case uint64:
		return any(binary.LittleEndian.Uint64(buf)).(T)
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(buf))).(T)
	case float64:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(buf))).(T)
	case complex64:
		re := math.Float32frombits(binary.LittleEndian.Uint32(buf))
		im := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
		return any(complex(re, im)).(T)
	default:
		re := math.Float64frombits(binary.LittleEndian.Uint64(buf))
		im := math.Float64frombits(binary.LittleEndian.Uint64(buf[8:]))
		return any(complex(re, im)).(T)
	}
}
