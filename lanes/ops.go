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

import "math"

// This file provides the per-lane implementations of all vector
// operations. They are the reference semantics: any register-backed
// specialization must produce identical bits, so callers never observe
// which path ran.

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division. For integer kinds a zero lane in b
// has the platform's behavior (a Go runtime panic); avoiding zero divisors
// is the caller's burden.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Mod performs element-wise integer remainder. A zero lane in b has the
// platform's behavior, as with Div.
func Mod[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] % b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := allocLanes[T](len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs computes the element-wise absolute value. Float lanes clear the
// sign bit, so Abs(-0.0) is +0.0, matching math.Abs.
func Abs[T Reals](v Vec[T]) Vec[T] {
	result := allocLanes[T](len(v.data))
	for i, x := range v.data {
		switch f := any(x).(type) {
		case float32:
			result[i] = any(math.Float32frombits(math.Float32bits(f) &^ (1 << 31))).(T)
		case float64:
			result[i] = any(math.Abs(f)).(T)
		default:
			if x < 0 {
				result[i] = -x
			} else {
				result[i] = x
			}
		}
	}
	return Vec[T]{data: result}
}

// Min returns the element-wise minimum.
func Min[T Reals](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum.
func Max[T Reals](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: result}
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers](v Vec[T]) Vec[T] {
	result := allocLanes[T](len(v.data))
	for i, x := range v.data {
		result[i] = ^x
	}
	return Vec[T]{data: result}
}

// AndNot performs element-wise bitwise AND NOT (^a & b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = (^a.data[i]) & b.data[i]
	}
	return Vec[T]{data: result}
}

// Shl shifts each lane of v left by the corresponding lane of counts.
// Counts at or beyond the element's bit width have the platform's
// behavior; staying in range is the caller's burden.
func Shl[T Integers](v, counts Vec[T]) Vec[T] {
	n := min(len(counts.data), len(v.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] << counts.data[i]
	}
	return Vec[T]{data: result}
}

// Shr shifts each lane of v right by the corresponding lane of counts.
// The shift is arithmetic (sign-extending) for signed kinds and logical
// (zero-filling) for unsigned kinds.
func Shr[T Integers](v, counts Vec[T]) Vec[T] {
	n := min(len(counts.data), len(v.data))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] >> counts.data[i]
	}
	return Vec[T]{data: result}
}

// ShiftLeft shifts every lane left by the same count.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	result := allocLanes[T](len(v.data))
	for i, x := range v.data {
		result[i] = x << bits
	}
	return Vec[T]{data: result}
}

// ShiftRight shifts every lane right by the same count. Arithmetic for
// signed kinds, logical for unsigned kinds.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	result := allocLanes[T](len(v.data))
	for i, x := range v.data {
		result[i] = x >> bits
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Reals](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Reals](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// IfThenElse selects a's lane where the mask is true, b's otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero returns a's lane where the mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(a.data), len(mask.bits))
	result := allocLanes[T](n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// MaskLoad constructs a vector of mask's lane count, loading src[i] into
// each lane where the mask is true and zero elsewhere.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := allocLanes[T](len(mask.bits))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores v's lanes to dst only where the mask is true; other
// positions in dst are left unchanged.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
