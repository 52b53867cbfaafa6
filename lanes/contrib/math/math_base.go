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

package math

import (
	stdmath "math"

	"github.com/janpfeifer/go-lanes/lanes"
)

// unary applies a float64 scalar function lane-wise, rounding each result
// to the element's precision. This is the reference path; register-backed
// specializations must match it bit for bit.
func unary[T lanes.Floats](v lanes.Vec[T], f func(float64) float64) lanes.Vec[T] {
	n := v.NumLanes()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch x := any(v.At(i)).(type) {
		case float32:
			out[i] = any(float32(f(float64(x)))).(T)
		case float64:
			out[i] = any(f(x)).(T)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[T](n), out)
}

// binary applies a two-argument float64 scalar function lane-wise.
func binary[T lanes.Floats](a, b lanes.Vec[T], f func(x, y float64) float64) lanes.Vec[T] {
	n := min(a.NumLanes(), b.NumLanes())
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch x := any(a.At(i)).(type) {
		case float32:
			y := any(b.At(i)).(float32)
			out[i] = any(float32(f(float64(x), float64(y)))).(T)
		case float64:
			y := any(b.At(i)).(float64)
			out[i] = any(f(x, y)).(T)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[T](n), out)
}

// Abs computes the element-wise absolute value.
func Abs[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Abs) }

// Sqrt computes the element-wise square root.
func Sqrt[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Sqrt) }

// Cbrt computes the element-wise cube root.
func Cbrt[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Cbrt) }

// Erf computes the element-wise error function.
func Erf[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Erf) }

// Erfc computes the element-wise complementary error function.
func Erfc[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Erfc) }

// Exp2 computes 2**x element-wise.
func Exp2[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Exp2) }

// Expm1 computes e**x - 1 element-wise, accurate near zero.
func Expm1[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Expm1) }

// Log2 computes the element-wise base-2 logarithm.
func Log2[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Log2) }

// Log10 computes the element-wise base-10 logarithm.
func Log10[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Log10) }

// Log1p computes log(1+x) element-wise, accurate near zero.
func Log1p[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Log1p) }

// Sin computes the element-wise sine (radians).
func Sin[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Sin) }

// Cos computes the element-wise cosine (radians).
func Cos[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Cos) }

// Tan computes the element-wise tangent (radians).
func Tan[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Tan) }

// Asin computes the element-wise arcsine.
func Asin[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Asin) }

// Acos computes the element-wise arccosine.
func Acos[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Acos) }

// Atan computes the element-wise arctangent.
func Atan[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Atan) }

// Sinh computes the element-wise hyperbolic sine.
func Sinh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Sinh) }

// Cosh computes the element-wise hyperbolic cosine.
func Cosh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Cosh) }

// Tanh computes the element-wise hyperbolic tangent.
func Tanh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Tanh) }

// Asinh computes the element-wise inverse hyperbolic sine.
func Asinh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Asinh) }

// Acosh computes the element-wise inverse hyperbolic cosine.
func Acosh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Acosh) }

// Atanh computes the element-wise inverse hyperbolic tangent.
func Atanh[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Atanh) }

// Floor rounds each lane toward negative infinity.
func Floor[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Floor) }

// Ceil rounds each lane toward positive infinity.
func Ceil[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Ceil) }

// Trunc rounds each lane toward zero.
func Trunc[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Trunc) }

// Round rounds each lane to the nearest integer, half away from zero.
func Round[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.Round) }

// RoundToEven rounds each lane to the nearest even integer (banker's
// rounding, the IEEE 754 default mode).
func RoundToEven[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] { return unary(v, stdmath.RoundToEven) }

// Pow computes base**exp element-wise.
func Pow[T lanes.Floats](base, exp lanes.Vec[T]) lanes.Vec[T] { return binary(base, exp, stdmath.Pow) }

// Atan2 computes the element-wise two-argument arctangent.
func Atan2[T lanes.Floats](y, x lanes.Vec[T]) lanes.Vec[T] { return binary(y, x, stdmath.Atan2) }

// Hypot computes sqrt(x*x + y*y) element-wise, avoiding intermediate
// overflow and underflow.
func Hypot[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] { return binary(x, y, stdmath.Hypot) }

// Mod computes the element-wise floating-point remainder of x/y with the
// sign of x (the fmod family).
func Mod[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] { return binary(x, y, stdmath.Mod) }

// Remainder computes the element-wise IEEE 754 remainder of x/y.
func Remainder[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] {
	return binary(x, y, stdmath.Remainder)
}

// Fmin returns the element-wise minimum, propagating NaN per math.Min.
func Fmin[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] { return binary(x, y, stdmath.Min) }

// Fmax returns the element-wise maximum, propagating NaN per math.Max.
func Fmax[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] { return binary(x, y, stdmath.Max) }

// Fdim returns the element-wise positive difference max(x-y, 0).
func Fdim[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] { return binary(x, y, stdmath.Dim) }

// Copysign returns x's magnitude with y's sign, element-wise.
func Copysign[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] {
	return binary(x, y, stdmath.Copysign)
}

// Nextafter returns the next representable value after x toward y,
// element-wise, in the element's own precision.
func Nextafter[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[T] {
	n := min(x.NumLanes(), y.NumLanes())
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch xv := any(x.At(i)).(type) {
		case float32:
			yv := any(y.At(i)).(float32)
			out[i] = any(stdmath.Nextafter32(xv, yv)).(T)
		case float64:
			yv := any(y.At(i)).(float64)
			out[i] = any(stdmath.Nextafter(xv, yv)).(T)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[T](n), out)
}

// Ldexp computes x * 2**e element-wise, with the exponents in a matching
// int32 vector.
func Ldexp[T lanes.Floats](x lanes.Vec[T], e lanes.Vec[int32]) lanes.Vec[T] {
	n := min(x.NumLanes(), e.NumLanes())
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch xv := any(x.At(i)).(type) {
		case float32:
			out[i] = any(float32(stdmath.Ldexp(float64(xv), int(e.At(i))))).(T)
		case float64:
			out[i] = any(stdmath.Ldexp(xv, int(e.At(i)))).(T)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[T](n), out)
}

// Frexp splits each lane into a normalized fraction and an integral power
// of two, returning the fractions and a matching int32 exponent vector.
func Frexp[T lanes.Floats](v lanes.Vec[T]) (frac lanes.Vec[T], exp lanes.Vec[int32]) {
	n := v.NumLanes()
	fracs := make([]T, n)
	exps := make([]int32, n)
	for i := 0; i < n; i++ {
		switch x := any(v.At(i)).(type) {
		case float32:
			f, e := stdmath.Frexp(float64(x))
			fracs[i] = any(float32(f)).(T)
			exps[i] = int32(e)
		case float64:
			f, e := stdmath.Frexp(x)
			fracs[i] = any(f).(T)
			exps[i] = int32(e)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[T](n), fracs),
		lanes.FromSlice(lanes.DescForLanes[int32](n), exps)
}
