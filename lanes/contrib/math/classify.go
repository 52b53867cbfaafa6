package math

import (
	stdmath "math"

	"github.com/janpfeifer/go-lanes/lanes"
)

// Floating-point class codes returned by Fpclassify, matching C's FP_*
// vocabulary.
const (
	FpNaN int32 = iota
	FpInfinite
	FpZero
	FpSubnormal
	FpNormal
)

// classify applies a scalar predicate lane-wise, packing the results as
// 0/1 codes into an int32 vector of the same lane count. Classification
// results are numeric vectors rather than masks so they match the scalar
// functions' return kind and can feed arithmetic directly (e.g. counting).
func classify[T lanes.Floats](v lanes.Vec[T], pred func(float64) bool) lanes.Vec[int32] {
	n := v.NumLanes()
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		if pred(toFloat64(v.At(i))) {
			out[i] = 1
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[int32](n), out)
}

func toFloat64[T lanes.Floats](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	default:
		return any(x).(float64)
	}
}

// Fpclassify returns the FP_* class code of each lane. Subnormal
// detection runs in the element's own precision, so a float32 subnormal
// classifies as FpSubnormal even though its float64 image is normal.
func Fpclassify[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[int32] {
	n := v.NumLanes()
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		switch x := any(v.At(i)).(type) {
		case float32:
			out[i] = classify32(x)
		case float64:
			out[i] = classify64(x)
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[int32](n), out)
}

func classify32(x float32) int32 {
	bits := stdmath.Float32bits(x)
	exp := (bits >> 23) & 0xff
	mant := bits & 0x7fffff
	switch {
	case exp == 0xff && mant != 0:
		return FpNaN
	case exp == 0xff:
		return FpInfinite
	case exp == 0 && mant == 0:
		return FpZero
	case exp == 0:
		return FpSubnormal
	default:
		return FpNormal
	}
}

func classify64(x float64) int32 {
	bits := stdmath.Float64bits(x)
	exp := (bits >> 52) & 0x7ff
	mant := bits & ((1 << 52) - 1)
	switch {
	case exp == 0x7ff && mant != 0:
		return FpNaN
	case exp == 0x7ff:
		return FpInfinite
	case exp == 0 && mant == 0:
		return FpZero
	case exp == 0:
		return FpSubnormal
	default:
		return FpNormal
	}
}

// IsNaN returns 1 for NaN lanes, 0 otherwise.
func IsNaN[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[int32] {
	return classify(v, stdmath.IsNaN)
}

// IsInf returns 1 for infinite lanes, 0 otherwise. The sign parameter
// selects +Inf (>0), -Inf (<0), or either (0).
func IsInf[T lanes.Floats](v lanes.Vec[T], sign int) lanes.Vec[int32] {
	return classify(v, func(x float64) bool { return stdmath.IsInf(x, sign) })
}

// IsFinite returns 1 for lanes that are neither NaN nor infinite.
func IsFinite[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[int32] {
	return classify(v, func(x float64) bool {
		return !stdmath.IsNaN(x) && !stdmath.IsInf(x, 0)
	})
}

// Signbit returns 1 for lanes with the sign bit set (including -0 and
// negative NaN), 0 otherwise.
func Signbit[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[int32] {
	return classify(v, stdmath.Signbit)
}

// ordered applies a scalar ordered-comparison predicate lane-wise,
// packing 0/1 codes into an int32 vector.
func ordered[T lanes.Floats](a, b lanes.Vec[T], pred func(x, y float64) bool) lanes.Vec[int32] {
	n := min(a.NumLanes(), b.NumLanes())
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		if pred(toFloat64(a.At(i)), toFloat64(b.At(i))) {
			out[i] = 1
		}
	}
	return lanes.FromSlice(lanes.DescForLanes[int32](n), out)
}

// IsGreater returns 1 where x > y without raising on NaN (NaN lanes
// yield 0).
func IsGreater[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return a > b })
}

// IsGreaterEqual returns 1 where x >= y (NaN lanes yield 0).
func IsGreaterEqual[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return a >= b })
}

// IsLess returns 1 where x < y (NaN lanes yield 0).
func IsLess[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return a < b })
}

// IsLessEqual returns 1 where x <= y (NaN lanes yield 0).
func IsLessEqual[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return a <= b })
}

// IsLessGreater returns 1 where x and y are ordered and unequal.
func IsLessGreater[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return a < b || a > b })
}

// IsUnordered returns 1 where either lane is NaN.
func IsUnordered[T lanes.Floats](x, y lanes.Vec[T]) lanes.Vec[int32] {
	return ordered(x, y, func(a, b float64) bool { return stdmath.IsNaN(a) || stdmath.IsNaN(b) })
}
