package math

import (
	stdmath "math"

	"github.com/janpfeifer/go-lanes/lanes"
)

// Dispatch variables for the hot exponential/logarithm entry points.
// The base implementations are registered in init; a platform-specific
// replacement may overwrite them before first use, provided it stays
// bit-identical to the scalar definition.
var (
	Exp32 func(lanes.Vec[float32]) lanes.Vec[float32]
	Exp64 func(lanes.Vec[float64]) lanes.Vec[float64]
	Log32 func(lanes.Vec[float32]) lanes.Vec[float32]
	Log64 func(lanes.Vec[float64]) lanes.Vec[float64]
)

func init() {
	if Exp32 == nil {
		Exp32 = exp32Base
	}
	if Exp64 == nil {
		Exp64 = exp64Base
	}
	if Log32 == nil {
		Log32 = log32Base
	}
	if Log64 == nil {
		Log64 = log64Base
	}
}

// Exp computes e**x element-wise through the registered implementation.
func Exp[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] {
	switch vv := any(v).(type) {
	case lanes.Vec[float32]:
		return any(Exp32(vv)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Exp64(vv)).(lanes.Vec[T])
	default:
		return unary(v, stdmath.Exp)
	}
}

// Log computes the natural logarithm element-wise through the registered
// implementation.
func Log[T lanes.Floats](v lanes.Vec[T]) lanes.Vec[T] {
	switch vv := any(v).(type) {
	case lanes.Vec[float32]:
		return any(Log32(vv)).(lanes.Vec[T])
	case lanes.Vec[float64]:
		return any(Log64(vv)).(lanes.Vec[T])
	default:
		return unary(v, stdmath.Log)
	}
}

func exp32Base(v lanes.Vec[float32]) lanes.Vec[float32] { return unary(v, stdmath.Exp) }
func exp64Base(v lanes.Vec[float64]) lanes.Vec[float64] { return unary(v, stdmath.Exp) }
func log32Base(v lanes.Vec[float32]) lanes.Vec[float32] { return unary(v, stdmath.Log) }
func log64Base(v lanes.Vec[float64]) lanes.Vec[float64] { return unary(v, stdmath.Log) }
