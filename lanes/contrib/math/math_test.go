package math_test

import (
	stdmath "math"
	"testing"

	"github.com/janpfeifer/go-lanes/lanes"
	lmath "github.com/janpfeifer/go-lanes/lanes/contrib/math"
)

// sameFloat64 treats two NaNs as equivalent and otherwise requires
// bit-identical values.
func sameFloat64(a, b float64) bool {
	if stdmath.IsNaN(a) && stdmath.IsNaN(b) {
		return true
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}

func sameFloat32(a, b float32) bool {
	if stdmath.IsNaN(float64(a)) && stdmath.IsNaN(float64(b)) {
		return true
	}
	return stdmath.Float32bits(a) == stdmath.Float32bits(b)
}

var inputs64 = []float64{
	0, 1, -1, 0.5, -0.5, 2, -2, stdmath.Pi, -stdmath.Pi,
	1e-300, -1e-300, 1e300, -1e300, 0.9999, 1.0001,
	stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(),
	stdmath.Copysign(0, -1), stdmath.SmallestNonzeroFloat64,
}

var inputs32 = []float32{
	0, 1, -1, 0.5, -0.5, 2, -2, stdmath.Pi, -stdmath.Pi,
	1e-38, -1e-38, 1e38, -1e38,
	float32(stdmath.Inf(1)), float32(stdmath.Inf(-1)), float32(stdmath.NaN()),
	stdmath.SmallestNonzeroFloat32,
}

func vec64(vals []float64) lanes.Vec[float64] {
	return lanes.FromSlice(lanes.DescForLanes[float64](len(vals)), vals)
}

func vec32(vals []float32) lanes.Vec[float32] {
	return lanes.FromSlice(lanes.DescForLanes[float32](len(vals)), vals)
}

func checkUnary64(t *testing.T, name string, vf func(lanes.Vec[float64]) lanes.Vec[float64], f func(float64) float64) {
	t.Helper()
	v := vec64(inputs64)
	got := vf(v)
	for i, x := range inputs64 {
		if want := f(x); !sameFloat64(got.At(i), want) {
			t.Errorf("%s(%v): got %v, want %v", name, x, got.At(i), want)
		}
	}
}

func checkUnary32(t *testing.T, name string, vf func(lanes.Vec[float32]) lanes.Vec[float32], f func(float64) float64) {
	t.Helper()
	v := vec32(inputs32)
	got := vf(v)
	for i, x := range inputs32 {
		if want := float32(f(float64(x))); !sameFloat32(got.At(i), want) {
			t.Errorf("%s(%v): got %v, want %v", name, x, got.At(i), want)
		}
	}
}

func TestUnaryFunctions64(t *testing.T) {
	cases := []struct {
		name string
		vf   func(lanes.Vec[float64]) lanes.Vec[float64]
		f    func(float64) float64
	}{
		{"Abs", lmath.Abs[float64], stdmath.Abs},
		{"Sqrt", lmath.Sqrt[float64], stdmath.Sqrt},
		{"Cbrt", lmath.Cbrt[float64], stdmath.Cbrt},
		{"Erf", lmath.Erf[float64], stdmath.Erf},
		{"Erfc", lmath.Erfc[float64], stdmath.Erfc},
		{"Exp", lmath.Exp[float64], stdmath.Exp},
		{"Exp2", lmath.Exp2[float64], stdmath.Exp2},
		{"Expm1", lmath.Expm1[float64], stdmath.Expm1},
		{"Log", lmath.Log[float64], stdmath.Log},
		{"Log2", lmath.Log2[float64], stdmath.Log2},
		{"Log10", lmath.Log10[float64], stdmath.Log10},
		{"Log1p", lmath.Log1p[float64], stdmath.Log1p},
		{"Sin", lmath.Sin[float64], stdmath.Sin},
		{"Cos", lmath.Cos[float64], stdmath.Cos},
		{"Tan", lmath.Tan[float64], stdmath.Tan},
		{"Asin", lmath.Asin[float64], stdmath.Asin},
		{"Acos", lmath.Acos[float64], stdmath.Acos},
		{"Atan", lmath.Atan[float64], stdmath.Atan},
		{"Sinh", lmath.Sinh[float64], stdmath.Sinh},
		{"Cosh", lmath.Cosh[float64], stdmath.Cosh},
		{"Tanh", lmath.Tanh[float64], stdmath.Tanh},
		{"Asinh", lmath.Asinh[float64], stdmath.Asinh},
		{"Acosh", lmath.Acosh[float64], stdmath.Acosh},
		{"Atanh", lmath.Atanh[float64], stdmath.Atanh},
		{"Floor", lmath.Floor[float64], stdmath.Floor},
		{"Ceil", lmath.Ceil[float64], stdmath.Ceil},
		{"Trunc", lmath.Trunc[float64], stdmath.Trunc},
		{"Round", lmath.Round[float64], stdmath.Round},
		{"RoundToEven", lmath.RoundToEven[float64], stdmath.RoundToEven},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkUnary64(t, c.name, c.vf, c.f)
		})
	}
}

func TestUnaryFunctions32(t *testing.T) {
	cases := []struct {
		name string
		vf   func(lanes.Vec[float32]) lanes.Vec[float32]
		f    func(float64) float64
	}{
		{"Abs", lmath.Abs[float32], stdmath.Abs},
		{"Sqrt", lmath.Sqrt[float32], stdmath.Sqrt},
		{"Exp", lmath.Exp[float32], stdmath.Exp},
		{"Log", lmath.Log[float32], stdmath.Log},
		{"Sin", lmath.Sin[float32], stdmath.Sin},
		{"Cos", lmath.Cos[float32], stdmath.Cos},
		{"Tanh", lmath.Tanh[float32], stdmath.Tanh},
		{"Floor", lmath.Floor[float32], stdmath.Floor},
		{"Round", lmath.Round[float32], stdmath.Round},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkUnary32(t, c.name, c.vf, c.f)
		})
	}
}

func TestBinaryFunctions64(t *testing.T) {
	xs := []float64{1, -2, 0.5, 1e300, 0, stdmath.NaN(), stdmath.Inf(1), -0.0}
	ys := []float64{2, 3, -0.5, 1e-300, 0, 1, stdmath.Inf(-1), 1}
	vx := vec64(xs)
	vy := vec64(ys)

	cases := []struct {
		name string
		vf   func(a, b lanes.Vec[float64]) lanes.Vec[float64]
		f    func(x, y float64) float64
	}{
		{"Pow", lmath.Pow[float64], stdmath.Pow},
		{"Atan2", lmath.Atan2[float64], stdmath.Atan2},
		{"Hypot", lmath.Hypot[float64], stdmath.Hypot},
		{"Mod", lmath.Mod[float64], stdmath.Mod},
		{"Remainder", lmath.Remainder[float64], stdmath.Remainder},
		{"Fmin", lmath.Fmin[float64], stdmath.Min},
		{"Fmax", lmath.Fmax[float64], stdmath.Max},
		{"Fdim", lmath.Fdim[float64], stdmath.Dim},
		{"Copysign", lmath.Copysign[float64], stdmath.Copysign},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.vf(vx, vy)
			for i := range xs {
				if want := c.f(xs[i], ys[i]); !sameFloat64(got.At(i), want) {
					t.Errorf("%s(%v, %v): got %v, want %v", c.name, xs[i], ys[i], got.At(i), want)
				}
			}
		})
	}
}

func TestNextafter(t *testing.T) {
	x := vec64([]float64{1, -1, 0})
	y := vec64([]float64{2, -2, 1})
	got := lmath.Nextafter(x, y)
	for i, xv := range []float64{1, -1, 0} {
		want := stdmath.Nextafter(xv, y.At(i))
		if !sameFloat64(got.At(i), want) {
			t.Errorf("Nextafter: lane %d: got %v, want %v", i, got.At(i), want)
		}
	}

	x32 := vec32([]float32{1, -1, 0})
	y32 := vec32([]float32{2, -2, 1})
	got32 := lmath.Nextafter(x32, y32)
	for i, xv := range []float32{1, -1, 0} {
		want := stdmath.Nextafter32(xv, y32.At(i))
		if !sameFloat32(got32.At(i), want) {
			t.Errorf("Nextafter32: lane %d: got %v, want %v", i, got32.At(i), want)
		}
	}
}

func TestLdexpFrexp(t *testing.T) {
	v := vec64([]float64{1.5, -0.75, 1024, 0})
	frac, exp := lmath.Frexp(v)
	for i := 0; i < v.NumLanes(); i++ {
		f, e := stdmath.Frexp(v.At(i))
		if !sameFloat64(frac.At(i), f) || exp.At(i) != int32(e) {
			t.Errorf("Frexp lane %d: got (%v, %v), want (%v, %v)", i, frac.At(i), exp.At(i), f, e)
		}
	}

	back := lmath.Ldexp(frac, exp)
	for i := 0; i < v.NumLanes(); i++ {
		if !sameFloat64(back.At(i), v.At(i)) {
			t.Errorf("Ldexp(Frexp) lane %d: got %v, want %v", i, back.At(i), v.At(i))
		}
	}
}

func TestClassification(t *testing.T) {
	v := vec64([]float64{
		stdmath.NaN(), stdmath.Inf(1), stdmath.Inf(-1), 0,
		stdmath.Copysign(0, -1), stdmath.SmallestNonzeroFloat64, 1.5, -2,
	})

	classes := lmath.Fpclassify(v)
	wantClasses := []int32{
		lmath.FpNaN, lmath.FpInfinite, lmath.FpInfinite, lmath.FpZero,
		lmath.FpZero, lmath.FpSubnormal, lmath.FpNormal, lmath.FpNormal,
	}
	for i, w := range wantClasses {
		if classes.At(i) != w {
			t.Errorf("Fpclassify lane %d: got %v, want %v", i, classes.At(i), w)
		}
	}

	nan := lmath.IsNaN(v)
	inf := lmath.IsInf(v, 0)
	fin := lmath.IsFinite(v)
	sign := lmath.Signbit(v)
	for i := 0; i < v.NumLanes(); i++ {
		x := v.At(i)
		if got, want := nan.At(i) == 1, stdmath.IsNaN(x); got != want {
			t.Errorf("IsNaN(%v): got %v", x, got)
		}
		if got, want := inf.At(i) == 1, stdmath.IsInf(x, 0); got != want {
			t.Errorf("IsInf(%v): got %v", x, got)
		}
		if got, want := fin.At(i) == 1, !stdmath.IsNaN(x) && !stdmath.IsInf(x, 0); got != want {
			t.Errorf("IsFinite(%v): got %v", x, got)
		}
		if got, want := sign.At(i) == 1, stdmath.Signbit(x); got != want {
			t.Errorf("Signbit(%v): got %v", x, got)
		}
	}
}

func TestFpclassifySubnormal32(t *testing.T) {
	// A float32 subnormal is normal as a float64; classification must run
	// in the element's own precision.
	v := vec32([]float32{stdmath.SmallestNonzeroFloat32, 1})
	classes := lmath.Fpclassify(v)
	if classes.At(0) != lmath.FpSubnormal {
		t.Errorf("float32 subnormal classified as %v", classes.At(0))
	}
	if classes.At(1) != lmath.FpNormal {
		t.Errorf("float32 1.0 classified as %v", classes.At(1))
	}
}

func TestOrderedPredicates(t *testing.T) {
	nan := stdmath.NaN()
	x := vec64([]float64{1, 2, nan, 1})
	y := vec64([]float64{2, 1, 1, 1})

	cases := []struct {
		name string
		vf   func(a, b lanes.Vec[float64]) lanes.Vec[int32]
		want []int32
	}{
		{"IsGreater", lmath.IsGreater[float64], []int32{0, 1, 0, 0}},
		{"IsGreaterEqual", lmath.IsGreaterEqual[float64], []int32{0, 1, 0, 1}},
		{"IsLess", lmath.IsLess[float64], []int32{1, 0, 0, 0}},
		{"IsLessEqual", lmath.IsLessEqual[float64], []int32{1, 0, 0, 1}},
		{"IsLessGreater", lmath.IsLessGreater[float64], []int32{1, 1, 0, 0}},
		{"IsUnordered", lmath.IsUnordered[float64], []int32{0, 0, 1, 0}},
	}
	for _, c := range cases {
		got := c.vf(x, y)
		for i, w := range c.want {
			if got.At(i) != w {
				t.Errorf("%s lane %d: got %v, want %v", c.name, i, got.At(i), w)
			}
		}
	}
}

func TestDispatchVariablesRegistered(t *testing.T) {
	if lmath.Exp32 == nil || lmath.Exp64 == nil || lmath.Log32 == nil || lmath.Log64 == nil {
		t.Fatal("base implementations not registered")
	}
}

func BenchmarkExp(b *testing.B) {
	v := vec64([]float64{0.1, 0.5, 1.0, 2.0, -0.5, -1.5, 3.0, 0.01})
	b.Run("Float64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = lmath.Exp(v)
		}
	})
}
