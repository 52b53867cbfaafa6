package lanes

import (
	"math"
	"testing"
)

func TestCastValueConversion(t *testing.T) {
	v := Int32x4(-1, 0, 7, 100)
	f := Cast[float64](v)
	want := []float64{-1, 0, 7, 100}
	for i, w := range want {
		if f.At(i) != w {
			t.Errorf("Cast to float64: lane %d: got %v, want %v", i, f.At(i), w)
		}
	}
	if f.NumLanes() != v.NumLanes() {
		t.Errorf("Cast changed lane count: %d -> %d", v.NumLanes(), f.NumLanes())
	}

	// Float to integer truncates toward zero.
	g := Float32x4(1.9, -1.9, 0.5, -0.5)
	n := Cast[int32](g)
	wantN := []int32{1, -1, 0, 0}
	for i, w := range wantN {
		if n.At(i) != w {
			t.Errorf("Cast to int32: lane %d: got %v, want %v", i, n.At(i), w)
		}
	}

	// Signed to unsigned keeps the bit pattern for negative values.
	u := Cast[uint8](Int8x8(-1, -2, 0, 1, 2, 3, 4, 5))
	if u.At(0) != 0xff || u.At(1) != 0xfe {
		t.Errorf("Cast int8 to uint8: got %v, %v", u.At(0), u.At(1))
	}
}

func TestBitcastPreservesBits(t *testing.T) {
	v := Float32x4(1.0, -2.5, math.Pi, float32(math.Inf(1)))
	i := Bitcast[int32](v)
	for k := 0; k < 4; k++ {
		if uint32(i.At(k)) != math.Float32bits(v.At(k)) {
			t.Errorf("Bitcast: lane %d: got %#x, want %#x", k, uint32(i.At(k)), math.Float32bits(v.At(k)))
		}
	}

	back := Bitcast[float32](i)
	if !Equal(v, back).AllTrue() {
		t.Error("Bitcast round trip changed bits")
	}
}

func TestBitcastReshapes(t *testing.T) {
	// 16 bytes viewed as sixteen uint8 lanes, then as two uint64 lanes.
	v := Iota[uint8](DescFor[uint8](W128))
	wide := Bitcast[uint64](v)
	if wide.NumLanes() != 2 {
		t.Fatalf("Bitcast to uint64: %d lanes, want 2", wide.NumLanes())
	}
	// Lane bytes are taken little-endian.
	if wide.At(0) != 0x0706050403020100 {
		t.Errorf("Bitcast: lane 0 = %#x", wide.At(0))
	}
	if wide.At(1) != 0x0f0e0d0c0b0a0908 {
		t.Errorf("Bitcast: lane 1 = %#x", wide.At(1))
	}

	// And back, exactly.
	narrow := Bitcast[uint8](wide)
	if !Equal(v, narrow).AllTrue() {
		t.Error("Bitcast reshape round trip changed bits")
	}
}

func TestBitcastComplex(t *testing.T) {
	v := Complex64x2(complex(1.5, -2.5), complex(0, 1))
	parts := Bitcast[float32](v)
	want := []float32{1.5, -2.5, 0, 1}
	for i, w := range want {
		if parts.At(i) != w {
			t.Errorf("Bitcast complex64: lane %d: got %v, want %v", i, parts.At(i), w)
		}
	}
}

func TestAsPairs(t *testing.T) {
	f := Float32x4(0, 1, -1, 0.5)
	if got := AsFloat32(AsInt32(f)); !Equal(f, got).AllTrue() {
		t.Error("AsInt32/AsFloat32 round trip changed bits")
	}
	d := Float64x2(math.Pi, -0.0)
	if got := AsFloat64(AsInt64(d)); math.Float64bits(got.At(1)) != math.Float64bits(d.At(1)) {
		t.Error("AsInt64/AsFloat64 round trip dropped -0 sign")
	}
}

func TestComplexParts(t *testing.T) {
	re := Float32x4(1, 2, 3, 4)
	im := Float32x4(5, 6, 7, 8)
	c := Complex64From(re, im)
	gotRe, gotIm := Complex64Parts(c)
	if !Equal(re, gotRe).AllTrue() || !Equal(im, gotIm).AllTrue() {
		t.Error("Complex64From/Parts round trip failed")
	}

	re64 := Float64x2(1.5, -2.5)
	im64 := Float64x2(0, 1)
	c128 := Complex128From(re64, im64)
	gotRe64, gotIm64 := Complex128Parts(c128)
	if !Equal(re64, gotRe64).AllTrue() || !Equal(im64, gotIm64).AllTrue() {
		t.Error("Complex128From/Parts round trip failed")
	}
}
