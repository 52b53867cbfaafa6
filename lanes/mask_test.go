package lanes

import "testing"

func TestZeroVectorSelfEquality(t *testing.T) {
	d := DescFor[uint32](W128)
	z := Zero[uint32](d)
	m := Equal(z, z)
	if !m.AllTrue() {
		t.Error("zero vector == itself: AllTrue is false")
	}
	if m.NoneTrue() {
		t.Error("zero vector == itself: NoneTrue is true")
	}
}

func TestMaskReductions(t *testing.T) {
	a := Int32x4(1, 2, 3, 4)
	b := Int32x4(1, 0, 3, 0)

	m := Equal(a, b)
	if m.AllTrue() {
		t.Error("AllTrue on half-true mask")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue false on half-true mask")
	}
	if m.NoneTrue() {
		t.Error("NoneTrue true on half-true mask")
	}
	if m.CountTrue() != 2 {
		t.Errorf("CountTrue: got %d, want 2", m.CountTrue())
	}

	none := Equal(a, Int32x4(9, 9, 9, 9))
	if !none.NoneTrue() || none.AnyTrue() {
		t.Error("all-false mask reductions inconsistent")
	}
	if none.NoneTrue() != !none.AnyTrue() {
		t.Error("NoneTrue != !AnyTrue")
	}
}

func TestMaskCombination(t *testing.T) {
	a := Int32x4(1, 2, 3, 4)
	even := Equal(Mod(a, Broadcast(DescFor[int32](W128), int32(2))), Zero[int32](DescFor[int32](W128)))
	big := Greater(a, Broadcast(DescFor[int32](W128), int32(2)))

	and := MaskAnd(even, big)
	or := MaskOr(even, big)
	xor := MaskXor(even, big)
	not := MaskNot(even)

	wantAnd := []bool{false, false, false, true}
	wantOr := []bool{false, true, true, true}
	wantXor := []bool{false, true, true, false}
	wantNot := []bool{true, false, true, false}
	for i := 0; i < 4; i++ {
		if and.GetBit(i) != wantAnd[i] {
			t.Errorf("MaskAnd: lane %d: got %v, want %v", i, and.GetBit(i), wantAnd[i])
		}
		if or.GetBit(i) != wantOr[i] {
			t.Errorf("MaskOr: lane %d: got %v, want %v", i, or.GetBit(i), wantOr[i])
		}
		if xor.GetBit(i) != wantXor[i] {
			t.Errorf("MaskXor: lane %d: got %v, want %v", i, xor.GetBit(i), wantXor[i])
		}
		if not.GetBit(i) != wantNot[i] {
			t.Errorf("MaskNot: lane %d: got %v, want %v", i, not.GetBit(i), wantNot[i])
		}
	}
}

func TestMaskToVec(t *testing.T) {
	a := Int32x4(1, 0, 1, 0)
	m := Equal(a, Broadcast(DescFor[int32](W128), int32(1)))

	signed := MaskToVec[int32](m)
	wantS := []int32{-1, 0, -1, 0}
	for i, w := range wantS {
		if signed.At(i) != w {
			t.Errorf("MaskToVec[int32]: lane %d: got %v, want %v", i, signed.At(i), w)
		}
	}

	unsigned := MaskToVec[uint16](m)
	wantU := []uint16{0xffff, 0, 0xffff, 0}
	for i, w := range wantU {
		if unsigned.At(i) != w {
			t.Errorf("MaskToVec[uint16]: lane %d: got %v, want %v", i, unsigned.At(i), w)
		}
	}

	// Counting true lanes through arithmetic on the converted vector.
	if got := -ReduceSum(signed); got != 2 {
		t.Errorf("counting via MaskToVec: got %v, want 2", got)
	}
}

func TestMaskCast(t *testing.T) {
	src := Float64x4(1, -2, 3, -4)
	m := Less(src, Zero[float64](DescOf(src)))

	cast := MaskCast[int32](m)
	if cast.NumLanes() != m.NumLanes() {
		t.Fatalf("MaskCast lane count: got %d, want %d", cast.NumLanes(), m.NumLanes())
	}
	for i := 0; i < m.NumLanes(); i++ {
		if cast.GetBit(i) != m.GetBit(i) {
			t.Errorf("MaskCast: bit %d: got %v, want %v", i, cast.GetBit(i), m.GetBit(i))
		}
	}

	// The rebound mask selects lanes of the new kind.
	ones := Broadcast(DescForLanes[int32](m.NumLanes()), int32(1))
	sel := IfThenElseZero(cast, ones)
	for i, want := range []int32{0, 1, 0, 1} {
		if sel.At(i) != want {
			t.Errorf("select through cast mask: lane %d: got %v, want %v", i, sel.At(i), want)
		}
	}

}

func TestFirstN(t *testing.T) {
	d := DescFor[float32](W128)
	for count := 0; count <= d.Lanes+2; count++ {
		m := FirstN[float32](d, count)
		want := count
		if want > d.Lanes {
			want = d.Lanes
		}
		if got := m.CountTrue(); got != want {
			t.Errorf("FirstN(%d): CountTrue = %d, want %d", count, got, want)
		}
		for i := 0; i < d.Lanes; i++ {
			if m.GetBit(i) != (i < count) {
				t.Errorf("FirstN(%d): bit %d = %v", count, i, m.GetBit(i))
			}
		}
	}

	// A partial store leaves the unmasked tail untouched.
	dst := []float32{9, 9, 9, 9}
	MaskStore(FirstN[float32](d, 2), Float32x4(1, 2, 3, 4), dst)
	want := []float32{1, 2, 9, 9}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("MaskStore(FirstN(2)): dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestMaskGetBitOutOfRange(t *testing.T) {
	m := Equal(Int32x4(1, 1, 1, 1), Int32x4(1, 1, 1, 1))
	if m.GetBit(-1) || m.GetBit(4) {
		t.Error("GetBit out of range returned true")
	}
}
