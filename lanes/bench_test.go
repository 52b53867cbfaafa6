package lanes

import "testing"

func BenchmarkAdd(b *testing.B) {
	b.Run("Float32x8", func(b *testing.B) {
		b.ReportAllocs()
		x := Float32x8(1, 2, 3, 4, 5, 6, 7, 8)
		y := Float32x8(8, 7, 6, 5, 4, 3, 2, 1)
		for i := 0; i < b.N; i++ {
			_ = Add(x, y)
		}
	})
	b.Run("Int8x64", func(b *testing.B) {
		b.ReportAllocs()
		x := Broadcast(DescFor[int8](W512), int8(3))
		y := Broadcast(DescFor[int8](W512), int8(5))
		for i := 0; i < b.N; i++ {
			_ = Add(x, y)
		}
	})
}

func BenchmarkCompareReduce(b *testing.B) {
	b.ReportAllocs()
	x := Iota[int32](DescFor[int32](W512))
	y := Broadcast(DescFor[int32](W512), int32(7))
	for i := 0; i < b.N; i++ {
		if Less(x, y).AnyTrue() == false {
			b.Fatal("unexpected")
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	v := Int32x4(1, 22, 333, 4444)
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		buf = AppendFormat(buf[:0], v, DefaultFormat())
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	d := DescFor[int32](W128)
	for i := 0; i < b.N; i++ {
		if _, err := Parse[int32](d, "(1;22;333;4444)", ParseOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
