package dense

import "testing"

func BenchmarkReshape(b *testing.B) {
	m := Arange[float32](512, 512, ColMajor)

	b.Run("alias", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.MustReshaped(ColMajor, Dyn(256), AutoSize)
		}
	})

	b.Run("mapped", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.MustReshaped(RowMajor, Dyn(256), AutoSize)
		}
	})

	b.Run("materialize", func(b *testing.B) {
		block := m.Block(0, 0, 256, 512)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = block.MustReshaped(RowMajor, Dyn(512), AutoSize)
		}
	})

	b.Run("chain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.MustReshaped(ColMajor, Dyn(1), AutoSize).
				MustReshaped(ColMajor, AutoSize, Dyn(2)).
				MustReshaped(ColMajor, Dyn(512), Dyn(512))
		}
	})
}

func BenchmarkMappedAccess(b *testing.B) {
	v := Arange[float32](512, 512, ColMajor).MustReshaped(RowMajor, Dyn(256), AutoSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.At(i%256, i%1024)
	}
}

func BenchmarkEqual(b *testing.B) {
	x := Arange[float64](512, 512, ColMajor)
	y := Eval[float64](x, RowMajor)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Equal[float64](x, y)
	}
}
