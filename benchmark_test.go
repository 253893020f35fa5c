package axis

import (
	"fmt"
	"testing"

	"seehuhn.de/go/axis/scale"
)

// BenchmarkRender benchmarks a zoom step with the given number of ticks.
func BenchmarkRender(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			s0 := scale.NewLinear(0, float64(size), 0, 1000)
			s1 := scale.NewLinear(0, float64(size)/2, 0, 1000)

			a := New[float64](Bottom)
			a.TickCount = size
			prev := a.Render(s0, nil).Next

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				a.Render(s1, prev)
			}
		})
	}
}

// BenchmarkReconcile benchmarks the keyed diff alone, for two frames
// which share half of their ticks.
func BenchmarkReconcile(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			prevTicks := make([]TickDatum[float64], size)
			curTicks := make([]TickDatum[float64], size)
			for i := range size {
				prevTicks[i] = TickDatum[float64]{Value: float64(i), Key: float64(2 * i)}
				curTicks[i] = TickDatum[float64]{Value: float64(i), Key: float64(i)}
			}
			prev := NewPositionMap(prevTicks, func(v float64) float64 { return 2 * v }, 0.5)
			pos := func(v float64) float64 { return v }

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				Reconcile(curTicks, prev, pos, 0.5, true)
			}
		})
	}
}
