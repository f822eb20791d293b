package centrality_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/centra/centrality"
)

func benchGraph(n int) func(b *testing.B) {
	return func(b *testing.B) {
		g := randomGraph(rand.New(rand.NewSource(1)), n, 4/float64(n), false)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := centrality.Compute(g); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	b.Run("n=100", benchGraph(100))
	b.Run("n=500", benchGraph(500))
}
