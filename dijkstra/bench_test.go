package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// BenchmarkStepper_Run measures a full run including one snapshot per step.
func BenchmarkStepper_Run(b *testing.B) {
	g, start, end, err := builder.Generate(64, 64, 8, builder.DefaultParams(), builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	s, err := dijkstra.NewStepper(g, start, end)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		s.Run()
	}
}
