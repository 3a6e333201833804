package builder_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/builder"
)

// BenchmarkGenerate_Default measures one Generate on the default lattice.
func BenchmarkGenerate_Default(b *testing.B) {
	bl, err := builder.New(64, 64, 8, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	p := builder.DefaultParams()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bl.Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
