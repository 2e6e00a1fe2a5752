package distfield_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BenchmarkBuild runs a single-target BFS on an M×M grid with scattered obstacles.
func BenchmarkBuild(b *testing.B) {
	for _, m := range []int{64, 256} {
		b.Run(fmt.Sprintf("M=%d", m), func(b *testing.B) {
			g, err := gridgraph.NewGrid(irregular(m, m))
			if err != nil {
				b.Fatal(err)
			}
			region, _ := g.Region(0)
			target := firstFree(b, g)

			b.ReportAllocs()
			b.SetBytes(int64(g.Cells()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = distfield.Build(g, target, region)
			}
		})
	}
}

// BenchmarkBuildAll builds 32 per-agent fields on a 128×128 grid with
// varying worker counts.
func BenchmarkBuildAll(b *testing.B) {
	g, err := gridgraph.NewGrid(irregular(128, 128))
	if err != nil {
		b.Fatal(err)
	}
	region, _ := g.Region(0)
	var targets []gridgraph.Point
	for i := 0; i < g.Cells() && len(targets) < 32; i += 509 {
		if p := g.Point(i); g.Traversable(p) {
			targets = append(targets, p)
		}
	}

	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = distfield.BuildAll(context.Background(), g, targets, region, distfield.WithWorkers(w))
			}
		})
	}
}
