// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/serenipy/bfs"
	"github.com/katalvlaran/serenipy/builder"
)

// BenchmarkBFS_Grid measures BFS on a 100×100 street grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkComponents measures component labelling on a grid with footpaths.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.Grid(100, 100),
		builder.Footpaths(100, 100, 0.3),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
