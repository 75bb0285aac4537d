package rank_test

import (
	"testing"

	"github.com/nbperf-go/bdz/internal/label"
	"github.com/nbperf-go/bdz/internal/rank"
)

// naiveRank recomputes the definition directly, for use as a test oracle.
func naiveRank(g []uint8, vertex uint32) uint32 {
	holes := uint32(0)
	for i := uint32(0); i < vertex; i++ {
		if g[i] == label.Hole {
			holes++
		}
	}
	return vertex - holes
}

// everyThirdIsHole builds a synthetic label array so tests don't depend
// on graph3/label to produce one: every third entry is a hole, the rest
// are assigned the (arbitrary, for this package's purposes) label 0.
func everyThirdIsHole(n int) []uint8 {
	g := make([]uint8, n)
	for i := range g {
		if i%3 == 0 {
			g[i] = label.Hole
		}
	}
	return g
}

func TestRankMatchesDefinitionSmall(t *testing.T) {
	g := everyThirdIsHole(1000)
	idx := rank.Build(g)
	for v := uint32(0); v < uint32(len(g)); v++ {
		if g[v] == label.Hole {
			continue // rank is only meaningful for non-hole vertices
		}
		got := rank.Rank(g, idx, v)
		want := naiveRank(g, v)
		if got != want {
			t.Fatalf("Rank(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestRankAcross256Boundary(t *testing.T) {
	g := everyThirdIsHole(300)
	idx := rank.Build(g)
	for _, v := range []uint32{254, 255, 256, 257, 299} {
		if g[v] == label.Hole {
			continue
		}
		if got, want := rank.Rank(g, idx, v), naiveRank(g, v); got != want {
			t.Fatalf("Rank(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestRankAcross64KBoundary(t *testing.T) {
	g := everyThirdIsHole(70000)
	idx := rank.Build(g)
	for _, v := range []uint32{65534, 65535, 65536, 65537, 69999} {
		if g[v] == label.Hole {
			continue
		}
		if got, want := rank.Rank(g, idx, v), naiveRank(g, v); got != want {
			t.Fatalf("Rank(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestBuildExactBlockMultiple(t *testing.T) {
	// V exactly a multiple of 256 exercises the trailing-entry redesign:
	// the reference implementation's conditional guard would have left a
	// slot unset here.
	g := everyThirdIsHole(512)
	idx := rank.Build(g)
	if len(idx.Holes256) != 512/256+1 {
		t.Fatalf("len(Holes256) = %d, want %d", len(idx.Holes256), 512/256+1)
	}
	// trailing entry must hold the final cumulative count, not zero.
	totalHoles := uint32(0)
	for _, v := range g {
		if v == label.Hole {
			totalHoles++
		}
	}
	if idx.Holes64K[len(idx.Holes64K)-1] != totalHoles {
		t.Fatalf("trailing Holes64K = %d, want %d", idx.Holes64K[len(idx.Holes64K)-1], totalHoles)
	}
}
