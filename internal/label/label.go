package label

import (
	"errors"
	"fmt"

	"github.com/nbperf-go/bdz/internal/graph3"
)

// Hole is the label value reserved for vertices no edge ever claims.
const Hole uint8 = 3

// errInvariant marks a violation of the labeler's internal consistency
// check: when an edge's first two endpoints are already visited, the
// third must still be unvisited. This indicates a bug in the peeler, not
// a data condition — it is raised as a panic inside assign and recovered
// at Assign's boundary, the way an option constructor fails fast on
// programmer error rather than returning a value-level error a caller
// might plausibly retry past.
var errInvariant = errors.New("label: peeler produced an edge with no unvisited endpoint")

// Labels holds the per-vertex label array and the per-edge winning-vertex
// rank, used to build the optional key→index permutation file and by
// bdz.Verify's bijection check.
type Labels struct {
	// G has g.V entries, each in {0,1,2,Hole}.
	G []uint8

	// ResultMap has g.E entries; ResultMap[j] is the output rank assigned
	// to edge j (its winning vertex's index minus the holes before it).
	ResultMap []uint32
}

// Assign computes Labels for g, whose Order field must already hold a
// successful Peel result. It processes edges in reverse peeling order, so
// the vertex exposed as degree-1 at each step is labeled using the (by
// then already-known) labels of its two already-visited co-endpoints.
//
// Complexity: O(V + E) time, O(V) extra space for the visited array.
func Assign(g *graph3.Graph) (lbl *Labels, err error) {
	if g.Order == nil {
		return nil, fmt.Errorf("label: Assign called before a successful Peel")
	}

	defer func() {
		if r := recover(); r != nil {
			if r == errInvariant {
				err = errInvariant
				return
			}
			panic(r) // unrelated panic; do not swallow it
		}
	}()

	lbl = &Labels{
		G:         make([]uint8, g.V),
		ResultMap: make([]uint32, g.E),
	}
	for i := range lbl.G {
		lbl.G[i] = Hole
	}

	visited := make([]uint32, g.V) // 0 = unvisited, 1 = visited-not-winning, 2+j = winner of edge j

	for i := len(g.Order) - 1; i >= 0; i-- {
		j := g.Order[i]
		e := g.Edges[j]

		var r int
		var t uint32
		switch {
		case visited[e.Left] == 0:
			r, t = 0, e.Left
		case visited[e.Middle] == 0:
			r, t = 1, e.Middle
		default:
			if visited[e.Right] != 0 {
				panic(errInvariant)
			}
			r, t = 2, e.Right
		}

		visited[t] = 2 + j
		if visited[e.Left] == 0 {
			visited[e.Left] = 1
		}
		if visited[e.Middle] == 0 {
			visited[e.Middle] = 1
		}
		if visited[e.Right] == 0 {
			visited[e.Right] = 1
		}

		// The constant 9 keeps the subtraction non-negative: each of the
		// (up to two) still-unlabeled co-endpoints contributes Hole (3)
		// to the sum below, and 3*3 = 9 cancels out mod 3 regardless of
		// how many endpoints were already labeled.
		sum := int(lbl.G[e.Left]) + int(lbl.G[e.Middle]) + int(lbl.G[e.Right])
		lbl.G[t] = uint8((9 + r - sum) % 3)
	}

	holes := uint32(0)
	for i := uint32(0); i < g.V; i++ {
		if visited[i] > 1 {
			j := visited[i] - 2
			lbl.ResultMap[j] = i - holes
		}
		if lbl.G[i] == Hole {
			holes++
		}
	}

	return lbl, nil
}
