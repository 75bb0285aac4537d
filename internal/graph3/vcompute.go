package graph3

import (
	"fmt"

	"github.com/nbperf-go/bdz/internal/bdzhash"
)

// MinExpansion is the smallest accepted expansion constant. Below this,
// the vertex count that results is too close to the edge count for
// peeling to succeed with acceptable probability.
const MinExpansion = 1.24

// minVertices is the floor applied to V regardless of how small N is, so
// a handful of keys doesn't produce a degenerate few-vertex hypergraph.
const minVertices = 10

// computeV derives the vertex count for n edges under expansion c,
// truncating c*n the way a float-to-uint32 conversion does, then bumping
// by one whenever that truncation left V strictly below the unscaled
// MinExpansion*n threshold (which can happen even for c > MinExpansion,
// since truncation always rounds toward zero). V is then floored at
// minVertices.
func computeV(n uint32, c float64) uint32 {
	v := uint32(c * float64(n))
	if MinExpansion*float64(n) > float64(v) {
		v++
	}
	if v < minVertices {
		v = minVertices
	}
	return v
}

// Build runs one construction attempt: it derives V from len(keys) and c,
// allocates a Graph, and hashes every key into an edge under h. A c below
// MinExpansion is rejected with a parameter error before any hashing;
// every other returned error is attempt-level (ErrDegenerateEdge) and the
// caller should reseed h and retry; Build itself never reseeds.
func Build(keys [][]byte, h bdzhash.Hasher, c float64) (*Graph, error) {
	if c < MinExpansion {
		return nil, fmt.Errorf("graph3: expansion %g is below the minimum %g", c, MinExpansion)
	}
	n := uint32(len(keys))
	g := New(computeV(n, c), n)
	if err := g.Hash(keys, h); err != nil {
		return nil, err
	}
	return g, nil
}
