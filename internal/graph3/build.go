package graph3

import "github.com/nbperf-go/bdz/internal/bdzhash"

// Hash populates g's edges from keys using h, which must already be
// seeded for this attempt. Edge j's vertices are h's three words for
// keys[j], each reduced mod g.V.
//
// An edge whose three vertices are not pairwise distinct after reduction
// is treated as an attempt-level failure (ErrDegenerateEdge) rather than
// silently admitted: the peeling and labeling invariants both assume
// distinct endpoints.
//
// Complexity: O(len(keys)) time, O(1) extra space beyond g.Edges.
func (g *Graph) Hash(keys [][]byte, h bdzhash.Hasher) error {
	if uint32(len(keys)) != g.E {
		panic("graph3: Hash called with len(keys) != E; caller must size E == len(keys)")
	}

	for j, key := range keys {
		h0, h1, h2 := h.Hash(key)
		left := h0 % g.V
		middle := h1 % g.V
		right := h2 % g.V
		if left == middle || middle == right || left == right {
			return ErrDegenerateEdge
		}
		g.Edges[j] = Edge{Left: left, Middle: middle, Right: right}
	}

	return nil
}
