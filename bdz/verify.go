package bdz

import (
	"fmt"
	"sort"

	"github.com/nbperf-go/bdz/internal/graph3"
	"github.com/nbperf-go/bdz/internal/label"
)

// Verify re-derives the winning attempt's hypergraph, peeling and
// labeling from keys and r.Seed/r.V/r.E, and checks that the resulting
// key-to-rank assignment is a bijection onto [0, len(keys)) — the same
// property the emitted function's runtime behavior depends on — without
// compiling or running r.Source.
//
// Verify assumes the default SipHasher was used to build r, since Result
// does not record which Hasher a construction used; pass the same Hasher
// Generate was given via opts if it was overridden.
func Verify(keys [][]byte, r *Result, opts ...Option) error {
	cfg := newConfig(opts...)
	h := cfg.hasher
	h.Seed(r.Seed)
	g := graph3.New(r.V, r.E)
	if err := g.Hash(keys, h); err != nil {
		return fmt.Errorf("bdz: Verify: rebuilding hypergraph: %w", err)
	}
	if _, err := g.Peel(); err != nil {
		return fmt.Errorf("bdz: Verify: rebuilt hypergraph does not peel: %w", err)
	}
	lbl, err := label.Assign(g)
	if err != nil {
		return fmt.Errorf("bdz: Verify: labeling: %w", err)
	}

	if err := verifySumLaw(g, lbl); err != nil {
		return err
	}
	return verifyBijection(lbl, int(r.E))
}

func verifySumLaw(g *graph3.Graph, lbl *label.Labels) error {
	for j, e := range g.Edges {
		sum := (int(lbl.G[e.Left]) + int(lbl.G[e.Middle]) + int(lbl.G[e.Right])) % 3
		var winner uint32
		switch sum {
		case 0:
			winner = e.Left
		case 1:
			winner = e.Middle
		default:
			winner = e.Right
		}
		if lbl.G[winner] == label.Hole {
			return fmt.Errorf("bdz: Verify: edge %d's winning vertex %d carries a hole label", j, winner)
		}
	}
	return nil
}

func verifyBijection(lbl *label.Labels, n int) error {
	sorted := append([]uint32(nil), lbl.ResultMap...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, v := range sorted {
		if v != uint32(i) {
			return fmt.Errorf("bdz: Verify: result map is not a permutation of [0, %d)", n)
		}
	}
	return nil
}
