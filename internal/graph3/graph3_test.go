package graph3_test

import (
	"errors"
	"io"
	"testing"

	"github.com/nbperf-go/bdz/internal/graph3"
)

// fixedHasher returns pre-determined (h0,h1,h2) triples, one per call to
// Hash, letting tests construct exact edge sets without depending on
// SipHash's actual output. It implements bdzhash.Hasher.
type fixedHasher struct {
	words [][3]uint32
	calls int
}

func (f *fixedHasher) Seed(uint64) { f.calls = 0 }

func (f *fixedHasher) Hash(_ []byte) (uint32, uint32, uint32) {
	w := f.words[f.calls]
	f.calls++
	return w[0], w[1], w[2]
}

func (f *fixedHasher) EmitInline(_ io.Writer, _, _, _, _ string) error { return nil }

func (f *fixedHasher) Imports() []string { return nil }

func keysOfLen(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte{byte(i)}
	}
	return out
}

func TestBuildRejectsDegenerateEdge(t *testing.T) {
	h := &fixedHasher{words: [][3]uint32{{1, 1, 2}}}
	g := graph3.New(10, 1)
	err := g.Hash(keysOfLen(1), h)
	if !errors.Is(err, graph3.ErrDegenerateEdge) {
		t.Fatalf("want ErrDegenerateEdge, got %v", err)
	}
}

func TestPeelTriangleFails(t *testing.T) {
	// Three vertices, three edges sharing the same vertex set pairwise:
	// every vertex keeps degree 2 or 3, so no vertex ever reaches degree 1.
	h := &fixedHasher{words: [][3]uint32{
		{0, 1, 2},
		{0, 1, 2},
		{0, 1, 2},
	}}
	g := graph3.New(3, 3)
	if err := g.Hash(keysOfLen(3), h); err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if _, err := g.Peel(); !errors.Is(err, graph3.ErrNotPeelable) {
		t.Fatalf("want ErrNotPeelable, got %v", err)
	}
}

func TestPeelSimpleGraphSucceeds(t *testing.T) {
	// Two edges sharing one vertex: both are peelable (each has two
	// vertices of degree 1).
	h := &fixedHasher{words: [][3]uint32{
		{0, 1, 2},
		{2, 3, 4},
	}}
	g := graph3.New(5, 2)
	if err := g.Hash(keysOfLen(2), h); err != nil {
		t.Fatalf("Hash: %v", err)
	}
	order, err := g.Peel()
	if err != nil {
		t.Fatalf("Peel: %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("len(order) = %d, want 2", len(order))
	}
	seen := map[uint32]bool{}
	for _, j := range order {
		seen[j] = true
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("order %v does not contain both edges", order)
	}
}

func TestPeelStarGraphSucceeds(t *testing.T) {
	// Five edges fanning out from vertex 0 to distinct pairs: vertex 0
	// has degree 5, but every other vertex has degree 1, so the graph
	// peels completely from the outside in.
	h := &fixedHasher{words: [][3]uint32{
		{0, 1, 2},
		{0, 3, 4},
		{0, 5, 6},
		{0, 7, 8},
		{0, 9, 10},
	}}
	g := graph3.New(11, 5)
	if err := g.Hash(keysOfLen(5), h); err != nil {
		t.Fatalf("Hash: %v", err)
	}
	order, err := g.Peel()
	if err != nil {
		t.Fatalf("Peel: %v", err)
	}
	if len(order) != 5 {
		t.Fatalf("len(order) = %d, want 5", len(order))
	}
}
