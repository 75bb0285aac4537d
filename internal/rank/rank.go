package rank

import "github.com/nbperf-go/bdz/internal/label"

// Index is the four-level hole-count summary that makes Rank an O(1)
// lookup: an absolute count every 65536 vertices, a relative count every
// 256, and a further relative correction every 64 within that.
//
// Holes64K[k] is the absolute hole count at vertex 65536*k. Holes256[b] is
// the hole count at vertex 256*b, relative to the enclosing 64K block.
// Holes256At64/128/192[b] are the hole counts at offsets 64/128/192
// within 256-block b, relative to that block's own base (Holes256[b]).
// Every array carries one extra trailing entry past the last real block,
// holding the final cumulative hole count — written unconditionally
// regardless of whether V lands exactly on a block boundary (a prior
// implementation's conditional guard around that write left it unset in
// the exact-multiple case; this one always writes it).
type Index struct {
	Holes64K      []uint32
	Holes256      []uint16
	Holes256At64  []uint8
	Holes256At128 []uint8
	Holes256At192 []uint8
}

// Build computes the rank Index for a completed label array g. Complexity:
// O(len(g)) time, O(len(g)/256) extra space.
func Build(g []uint8) *Index {
	v := len(g)
	n64k := (v + 65535) / 65536
	n256 := (v + 255) / 256

	idx := &Index{
		Holes64K:      make([]uint32, n64k+1),
		Holes256:      make([]uint16, n256+1),
		Holes256At64:  make([]uint8, n256+1),
		Holes256At128: make([]uint8, n256+1),
		Holes256At192: make([]uint8, n256+1),
	}

	// The loop runs to the end of the last 256-block, past v when v is not
	// a multiple of 256, so the 64/128/192 checkpoints of a short final
	// block that lie past v still hold that block's hole count.
	var holes uint32
	for i := 0; i < n256*256; i++ {
		switch {
		case i%65536 == 0:
			idx.Holes64K[i>>16] = holes
		}
		switch {
		case i%256 == 0:
			idx.Holes256[i>>8] = uint16(holes - idx.Holes64K[i>>16])
		case i%256 == 64:
			idx.Holes256At64[i>>8] = uint8(holes - uint32(idx.Holes256[i>>8]) - idx.Holes64K[i>>16])
		case i%256 == 128:
			idx.Holes256At128[i>>8] = uint8(holes - uint32(idx.Holes256[i>>8]) - idx.Holes64K[i>>16])
		case i%256 == 192:
			idx.Holes256At192[i>>8] = uint8(holes - uint32(idx.Holes256[i>>8]) - idx.Holes64K[i>>16])
		}
		if i < v && g[i] == label.Hole {
			holes++
		}
	}

	// Unconditional trailing entry per level (see Index's doc comment).
	blk64k := n256 / 256
	idx.Holes64K[n64k] = holes
	idx.Holes256[n256] = uint16(holes - idx.Holes64K[blk64k])
	rel := uint8(holes - uint32(idx.Holes256[n256]) - idx.Holes64K[blk64k])
	idx.Holes256At64[n256] = rel
	idx.Holes256At128[n256] = rel
	idx.Holes256At192[n256] = rel

	return idx
}
