package rank

import "github.com/nbperf-go/bdz/internal/label"

// Rank returns vertex's compacted output rank: vertex minus the number of
// holes strictly before it. It is a reference implementation of the rank
// query over g and an Index, independent of the emitted source (it is not
// called by bdz.Verify): it walks to the nearest 64-vertex anchor at or
// below vertex that the Index already
// summarizes, then scans at most 63 label entries to close the gap. This
// computes the same result as the emitted function's packed-word popcount
// trick (internal/emit) by a more direct route; it does not reproduce
// that trick's bit-packing.
func Rank(g []uint8, idx *Index, vertex uint32) uint32 {
	block256 := vertex >> 8
	base := idx.Holes64K[vertex>>16] + uint32(idx.Holes256[block256])

	offset := vertex & 255
	anchor := offset &^ 63 // round down to the nearest multiple of 64

	switch anchor {
	case 64:
		base += uint32(idx.Holes256At64[block256])
	case 128:
		base += uint32(idx.Holes256At128[block256])
	case 192:
		base += uint32(idx.Holes256At192[block256])
	}

	anchorVertex := block256*256 + anchor
	for i := anchorVertex; i < vertex; i++ {
		if g[i] == label.Hole {
			base++
		}
	}

	return vertex - base
}
