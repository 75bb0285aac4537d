package emit

// writePackedG packs g (one entry per vertex, each in {0,1,2,3}) 16 to a
// uint32 word, 2 bits each, and writes it as a Go array literal named
// name. Vertices past len(g) that round out the final word are zero.
//
// One additional all-zero word is appended past the last real word: the
// emitted rank function's word-position-2 case reads one word ahead of
// the vertex's own word, and when that vertex falls in the final real
// 64-vertex group, "one word ahead" can land exactly one past the last
// real word. The extra word is always read as "no holes here", which is
// correct since no real vertex lives past the end of g.
func writePackedG(w *stickyWriter, name string, g []uint8) {
	words := (len(g)+15)/16 + 1
	w.printf("var %s = [%d]uint32{\n", name, words)
	for i := 0; i < len(g); i += 16 {
		var sum uint32
		for j := 0; j < 16 && i+j < len(g); j++ {
			sum |= uint32(g[i+j]) << uint(2*j)
		}
		w.printf("\t0x%08x,\n", sum)
	}
	w.printf("\t0x00000000,\n")
	w.printf("}\n\n")
}

func writeUint32Table(w *stickyWriter, name string, vals []uint32) {
	w.printf("var %s = [%d]uint32{\n", name, len(vals))
	for _, v := range vals {
		w.printf("\t0x%08x,\n", v)
	}
	w.printf("}\n\n")
}

func writeUint16Table(w *stickyWriter, name string, vals []uint16) {
	w.printf("var %s = [%d]uint16{\n", name, len(vals))
	for _, v := range vals {
		w.printf("\t0x%04x,\n", v)
	}
	w.printf("}\n\n")
}

func writeUint8Table(w *stickyWriter, name string, vals []uint8) {
	w.printf("var %s = [%d]uint8{\n", name, len(vals))
	for _, v := range vals {
		w.printf("\t0x%02x,\n", v)
	}
	w.printf("}\n\n")
}
