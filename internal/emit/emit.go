package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/nbperf-go/bdz/internal/bdzhash"
	"github.com/nbperf-go/bdz/internal/graph3"
	"github.com/nbperf-go/bdz/internal/label"
	"github.com/nbperf-go/bdz/internal/rank"
)

// Emit writes a complete, self-contained Go source file computing the
// minimal perfect hash described by g, lbl and idx, using h's inline hash
// computation, to w. The file gofmt's cleanly on its own; Emit runs
// go/format.Source over the buffered output before writing it out, and
// falls back to the raw buffer (still syntactically valid, just not
// canonically indented) if formatting ever fails, since a working tool
// must not turn a successful build into a write error over cosmetics.
func Emit(w io.Writer, cfg Config, g *graph3.Graph, lbl *label.Labels, idx *rank.Index, h bdzhash.Hasher) error {
	if cfg.FuncName == "" {
		return fmt.Errorf("emit: Config.FuncName is required")
	}

	var buf bytes.Buffer
	sw := newStickyWriter(&buf)
	prefix := tableName(cfg.resolvedFuncName())

	writeHeader(sw, cfg, h)
	writePackedG(sw, prefix+"G", lbl.G)
	writeUint32Table(sw, prefix+"Holes64K", idx.Holes64K)
	writeUint16Table(sw, prefix+"Holes256", idx.Holes256)
	writeUint8Table(sw, prefix+"Holes256At64", idx.Holes256At64)
	writeUint8Table(sw, prefix+"Holes256At128", idx.Holes256At128)
	writeUint8Table(sw, prefix+"Holes256At192", idx.Holes256At192)
	writeLabelFunc(sw, prefix)
	writeRankFunc(sw, prefix, cfg.PopcountFallback)
	if cfg.PopcountFallback {
		writePopcountFallback(sw, prefix)
	}
	writeLookupFunc(sw, cfg, prefix, g.V, g.E, h)

	if sw.err != nil {
		return fmt.Errorf("emit: %w", sw.err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		out = buf.Bytes()
	}
	_, err = w.Write(out)
	return err
}

// tableName derives the unexported prefix shared by every package-level
// identifier Emit introduces, so two generated hashes can coexist in one
// package without colliding. It lower-cases the resolved function name's
// first rune regardless of Config.Static, since these identifiers are
// never meant to be exported themselves — only <FuncName> is, per
// Config.Static's rule.
func tableName(resolvedFuncName string) string {
	if resolvedFuncName == "" {
		return "_"
	}
	b := []byte(resolvedFuncName)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b) + "_"
}

func writeHeader(w *stickyWriter, cfg Config, h bdzhash.Hasher) {
	w.printf("// Code generated by nbperf-bdz. DO NOT EDIT.\n\n")
	w.printf("package %s\n\n", cfg.resolvedPackage())

	imports := append([]string{"math/bits"}, h.Imports()...)
	if cfg.PopcountFallback {
		imports = imports[1:] // drop math/bits; the fallback below replaces it
	}
	if len(imports) == 1 {
		w.printf("import %q\n\n", imports[0])
	} else if len(imports) > 1 {
		w.printf("import (\n")
		for _, imp := range imports {
			w.printf("\t%q\n", imp)
		}
		w.printf(")\n\n")
	}
}

func writeLabelFunc(w *stickyWriter, prefix string) {
	w.printf("func %slabel(v uint32) uint32 {\n", prefix)
	w.printf("\treturn (%sG[v>>4] >> (2 * (v & 15))) & 3\n", prefix)
	w.printf("}\n\n")
}

// writeRankFunc emits the four-level rank query. The first switch picks
// which checkpoint — the 256-block's own base, or one of the 64-vertex
// offsets 64/128/192 within it, or (falling off the end of the block)
// the next block's base — sits nearest idx, using idx's position within
// a 32-wide slice of the 256-block to choose. The second switch then
// corrects for the few vertices between that checkpoint and idx: hole
// entries pack as 0b11, so word & (word>>1) & 0x55555555 isolates one
// indicator bit per lane, and popcount of that mask counts holes in a
// single packed word (occasionally two, when idx and its checkpoint
// straddle a word boundary, via the fallthrough cases).
func writeRankFunc(w *stickyWriter, prefix string, fallback bool) {
	pc := "bits.OnesCount32"
	if fallback {
		pc = prefix + "popcount32"
	}
	w.printf("func %srank(idx uint32) uint32 {\n", prefix)
	w.printf("\tvar idx2 uint32\n")
	w.printf("\tswitch (idx >> 5) & 7 {\n")
	w.printf("\tcase 0:\n")
	w.printf("\t\tidx2 = idx - %sHoles64K[idx>>16] - uint32(%sHoles256[idx>>8])\n", prefix, prefix)
	w.printf("\tcase 1, 2:\n")
	w.printf("\t\tidx2 = idx - %sHoles64K[idx>>16] - uint32(%sHoles256[idx>>8]) - uint32(%sHoles256At64[idx>>8])\n", prefix, prefix, prefix)
	w.printf("\tcase 3, 4:\n")
	w.printf("\t\tidx2 = idx - %sHoles64K[idx>>16] - uint32(%sHoles256[idx>>8]) - uint32(%sHoles256At128[idx>>8])\n", prefix, prefix, prefix)
	w.printf("\tcase 5, 6:\n")
	w.printf("\t\tidx2 = idx - %sHoles64K[idx>>16] - uint32(%sHoles256[idx>>8]) - uint32(%sHoles256At192[idx>>8])\n", prefix, prefix, prefix)
	w.printf("\tdefault:\n")
	w.printf("\t\tidx2 = idx - %sHoles64K[(idx+32)>>16] - uint32(%sHoles256[(idx+32)>>8])\n", prefix, prefix)
	w.printf("\t}\n\n")
	w.printf("\tswitch (idx >> 4) & 3 {\n")
	w.printf("\tcase 1:\n")
	w.printf("\t\tm := %sG[(idx>>4)-1] & (%sG[(idx>>4)-1] >> 1) & 0x55555555\n", prefix, prefix)
	w.printf("\t\tidx2 -= uint32(%s(m))\n", pc)
	w.printf("\t\tfallthrough\n")
	w.printf("\tcase 0:\n")
	w.printf("\t\tm := %sG[idx>>4] & (%sG[idx>>4] >> 1) & 0x55555555\n", prefix, prefix)
	w.printf("\t\tm &= (uint32(2) << (2 * (idx & 15))) - 1\n")
	w.printf("\t\tidx2 -= uint32(%s(m))\n", pc)
	w.printf("\tcase 2:\n")
	w.printf("\t\tm := %sG[(idx>>4)+1] & (%sG[(idx>>4)+1] >> 1) & 0x55555555\n", prefix, prefix)
	w.printf("\t\tidx2 += uint32(%s(m))\n", pc)
	w.printf("\t\tfallthrough\n")
	w.printf("\tcase 3:\n")
	w.printf("\t\tm := %sG[idx>>4] & (%sG[idx>>4] >> 1) & 0x55555555\n", prefix, prefix)
	w.printf("\t\tm &= ^((uint32(2) << (2 * (idx & 15))) - 1)\n")
	w.printf("\t\tidx2 += uint32(%s(m))\n", pc)
	w.printf("\t}\n\n")
	w.printf("\treturn idx2\n")
	w.printf("}\n\n")
}

// writePopcountFallback is emitted only when Config.PopcountFallback is
// set: writeRankFunc's output then calls this function instead of
// bits.OnesCount32, and writeHeader omits the math/bits import entirely.
func writePopcountFallback(w *stickyWriter, prefix string) {
	w.printf("func %spopcount32(x uint32) uint32 {\n", prefix)
	w.printf("\tx = x - ((x >> 1) & 0x55555555)\n")
	w.printf("\tx = (x & 0x33333333) + ((x >> 2) & 0x33333333)\n")
	w.printf("\tx = (x + (x >> 4)) & 0x0f0f0f0f\n")
	w.printf("\treturn (x * 0x01010101) >> 24\n")
	w.printf("}\n\n")
}

func writeLookupFunc(w *stickyWriter, cfg Config, prefix string, v, n uint32, h bdzhash.Hasher) {
	name := cfg.resolvedFuncName()
	w.printf("// %s returns key's perfect hash value in [0, %d).\n", name, n)
	w.printf("// Behavior is undefined for any key outside the original key set.\n")
	w.printf("func %s(key []byte) uint32 {\n", name)
	w.printf("\tvar hv [3]uint32\n")
	if err := h.EmitInline(w, "\t", "key", "len(key)", "hv"); err != nil {
		w.err = err
		return
	}
	w.printf("\tv0 := hv[0] %% %d\n", v)
	w.printf("\tv1 := hv[1] %% %d\n", v)
	w.printf("\tv2 := hv[2] %% %d\n\n", v)
	w.printf("\tr := (%slabel(v0) + %slabel(v1) + %slabel(v2)) %% 3\n", prefix, prefix, prefix)
	w.printf("\tvar vertex uint32\n")
	w.printf("\tswitch r {\n\tcase 0:\n\t\tvertex = v0\n\tcase 1:\n\t\tvertex = v1\n\tdefault:\n\t\tvertex = v2\n\t}\n\n")
	w.printf("\treturn %srank(vertex)\n", prefix)
	w.printf("}\n")
}
