package bdz

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/nbperf-go/bdz/internal/emit"
	"github.com/nbperf-go/bdz/internal/graph3"
	"github.com/nbperf-go/bdz/internal/label"
	"github.com/nbperf-go/bdz/internal/rank"
)

// Generate builds a minimal perfect hash over keys and emits it as Go
// source. It is a rejection-sampling loop: each attempt reseeds the hash
// primitive, builds a random 3-uniform hypergraph over the keys, and
// tries to peel it down to nothing. A degenerate edge or an unpeelable
// graph just means this seed's hypergraph didn't admit a BDZ labeling;
// Generate reseeds and tries again, up to the WithMaxAttempts cap.
//
// keys must be non-empty and pairwise distinct; duplicate keys hash to
// identical edges under every seed, which can never be peeled, so every
// attempt fails as unpeelable and Generate will exhaust its attempt
// budget rather than detect the duplicate directly.
func Generate(keys [][]byte, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if cfg.expansion < graph3.MinExpansion {
		return nil, fmt.Errorf("%w: got %g, need >= %g", ErrExpansionTooSmall, cfg.expansion, graph3.MinExpansion)
	}
	if cfg.hashSize < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrHashSizeTooSmall, cfg.hashSize)
	}

	var attempts int
	for seed := cfg.startSeed; attempts < int(cfg.maxAttempts); seed++ {
		attempts++
		cfg.hasher.Seed(seed)

		g, err := graph3.Build(keys, cfg.hasher, cfg.expansion)
		if err != nil {
			if errors.Is(err, graph3.ErrDegenerateEdge) {
				cfg.log.Logf("DEBUG bdz: attempt %d (seed %d) produced a degenerate edge, reseeding", attempts, seed)
				continue
			}
			return nil, fmt.Errorf("bdz: building hypergraph: %w", err)
		}

		if _, err := g.Peel(); err != nil {
			if errors.Is(err, graph3.ErrNotPeelable) {
				cfg.log.Logf("DEBUG bdz: attempt %d (seed %d) was not peelable, reseeding", attempts, seed)
				continue
			}
			return nil, fmt.Errorf("bdz: peeling hypergraph: %w", err)
		}

		lbl, err := label.Assign(g)
		if err != nil {
			return nil, fmt.Errorf("bdz: labeling (seed %d): %w", seed, err)
		}

		idx := rank.Build(lbl.G)

		var src bytes.Buffer
		emitCfg := emit.Config{
			Package:          cfg.pkg,
			FuncName:         cfg.funcName,
			Static:           cfg.static,
			PopcountFallback: cfg.popcountFallback,
		}
		if err := emit.Emit(&src, emitCfg, g, lbl, idx, cfg.hasher); err != nil {
			return nil, fmt.Errorf("bdz: emitting source: %w", err)
		}

		result := &Result{
			Source:   src.Bytes(),
			Attempts: attempts,
			Seed:     seed,
			V:        g.V,
			E:        g.E,
		}
		if cfg.emitMap {
			result.Map = mapOutput(lbl)
		}

		cfg.log.Logf("INFO bdz: built a %d-vertex, %d-edge hash after %d attempt(s)", g.V, g.E, attempts)
		return result, nil
	}

	return nil, fmt.Errorf("%w: after %d attempts", ErrMaxAttemptsExceeded, attempts)
}

// mapOutput writes lbl.ResultMap as one decimal integer per line, in key
// order: line j is the output rank assigned to keys[j].
func mapOutput(lbl *label.Labels) []byte {
	var buf bytes.Buffer
	for _, r := range lbl.ResultMap {
		fmt.Fprintf(&buf, "%d\n", r)
	}
	return buf.Bytes()
}
