package bdz

import (
	"github.com/go-pkgz/lgr"

	"github.com/nbperf-go/bdz/internal/bdzhash"
)

// Option customizes a Generate call by mutating a config. Later options
// override earlier ones when applied in the order given to Generate.
type Option func(cfg *config)

// config holds Generate's resolved parameters.
type config struct {
	expansion        float64
	hashSize         int
	maxAttempts      uint64
	startSeed        uint64
	hasher           bdzhash.Hasher
	log              lgr.L
	pkg              string
	funcName         string
	static           bool
	popcountFallback bool
	emitMap          bool
}

// newConfig returns a config with the documented defaults, then applies
// each option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		expansion:   1.24,
		hashSize:    3,
		maxAttempts: 1_000_000,
		startSeed:   0,
		hasher:      bdzhash.NewSipHasher(),
		log:         lgr.Default(),
		pkg:         "main",
		funcName:    "perfect_hash",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithExpansion sets the expansion constant c. Values below
// graph3.MinExpansion are not rejected here — they surface as
// ErrExpansionTooSmall from Generate, since this is a data-driven
// validation a caller may want to report to a user, not a programmer
// error to panic on.
func WithExpansion(c float64) Option {
	return func(cfg *config) { cfg.expansion = c }
}

// WithHashSize sets the declared hash size. The BDZ construction only
// ever consumes three words; values below 3 surface as
// ErrHashSizeTooSmall from Generate.
func WithHashSize(n int) Option {
	return func(cfg *config) { cfg.hashSize = n }
}

// WithMaxAttempts caps the number of reseed-and-retry cycles Generate
// will perform before returning ErrMaxAttemptsExceeded.
func WithMaxAttempts(n uint64) Option {
	return func(cfg *config) { cfg.maxAttempts = n }
}

// WithStartSeed sets the first attempt index; Generate increments it by
// one on every retry. Mainly useful for deterministic tests.
func WithStartSeed(seed uint64) Option {
	return func(cfg *config) { cfg.startSeed = seed }
}

// WithHasher overrides the default SipHasher. Panics on nil: an absent
// hash primitive is a programmer error, not a condition a caller should
// be able to trigger with untrusted input.
func WithHasher(h bdzhash.Hasher) Option {
	if h == nil {
		panic("bdz: WithHasher(nil)")
	}
	return func(cfg *config) { cfg.hasher = h }
}

// WithLogger overrides the default lgr.Default() logger. Panics on nil.
func WithLogger(l lgr.L) Option {
	if l == nil {
		panic("bdz: WithLogger(nil)")
	}
	return func(cfg *config) { cfg.log = l }
}

// WithPackage sets the emitted file's package clause.
func WithPackage(pkg string) Option {
	return func(cfg *config) { cfg.pkg = pkg }
}

// WithFuncName sets the emitted lookup function's name.
func WithFuncName(name string) Option {
	return func(cfg *config) { cfg.funcName = name }
}

// WithStatic makes the emitted function (and its tables) unexported.
func WithStatic(static bool) Option {
	return func(cfg *config) { cfg.static = static }
}

// WithPopcountFallback emits a self-contained popcount function instead
// of importing math/bits.
func WithPopcountFallback(fallback bool) Option {
	return func(cfg *config) { cfg.popcountFallback = fallback }
}

// WithMapOutput additionally populates Result.Map with the decimal
// key-order-to-output-rank permutation, one integer per line.
func WithMapOutput(emit bool) Option {
	return func(cfg *config) { cfg.emitMap = emit }
}
