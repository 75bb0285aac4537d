// Command nbperf-bdz builds a minimal perfect hash function over a list
// of keys using the BDZ algorithm and writes the result as a Go source
// file.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/nbperf-go/bdz/bdz"
)

type options struct {
	Input       string  `short:"i" long:"input" description:"key file, one key per line" required:"true"`
	Output      string  `short:"o" long:"output" description:"output Go source file" required:"true"`
	Name        string  `short:"f" long:"name" description:"generated function name" default:"perfect_hash"`
	Map         string  `short:"p" long:"map" description:"optional key-order-to-rank map file"`
	Expansion   float64 `short:"c" long:"expansion" description:"expansion constant" default:"1.24"`
	HashSize    int     `short:"s" long:"hash-size" description:"declared hash size" default:"3"`
	Static      bool    `long:"static" description:"emit an unexported, file-local function"`
	MaxAttempts uint64  `long:"max-attempts" description:"maximum construction attempts" default:"1000000"`
	Verbose     bool    `short:"v" long:"verbose" description:"log each reseed attempt"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	log := lgr.New(lgr.Msec)
	if opts.Verbose {
		log = lgr.New(lgr.Debug, lgr.Msec)
	}

	keys, err := readKeys(opts.Input)
	if err != nil {
		log.Logf("FATAL nbperf-bdz: reading %s: %v", opts.Input, err)
		return 1
	}

	genOpts := []bdz.Option{
		bdz.WithExpansion(opts.Expansion),
		bdz.WithHashSize(opts.HashSize),
		bdz.WithMaxAttempts(opts.MaxAttempts),
		bdz.WithFuncName(opts.Name),
		bdz.WithStatic(opts.Static),
		bdz.WithLogger(log),
	}
	if opts.Map != "" {
		genOpts = append(genOpts, bdz.WithMapOutput(true))
	}

	result, err := bdz.Generate(keys, genOpts...)
	if err != nil {
		log.Logf("FATAL nbperf-bdz: %v", err)
		return 1
	}

	if err := os.WriteFile(opts.Output, result.Source, 0o644); err != nil {
		log.Logf("FATAL nbperf-bdz: writing %s: %v", opts.Output, err)
		return 1
	}
	if opts.Map != "" {
		if err := os.WriteFile(opts.Map, result.Map, 0o644); err != nil {
			log.Logf("FATAL nbperf-bdz: writing %s: %v", opts.Map, err)
			return 1
		}
	}

	log.Logf("INFO nbperf-bdz: wrote %s (%d keys, %d vertices, %d attempt(s), seed %d)",
		opts.Output, len(keys), result.V, result.Attempts, result.Seed)
	return 0
}

// readKeys reads one key per line from path, dropping the trailing
// newline. Blank lines are kept as empty keys rather than silently
// skipped, since a caller may legitimately want the empty string in
// their key set.
func readKeys(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		key := make([]byte, len(line))
		copy(key, line)
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return keys, nil
}
