package emit

// Config controls how Emit names and shapes the generated file.
type Config struct {
	// Package is the emitted file's package clause. Defaults to "main"
	// if empty.
	Package string

	// FuncName is the exported name of the generated lookup function,
	// e.g. "PerfectHash". Required.
	FuncName string

	// Static mirrors the original nbperf CLI's "static_hash" flag: when
	// true, the generated function (and its supporting tables) are
	// unexported — Go has no file-local linkage, so this is translated
	// as lowering the first rune of FuncName, the idiomatic Go
	// equivalent of C's `static` for "do not expose outside this
	// translation unit".
	Static bool

	// PopcountFallback, when true, emits a self-contained popcount
	// function instead of importing math/bits, for environments that
	// want the generated file to have zero import beyond what the hash
	// primitive itself requires.
	PopcountFallback bool
}

// resolvedFuncName returns FuncName, lower-cased at the first rune if
// Static is set.
func (c Config) resolvedFuncName() string {
	if !c.Static || c.FuncName == "" {
		return c.FuncName
	}
	b := []byte(c.FuncName)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func (c Config) resolvedPackage() string {
	if c.Package == "" {
		return "main"
	}
	return c.Package
}
