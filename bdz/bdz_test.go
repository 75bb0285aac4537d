package bdz_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbperf-go/bdz/bdz"
)

func keysOfStrings(ss ...string) [][]byte {
	keys := make([][]byte, len(ss))
	for i, s := range ss {
		keys[i] = []byte(s)
	}
	return keys
}

func TestGenerateTrivialSingleKey(t *testing.T) {
	keys := keysOfStrings("a")
	r, err := bdz.Generate(keys, bdz.WithMapOutput(true))
	require.NoError(t, err)
	require.GreaterOrEqual(t, r.V, uint32(10), "V should be clamped to the 10-vertex minimum")
	require.EqualValues(t, 1, r.E)
	require.Equal(t, "0\n", string(r.Map))
	require.NoError(t, bdz.Verify(keys, r))
}

func TestGenerateSmallFiveKeys(t *testing.T) {
	keys := keysOfStrings("foo", "bar", "baz", "qux", "quux")
	r, err := bdz.Generate(keys)
	require.NoError(t, err)
	require.EqualValues(t, 10, r.V, "5 keys at the default 1.24 expansion clamps to the 10-vertex minimum")
	require.NoError(t, bdz.Verify(keys, r))
}

func TestGenerateExactly16Keys(t *testing.T) {
	alphabet := "0123456789abcdef"
	ss := make([]string, len(alphabet))
	for i, c := range alphabet {
		ss[i] = string(c)
	}
	keys := keysOfStrings(ss...)
	r, err := bdz.Generate(keys)
	require.NoError(t, err)
	require.EqualValues(t, 16, r.E)
	require.NoError(t, bdz.Verify(keys, r))
}

func TestGenerateCross256Boundary(t *testing.T) {
	ss := make([]string, 300)
	for i := range ss {
		ss[i] = fmt.Sprintf("k%03d", i)
	}
	keys := keysOfStrings(ss...)
	r, err := bdz.Generate(keys)
	require.NoError(t, err)
	require.NoError(t, bdz.Verify(keys, r))
}

func TestGenerateCross64KBoundary(t *testing.T) {
	ss := make([]string, 70000)
	for i := range ss {
		ss[i] = fmt.Sprintf("k%05d", i)
	}
	keys := keysOfStrings(ss...)
	r, err := bdz.Generate(keys)
	require.NoError(t, err)
	require.NoError(t, bdz.Verify(keys, r))
}

func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name    string
		keys    [][]byte
		opts    []bdz.Option
		wantErr error
	}{
		{"expansion below minimum", keysOfStrings("a"), []bdz.Option{bdz.WithExpansion(1.0)}, bdz.ErrExpansionTooSmall},
		{"hash size below three", keysOfStrings("a"), []bdz.Option{bdz.WithHashSize(2)}, bdz.ErrHashSizeTooSmall},
		{"empty key set", nil, nil, bdz.ErrNoKeys},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := bdz.Generate(tc.keys, tc.opts...)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerateIsDeterministicForAFixedStartSeed(t *testing.T) {
	keys := keysOfStrings("foo", "bar", "baz", "qux", "quux")
	r1, err := bdz.Generate(keys, bdz.WithStartSeed(7))
	require.NoError(t, err)
	r2, err := bdz.Generate(keys, bdz.WithStartSeed(7))
	require.NoError(t, err)
	require.Equal(t, r1.Seed, r2.Seed)
	require.Equal(t, r1.Source, r2.Source, "two Generate calls from the same start seed should not diverge")
}
