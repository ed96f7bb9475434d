package outcome_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

func patternStrings(patterns []outcome.Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p.String())
	}
	return out
}

func TestParsePattern(t *testing.T) {
	p, err := outcome.ParsePattern("pattern", "1??", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, outcome.Pattern{1, outcome.Wildcard, outcome.Wildcard}, p)
	assert.Equal(t, "1??", p.String())
	assert.Equal(t, 1, p.Fixed())

	p, err = outcome.ParsePattern("pattern", "9Az", 36, 3)
	require.NoError(t, err)
	assert.Equal(t, outcome.Pattern{9, 10, 35}, p)
	assert.Equal(t, "9az", p.String())

	_, err = outcome.ParsePattern("pattern", "0012", 2, 4)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	_, err = outcome.ParsePattern("pattern", "01", 2, 3)
	require.ErrorIs(t, err, dlcerr.ErrDigitCountMismatch)
	e, ok := dlcerr.As(err)
	require.True(t, ok)
	assert.Equal(t, 3, e.Expected)
	assert.Equal(t, 2, e.Actual)

	_, err = outcome.ParsePattern("pattern", "01", 37, 2)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}

func TestPatternMatches(t *testing.T) {
	p := outcome.Pattern{1, outcome.Wildcard, 0}

	assert.True(t, p.Matches([]int{1, 0, 0}))
	assert.True(t, p.Matches([]int{1, 1, 0}))
	assert.False(t, p.Matches([]int{0, 1, 0}))
	assert.False(t, p.Matches([]int{1, 1}))
}

func TestConstrain(t *testing.T) {
	template, err := outcome.ParsePattern("template", "1??", 2, 3)
	require.NoError(t, err)

	cet, err := outcome.ParsePattern("cet", "?0?", 2, 3)
	require.NoError(t, err)

	merged, err := cet.Constrain("cet", template)
	require.NoError(t, err)
	assert.Equal(t, "10?", merged.String())

	conflicting, err := outcome.ParsePattern("cet", "00?", 2, 3)
	require.NoError(t, err)
	_, err = conflicting.Constrain("cet", template)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	_, err = outcome.Pattern{0}.Constrain("cet", template)
	require.ErrorIs(t, err, dlcerr.ErrDigitCountMismatch)
}

func TestDigits(t *testing.T) {
	digits, err := outcome.Digits(6, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0}, digits)
	assert.Equal(t, uint64(6), outcome.Value(digits, 2))

	digits, err = outcome.Digits(255, 16, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 15, 15}, digits)

	_, err = outcome.Digits(8, 2, 3)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	assert.Equal(t, uint64(math.MaxUint64), outcome.MaxValue(2, 64))
	assert.Equal(t, uint64(math.MaxUint64), outcome.MaxValue(10, 30))
	assert.Equal(t, uint64(999), outcome.MaxValue(10, 3))
}

func TestDecomposeInterval(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint64
		base       int
		numDigits  int
		want       []string
	}{
		{"single", 5, 5, 2, 3, []string{"101"}},
		{"full range", 0, 7, 2, 3, []string{"???"}},
		{"inner", 1, 6, 2, 3, []string{"001", "01?", "10?", "110"}},
		{"upper half", 4, 7, 2, 3, []string{"1??"}},
		{"decimal", 10, 219, 10, 3, []string{"01?", "02?", "03?", "04?", "05?", "06?", "07?", "08?", "09?", "1??", "20?", "21?"}},
		{"whole uint64", 0, math.MaxUint64, 2, 64, []string{"????????????????????????????????????????????????????????????????"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := outcome.DecomposeInterval(tt.start, tt.end, tt.base, tt.numDigits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, patternStrings(patterns))
		})
	}
}

func TestDecomposeIntervalCoversExactly(t *testing.T) {
	const numDigits = 5
	patterns, err := outcome.DecomposeInterval(3, 27, 2, numDigits)
	require.NoError(t, err)

	for v := uint64(0); v <= outcome.MaxValue(2, numDigits); v++ {
		digits, err := outcome.Digits(v, 2, numDigits)
		require.NoError(t, err)

		matches := 0
		for _, p := range patterns {
			if p.Matches(digits) {
				matches++
			}
		}

		if v >= 3 && v <= 27 {
			assert.Equal(t, 1, matches, "outcome %d", v)
		} else {
			assert.Zero(t, matches, "outcome %d", v)
		}
	}
}

func TestDecomposeIntervalRejects(t *testing.T) {
	_, err := outcome.DecomposeInterval(5, 4, 2, 3)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	_, err = outcome.DecomposeInterval(0, 8, 2, 3)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	_, err = outcome.DecomposeInterval(0, 1, 1, 3)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	_, err = outcome.DecomposeInterval(0, 1, 2, 0)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}
