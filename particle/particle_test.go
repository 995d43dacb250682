package particle

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, name, body string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

const threeRows = `0.1 0.2 0.3 1.0 0.0 0.0 4 1
0.5 0.6 0.7 0.0 1.0 0.0 2 3
0.9 1.0 1.1 0.0 0.0 1.0 7 0
`

func TestParseParam(t *testing.T) {
	for i, name := range []string{"X", "Y", "Z", "Vx", "Vy", "Vz", "VC", "SC"} {
		p, err := ParseParam(name)
		require.NoError(t, err, name)
		assert.Equal(t, i, p.Column(), name)
		assert.Equal(t, name, p.String())
	}

	for _, name := range []string{"x", "vx", "V", "", "Vw", "SC "} {
		_, err := ParseParam(name)
		assert.True(t, errors.Is(err, ErrUnknownParam), "name '%s'", name)
	}
}

func TestParseParams(t *testing.T) {
	ps, err := ParseParams("X  Vx SC")
	require.NoError(t, err)
	assert.Equal(t, []Param{X, Vx, SC}, ps)

	ps, err = ParseParams("")
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = ParseParams("X Q Y")
	assert.ErrorIs(t, err, ErrUnknownParam)
}

func TestParams(t *testing.T) {
	ps := Params()
	require.Len(t, ps, ParamCount)
	assert.Equal(t, X, ps[0])
	assert.Equal(t, SC, ps[ParamCount-1])
	assert.False(t, Param(ParamCount).Valid())
}

func TestReadTable(t *testing.T) {
	tab, err := ReadTable(writeTable(t, "wall", threeRows))
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, tab.Column(X))
	assert.Equal(t, []float64{0.0, 1.0, 0.0}, tab.Column(Vy))
	assert.Equal(t, []float64{4, 2, 7}, tab.Column(VC))
	assert.Equal(t, []float64{1, 3, 0}, tab.Column(SC))
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "does_not_exist"))
	assert.Error(t, err)
}

func TestCountRows(t *testing.T) {
	n, err := CountRows(writeTable(t, "wall", threeRows))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountRows(writeTable(t, "narrow", "1 2\n3 4\n5 6\n7 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = CountRows(writeTable(t, "single", "1 2 3 4 5 6 7 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "a single row is one particle, not eight")
}

var malformed = []struct {
	name, body string
}{
	{"trailing_word", "1 2 abc\n"},
	{"leading_word", "abc 2\n"},
	{"ragged", "1 2 3\n4\n"},
	{"ragged_wide", "1 2 3 4 5 6 7 8\n1 2 3 4 5 6 7 8 9\n"},
	{"word_in_last_column", "1 2 3 4 5 6 7 8\n1 2 3 4 5 6 7 x\n"},
}

func TestReadTableMalformed(t *testing.T) {
	for _, c := range malformed {
		_, err := ReadTable(writeTable(t, c.name, c.body))
		assert.ErrorIs(t, err, ErrMalformed, c.name)
	}

	_, err := ReadTable(writeTable(t, "narrow", "1 2\n3 4\n"))
	assert.ErrorIs(t, err, ErrMalformed, "fewer than eight columns")
}

func TestCountRowsMalformed(t *testing.T) {
	for _, c := range malformed {
		_, err := CountRows(writeTable(t, c.name, c.body))
		assert.ErrorIs(t, err, ErrMalformed, c.name)
	}
}

func TestCountRowsSkipsBlankAndComments(t *testing.T) {
	n, err := CountRows(writeTable(t, "wall", "# X Y\n1 2\n\n3\t4\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountRows(writeTable(t, "empty", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestNewTable(t *testing.T) {
	col := []float64{1, 2}
	_, err := NewTable(col, col, col)
	assert.Error(t, err)

	_, err = NewTable(col, col, col, col, col, col, col, []float64{1})
	assert.Error(t, err)

	tab, err := NewTable(col, col, col, col, col, col, col, col)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Rows)
}

func TestSummarize(t *testing.T) {
	tab, err := ReadTable(writeTable(t, "wall", threeRows))
	require.NoError(t, err)

	sums := Summarize(tab)
	require.Len(t, sums, ParamCount)

	x := sums[X]
	assert.Equal(t, X, x.Param)
	assert.InDelta(t, 0.1, x.Min, 1e-12)
	assert.InDelta(t, 0.9, x.Max, 1e-12)
	assert.InDelta(t, 0.5, x.Mean, 1e-12)
	assert.InDelta(t, 0.4, x.Std, 1e-12)

	vc := sums[VC]
	assert.Equal(t, 2.0, vc.Min)
	assert.Equal(t, 7.0, vc.Max)
	assert.InDelta(t, 13.0/3, vc.Mean, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	sums := Summarize(&Table{})
	for _, s := range sums {
		assert.True(t, math.IsNaN(s.Mean), s.Param.String())
		assert.True(t, math.IsNaN(s.Min), s.Param.String())
	}
}
