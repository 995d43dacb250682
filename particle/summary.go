package particle

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds simple statistics for one column of a Table.
type Summary struct {
	Param Param
	Min, Max, Mean, Std float64
}

// Summarize computes a Summary for every Param of t, in column order. Std is
// the sample standard deviation. Statistics of an empty table are NaN, and
// Std is NaN for tables with a single row.
func Summarize(t *Table) []Summary {
	out := make([]Summary, ParamCount)
	for i := range out {
		p := Param(i)
		xs := t.Column(p)
		out[i].Param = p

		if len(xs) == 0 {
			nan := math.NaN()
			out[i].Min, out[i].Max, out[i].Mean, out[i].Std = nan, nan, nan, nan
			continue
		}

		out[i].Min, out[i].Max = floats.Min(xs), floats.Max(xs)
		out[i].Mean, out[i].Std = stat.MeanStdDev(xs, nil)
	}
	return out
}
