// Package hist bins particle parameters into equal-width histograms.
//
// Binning follows the usual conventions of plotting packages: the range of a
// histogram is the range of its samples, every bin is half open except the
// last one, which also contains the maximum sample, and a sample set with no
// spread is given a unit-width range centered on its value.
package hist

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrBins      = errors.New("bin count must be positive")
	ErrNonFinite = errors.New("samples must be finite")
	ErrLength    = errors.New("sample arrays have different lengths")
)

// Hist1D is a one dimensional histogram.
type Hist1D struct {
	// Edges has len(Counts) + 1 elements.
	Edges []float64
	Counts []int
	// Density is normalized so that it integrates to one over the range of
	// the histogram.
	Density []float64
	Total int
}

// Hist2D is a two dimensional histogram. Counts[ix][iy] is the number of
// samples in the ix-th x bin and iy-th y bin.
type Hist2D struct {
	XEdges, YEdges []float64
	Counts [][]int
	Total int
}

// Range returns the limits of a histogram of xs. Samples with no spread
// produce the range [x - 0.5, x + 0.5] and no samples produce [0, 1].
func Range(xs []float64) (lo, hi float64, err error) {
	if len(xs) == 0 { return 0, 1, nil }
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, 0, fmt.Errorf("%w: found %g", ErrNonFinite, x)
		}
	}

	lo, hi = floats.Min(xs), floats.Max(xs)
	if lo == hi { lo, hi = lo - 0.5, hi + 0.5 }
	return lo, hi, nil
}

// Edges returns bins + 1 evenly spaced bin edges from lo to hi. The first and
// last edges are exactly lo and hi.
func Edges(lo, hi float64, bins int) []float64 {
	edges := make([]float64, bins + 1)
	floats.Span(edges, lo, hi)
	edges[0], edges[bins] = lo, hi
	return edges
}

// binIndex returns the bin containing x. x must be inside [edges[0],
// edges[bins]].
func binIndex(x float64, edges []float64) int {
	bins := len(edges) - 1
	lo, hi := edges[0], edges[bins]

	idx := int((x - lo) / (hi - lo) * float64(bins))
	if idx >= bins { idx = bins - 1 }
	if idx < 0 { idx = 0 }

	// Floating point rounding can put x one bin away from the edges which
	// were actually generated.
	if x < edges[idx] && idx > 0 {
		idx--
	} else if idx < bins - 1 && x >= edges[idx + 1] {
		idx++
	}
	return idx
}

// New1D bins xs into the given number of equal-width bins.
func New1D(xs []float64, bins int) (*Hist1D, error) {
	if bins <= 0 { return nil, fmt.Errorf("%w: got %d", ErrBins, bins) }
	lo, hi, err := Range(xs)
	if err != nil { return nil, err }

	h := &Hist1D{
		Edges: Edges(lo, hi, bins),
		Counts: make([]int, bins),
		Density: make([]float64, bins),
		Total: len(xs),
	}

	for _, x := range xs {
		h.Counts[binIndex(x, h.Edges)]++
	}

	if h.Total == 0 { return h, nil }
	for i, n := range h.Counts {
		width := h.Edges[i + 1] - h.Edges[i]
		h.Density[i] = float64(n) / (float64(h.Total) * width)
	}

	return h, nil
}

// Bins returns the number of bins in h.
func (h *Hist1D) Bins() int { return len(h.Counts) }

// Centers returns the midpoint of every bin.
func (h *Hist1D) Centers() []float64 { return centers(h.Edges) }

// Integral returns the integral of h.Density over the histogram's range.
func (h *Hist1D) Integral() float64 {
	sum := 0.0
	for i, d := range h.Density {
		sum += d * (h.Edges[i + 1] - h.Edges[i])
	}
	return sum
}

// New2D bins the pairs (xs[i], ys[i]) into a grid with the given number of
// bins along each axis.
func New2D(xs, ys []float64, bins int) (*Hist2D, error) {
	if bins <= 0 { return nil, fmt.Errorf("%w: got %d", ErrBins, bins) }
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values and %d y values",
			ErrLength, len(xs), len(ys))
	}

	xLo, xHi, err := Range(xs)
	if err != nil { return nil, err }
	yLo, yHi, err := Range(ys)
	if err != nil { return nil, err }

	h := &Hist2D{
		XEdges: Edges(xLo, xHi, bins),
		YEdges: Edges(yLo, yHi, bins),
		Counts: make([][]int, bins),
		Total: len(xs),
	}
	for i := range h.Counts { h.Counts[i] = make([]int, bins) }

	for i := range xs {
		ix, iy := binIndex(xs[i], h.XEdges), binIndex(ys[i], h.YEdges)
		h.Counts[ix][iy]++
	}

	return h, nil
}

// Dims returns the number of bins along the x and y axes.
func (h *Hist2D) Dims() (nx, ny int) {
	return len(h.XEdges) - 1, len(h.YEdges) - 1
}

func (h *Hist2D) XCenters() []float64 { return centers(h.XEdges) }
func (h *Hist2D) YCenters() []float64 { return centers(h.YEdges) }

// Max returns the largest bin count.
func (h *Hist2D) Max() int {
	max := 0
	for i := range h.Counts {
		for _, n := range h.Counts[i] {
			if n > max { max = n }
		}
	}
	return max
}

func centers(edges []float64) []float64 {
	cs := make([]float64, len(edges) - 1)
	for i := range cs { cs[i] = (edges[i] + edges[i + 1]) / 2 }
	return cs
}
