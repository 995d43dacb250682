// Package render draws particle histograms, either interactively through
// matplotlib or into image files.
package render

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/ptstat/hist"
	"github.com/phil-mansfield/ptstat/io"
	"github.com/phil-mansfield/ptstat/particle"
)

const densityLabel = "probability density"

// Info describes the histogram being drawn. Y is only used by 2D histograms.
type Info struct {
	File string
	X, Y particle.Param
}

// Renderer draws histograms. Close must be called once every histogram has
// been drawn: interactive renderers block in Close until their viewer exits.
type Renderer interface {
	Hist1D(h *hist.Hist1D, info Info) error
	Hist2D(h *hist.Hist2D, info Info) error
	Close() error
}

// New returns the Renderer selected by con.Backend. con must have passed
// CheckInit.
func New(con *io.PlotConfig) (Renderer, error) {
	switch con.Backend {
	case "pyplot":
		return NewPyplotRenderer(), nil
	case "png":
		return NewFileRenderer(con.Output, con.Format, con.Width, con.Height), nil
	}
	return nil, fmt.Errorf("Unrecognized backend '%s'.", con.Backend)
}

// BaseName returns the final '/'-separated element of a path.
func BaseName(file string) string {
	return file[strings.LastIndex(file, "/") + 1:]
}

func Title1D(info Info) string {
	return fmt.Sprintf("FILE-> %s  ;  PAR-> %s", BaseName(info.File), info.X)
}

func Title2D(info Info) string {
	return fmt.Sprintf(
		"FILE-> %s  ;  PAR-> %s  %s", BaseName(info.File), info.X, info.Y,
	)
}

// Label returns the axis label for a parameter.
func Label(p particle.Param) string { return fmt.Sprintf("%s values", p) }

// StepOutline returns the vertices of the outline of h.Density drawn as an
// unfilled step histogram. The outline starts and ends at zero on the outer
// edges.
func StepOutline(h *hist.Hist1D) (xs, ys []float64) {
	n := h.Bins()
	xs = make([]float64, 0, 2*n + 2)
	ys = make([]float64, 0, 2*n + 2)

	xs, ys = append(xs, h.Edges[0]), append(ys, 0)
	for i := 0; i < n; i++ {
		xs = append(xs, h.Edges[i], h.Edges[i + 1])
		ys = append(ys, h.Density[i], h.Density[i])
	}
	xs, ys = append(xs, h.Edges[n]), append(ys, 0)

	return xs, ys
}
