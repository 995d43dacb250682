package render

import (
	"fmt"
	"image/color"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/ptstat/hist"
)

// PyplotRenderer draws histograms with matplotlib. Figures are accumulated
// and shown together in matplotlib's viewer when Close is called.
type PyplotRenderer struct {
	figures int
}

func NewPyplotRenderer() *PyplotRenderer {
	plt.Reset()
	return &PyplotRenderer{}
}

// Figures returns the number of figures drawn so far.
func (r *PyplotRenderer) Figures() int { return r.figures }

func (r *PyplotRenderer) Hist1D(h *hist.Hist1D, info Info) error {
	xs, ys := StepOutline(h)

	plt.Figure()
	plt.Grid(plt.Axis("both"))
	plt.Title(Title1D(info))
	plt.XLabel(Label(info.X))
	plt.YLabel(densityLabel)
	plt.Plot(xs, ys, plt.LW(1.5))

	r.figures++
	return nil
}

// Hist2D draws every occupied bin as a square marker colored by its count.
// matplotlib's color bar isn't reachable through the bridge, so the figure
// has no color scale legend.
func (r *PyplotRenderer) Hist2D(h *hist.Hist2D, info Info) error {
	ms, err := binMarkers(h)
	if err != nil { return err }

	plt.Figure()
	plt.Grid(plt.Axis("both"))
	plt.Title(Title2D(info))
	plt.XLabel(Label(info.X))
	plt.YLabel(Label(info.Y))

	for _, m := range ms {
		plt.Plot([]float64{m.X}, []float64{m.Y}, "s", plt.C(m.Color))
	}
	plt.XLim(h.XEdges[0], h.XEdges[len(h.XEdges) - 1])
	plt.YLim(h.YEdges[0], h.YEdges[len(h.YEdges) - 1])

	r.figures++
	return nil
}

// marker is a single occupied 2D histogram bin.
type marker struct {
	X, Y float64
	Count int
	Color string
}

// binMarkers returns a marker at the center of every occupied bin of h,
// colored with the same color map used for file heat maps.
func binMarkers(h *hist.Hist2D) ([]marker, error) {
	cmap := countColorMap(h)
	xc, yc := h.XCenters(), h.YCenters()

	ms := []marker{}
	for ix := range h.Counts {
		for iy, n := range h.Counts[ix] {
			if n == 0 { continue }
			c, err := cmap.At(float64(n))
			if err != nil { return nil, err }
			ms = append(ms, marker{ xc[ix], yc[iy], n, hexColor(c) })
		}
	}
	return ms, nil
}

// Close opens the viewer and blocks until it exits.
func (r *PyplotRenderer) Close() error {
	if r.figures == 0 { return nil }
	plt.Show()
	return nil
}

// hexColor converts c to a "#rrggbb" string.
func hexColor(c color.Color) string {
	red, green, blue, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", red>>8, green>>8, blue>>8)
}
