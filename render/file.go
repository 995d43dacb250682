package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Image formats accepted by io.PlotConfig.Format.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/phil-mansfield/ptstat/hist"
)

var (
	// matplotlib's default line color.
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineWidth = vg.Points(1.5)
	paletteColors = 255
)

// FileRenderer writes every histogram to its own image file.
type FileRenderer struct {
	Dir, Format string
	Width, Height vg.Length

	files []string
}

// NewFileRenderer creates a FileRenderer which writes images of the given
// format and size (in inches) to dir.
func NewFileRenderer(dir, format string, width, height float64) *FileRenderer {
	return &FileRenderer{
		Dir: dir, Format: format,
		Width: vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
	}
}

// Files returns the names of every file written so far.
func (r *FileRenderer) Files() []string { return r.files }

func (r *FileRenderer) fileName(info Info, params ...fmt.Stringer) string {
	name := BaseName(info.File)
	for _, p := range params { name += "_" + p.String() }
	return filepath.Join(r.Dir, name + "." + r.Format)
}

func (r *FileRenderer) Hist1D(h *hist.Hist1D, info Info) error {
	p := plot.New()
	p.Title.Text = Title1D(info)
	p.X.Label.Text = Label(info.X)
	p.Y.Label.Text = densityLabel
	p.Add(plotter.NewGrid())

	xs, ys := StepOutline(h)
	pts := make(plotter.XYs, len(xs))
	for i := range xs { pts[i].X, pts[i].Y = xs[i], ys[i] }

	line, err := plotter.NewLine(pts)
	if err != nil { return err }
	line.Color, line.Width = lineColor, lineWidth
	p.Add(line)

	c, err := draw.NewFormattedCanvas(r.Width, r.Height, r.Format)
	if err != nil { return err }
	p.Draw(draw.New(c))

	return r.write(c, r.fileName(info, info.X))
}

func (r *FileRenderer) Hist2D(h *hist.Hist2D, info Info) error {
	cmap := countColorMap(h)

	p := plot.New()
	p.Title.Text = Title2D(info)
	p.X.Label.Text = Label(info.X)
	p.Y.Label.Text = Label(info.Y)

	hm := plotter.NewHeatMap(histGrid{h}, cmap.Palette(paletteColors))
	hm.Min, hm.Max = cmap.Min(), cmap.Max()
	p.Add(hm)

	// The color bar is a second plot drawn in a strip on the right. Giving it
	// a title keeps its axis the same height as the heat map's.
	bar := plot.New()
	bar.Title.Text = "counts"
	bar.HideX()
	bar.Add(&plotter.ColorBar{ ColorMap: cmap, Vertical: true })

	c, err := draw.NewFormattedCanvas(r.Width, r.Height, r.Format)
	if err != nil { return err }
	dc := draw.New(c)
	barWidth := r.Width / 7

	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, r.Width - barWidth, 0, 0, 0))

	return r.write(c, r.fileName(info, info.X, info.Y))
}

// Close is a no-op: every file is complete once its Hist call returns.
func (r *FileRenderer) Close() error { return nil }

func (r *FileRenderer) write(c vg.CanvasWriterTo, fname string) (err error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil { return err }

	f, err := os.Create(fname)
	if err != nil { return err }
	defer func() {
		if e := f.Close(); err == nil { err = e }
	}()

	if _, err = c.WriteTo(f); err != nil { return err }
	r.files = append(r.files, fname)
	return nil
}

// countColorMap returns a color map spanning the bin counts of h. The range
// is never empty, since color bars can't be drawn for one.
func countColorMap(h *hist.Hist2D) palette.ColorMap {
	max := float64(h.Max())
	if max == 0 { max = 1 }
	cmap := moreland.Kindlmann()
	cmap.SetMin(0)
	cmap.SetMax(max)
	return cmap
}

// histGrid adapts a Hist2D to plotter.GridXYZ.
type histGrid struct {
	h *hist.Hist2D
}

func (g histGrid) Dims() (c, r int) { return g.h.Dims() }
func (g histGrid) Z(c, r int) float64 { return float64(g.h.Counts[c][r]) }
func (g histGrid) X(c int) float64 {
	return (g.h.XEdges[c] + g.h.XEdges[c + 1]) / 2
}
func (g histGrid) Y(r int) float64 {
	return (g.h.YEdges[r] + g.h.YEdges[r + 1]) / 2
}
