package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	DefaultBins = 50
	DefaultWidth, DefaultHeight = 6.0, 4.5

	ExamplePlotFile = `[Plot]

# Every value in this file is optional and every value can be overridden on
# the command line (e.g. --bins, --backend, --output, --format).

# Number of bins along each histogram axis. 2D histograms use this many bins
# along both axes.
Bins = 50

# Backend can be set to one of:
# [ pyplot | png ]
# pyplot draws through matplotlib and opens its interactive viewer once all
# histograms have been drawn. png writes one image file per histogram to the
# Output directory instead.
Backend = pyplot

# Directory which image files are written to. Only used by the png backend.
# File names are <input>_<parameter>.<format> for 1D histograms and
# <input>_<parameter>_<parameter>.<format> for 2D histograms.
# Output = path/to/plot/dir

# Image format used by the png backend. One of:
# [ png | jpg | svg | pdf | eps | tif ]
# Format = png

# Image size in inches.
# Width = 6
# Height = 4.5

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong. The --log and
# --pprof flags override them.
# ProfileFile = prof.out
# LogFile = log.out`
)

var (
	backends = []string{"pyplot", "png"}
	formats = []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff"}
)

type PlotConfig struct {
	Bins int
	Backend string
	Output string
	Format string
	Width, Height float64

	ProfileFile, LogFile string
}

type PlotWrapper struct {
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{
		Bins: DefaultBins,
		Backend: "pyplot",
		Output: ".",
		Format: "png",
		Width: DefaultWidth,
		Height: DefaultHeight,
	}
	return &PlotWrapper{ con }
}

// ReadPlotConfig reads a [Plot] config file. Values which aren't set in the
// file keep their defaults.
func ReadPlotConfig(fname string) (*PlotConfig, error) {
	wrap := DefaultPlotWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Plot, nil
}

func (con *PlotConfig) ValidBins() bool { return con.Bins > 0 }

func (con *PlotConfig) ValidBackend() bool {
	return contains(backends, strings.ToLower(con.Backend))
}

func (con *PlotConfig) ValidFormat() bool {
	return contains(formats, strings.ToLower(con.Format))
}

func (con *PlotConfig) ValidSize() bool {
	return con.Width > 0 && con.Height > 0
}

// CheckInit normalizes the capitalization of the config's values and returns
// an error describing the first invalid one.
func (con *PlotConfig) CheckInit() error {
	if !con.ValidBins() {
		return fmt.Errorf("'Bins' must be positive, but is %d.", con.Bins)
	} else if !con.ValidBackend() {
		return fmt.Errorf(
			"'Backend' must be one of [%s]. '%s' is not recognized.",
			strings.Join(backends, " | "), con.Backend,
		)
	} else if !con.ValidFormat() {
		return fmt.Errorf(
			"'Format' must be one of [%s]. '%s' is not recognized.",
			strings.Join(formats, " | "), con.Format,
		)
	} else if !con.ValidSize() {
		return fmt.Errorf(
			"'Width' and 'Height' must be positive, but are %g and %g.",
			con.Width, con.Height,
		)
	}

	con.Backend = strings.ToLower(con.Backend)
	con.Format = strings.ToLower(con.Format)
	if con.Output == "" { con.Output = "." }

	return nil
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x { return true }
	}
	return false
}
