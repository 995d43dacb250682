package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/phil-mansfield/ptstat/hist"
	"github.com/phil-mansfield/ptstat/io"
	"github.com/phil-mansfield/ptstat/particle"
	"github.com/phil-mansfield/ptstat/render"
)

var (
	ErrNoFile = errors.New("no particle statistics file given")
	ErrParamCount = errors.New("wrong number of parameters")
)

type plotOptions struct {
	file, params, pair string
	bins int
	config, backend, output, format string
}

func newPlotCmd(root *rootOptions) *cobra.Command {
	opts := &plotOptions{}

	cmd := &cobra.Command{
		Use: "plot",
		Short: "Plot histograms of the parameters in a file",
		Long: `plot draws a normalized step histogram of every parameter given
with --parameters and a 2D histogram of the pair given with
--dist_over_2_pars. Parameters are named

    X Y Z Vx Vy Vz VC SC

--dist_over_2_pars can be shortened to --p2 or -p2.

The pyplot backend opens matplotlib's viewer once every histogram is drawn.
Its 2D histogram marks each occupied bin with a square colored by the bin's
count and has no color bar. The png backend draws 2D histograms as heat maps
with a color bar.

Plot settings can be read from a config file (see example-config) and any
flag overrides the config file's value. The config file's LogFile and
ProfileFile are used unless --log or --pprof are given.`,
		Example: `  ptstat plot -f wall_stats/wall_1 -p "X Vx VC" -b 100
  ptstat plot -f wall_stats/wall_1 --p2 "X Y" --backend png --output plots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "",
		"Particle statistics file to plot.")
	flags.StringVarP(&opts.params, "parameters", "p", "",
		"Space separated parameters to make 1D histograms of.")
	flags.IntVarP(&opts.bins, "bins", "b", io.DefaultBins,
		"Number of bins along each histogram axis.")
	flags.StringVar(&opts.pair, "dist_over_2_pars", "",
		"Two space separated parameters to make a 2D histogram of (--p2, -p2).")
	flags.StringVarP(&opts.config, "config", "c", "",
		"Plot config file. See example-config.")
	flags.StringVar(&opts.backend, "backend", "",
		"Backend used to draw histograms: pyplot or png.")
	flags.StringVar(&opts.output, "output", "",
		"Directory that the png backend writes images to.")
	flags.StringVar(&opts.format, "format", "",
		"Image format used by the png backend.")

	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "p2" { name = "dist_over_2_pars" }
		return pflag.NormalizedName(name)
	})

	return cmd
}

// plotConfig combines the config file with every flag that was set
// explicitly.
func plotConfig(cmd *cobra.Command, opts *plotOptions) (*io.PlotConfig, error) {
	con := &io.DefaultPlotWrapper().Plot
	if opts.config != "" {
		var err error
		con, err = io.ReadPlotConfig(opts.config)
		if err != nil {
			return nil, fmt.Errorf("Could not read config '%s': %w", opts.config, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("bins") { con.Bins = opts.bins }
	if flags.Changed("backend") { con.Backend = opts.backend }
	if flags.Changed("output") { con.Output = opts.output }
	if flags.Changed("format") { con.Format = opts.format }

	if err := con.CheckInit(); err != nil { return nil, err }
	return con, nil
}

func runPlot(cmd *cobra.Command, root *rootOptions, opts *plotOptions) error {
	// Everything is checked before the file is loaded so that a bad
	// argument never leaves half of the plots drawn.
	if opts.file == "" {
		return fmt.Errorf("%w: use --file to set one", ErrNoFile)
	}

	params, err := particle.ParseParams(opts.params)
	if err != nil { return err }

	// An empty pair is the same as no pair.
	var pair []particle.Param
	if strings.TrimSpace(opts.pair) != "" {
		pair, err = particle.ParseParams(opts.pair)
		if err != nil { return err }
		if len(pair) != 2 {
			return fmt.Errorf("%w: --dist_over_2_pars takes two parameters, "+
				"but was given %d.", ErrParamCount, len(pair))
		}
	}

	con, err := plotConfig(cmd, opts)
	if err != nil { return err }
	if err := root.applyConfig(con); err != nil { return err }

	if len(params) == 0 && pair == nil {
		logger.Warn("No parameters given, nothing to plot",
			zap.String("file", opts.file))
		return nil
	}

	t, err := particle.ReadTable(opts.file)
	if err != nil { return err }
	logger.Info("Read particle table",
		zap.String("file", opts.file), zap.Int("rows", t.Rows))

	r, err := render.New(con)
	if err != nil { return err }

	for _, p := range params {
		h, err := hist.New1D(t.Column(p), con.Bins)
		if err != nil { return fmt.Errorf("Could not bin %s: %w", p, err) }

		logger.Debug("Drawing 1D histogram",
			zap.Stringer("param", p), zap.Int("bins", h.Bins()))
		if err := r.Hist1D(h, render.Info{ File: opts.file, X: p }); err != nil {
			return err
		}
	}

	if pair != nil {
		x, y := pair[0], pair[1]
		h, err := hist.New2D(t.Column(x), t.Column(y), con.Bins)
		if err != nil {
			return fmt.Errorf("Could not bin %s and %s: %w", x, y, err)
		}

		logger.Debug("Drawing 2D histogram",
			zap.Stringer("x", x), zap.Stringer("y", y), zap.Int("max", h.Max()))
		if err := r.Hist2D(h, render.Info{ File: opts.file, X: x, Y: y }); err != nil {
			return err
		}
	}

	if fr, ok := r.(*render.FileRenderer); ok {
		logger.Info("Wrote histograms", zap.Strings("files", fr.Files()))
	}
	return r.Close()
}
