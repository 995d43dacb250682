package main

import (
	"context"
	"fmt"
	goio "io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phil-mansfield/ptstat/io"
)

var logger = zap.NewNop()

// FileGroup holds the files opened by the persistent flags. They stay open
// for the lifetime of the command.
type FileGroup struct {
	prof *os.File
}

func (fg *FileGroup) Close() error {
	if logger != nil { _ = logger.Sync() }
	if fg.prof == nil { return nil }

	pprof.StopCPUProfile()
	err := fg.prof.Close()
	fg.prof = nil
	return err
}

type rootOptions struct {
	verbose bool
	logFile, profFile string
	files FileGroup
}

// setup replaces the global logger and starts the CPU profile.
func (opts *rootOptions) setup() error {
	if err := opts.setupLogger(); err != nil { return err }
	return opts.startProfile()
}

// setupLogger logs warnings and errors to stderr by default. Writing to a
// log file also keeps info messages, and --verbose adds debug messages.
func (opts *rootOptions) setupLogger() error {
	con := zap.NewProductionConfig()
	con.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.logFile != "" {
		con.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		con.OutputPaths = []string{opts.logFile}
		con.ErrorOutputPaths = []string{opts.logFile}
	}
	if opts.verbose {
		con.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := con.Build()
	if err != nil {
		return fmt.Errorf("Could not initialize logger: %w", err)
	}
	_ = logger.Sync()
	logger = l
	return nil
}

func (opts *rootOptions) startProfile() error {
	if opts.profFile == "" || opts.files.prof != nil { return nil }

	f, err := os.Create(opts.profFile)
	if err != nil { return err }
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	opts.files.prof = f
	logger.Debug("Started CPU profile", zap.String("file", opts.profFile))
	return nil
}

// applyConfig uses the log and profile files named in a config file. The
// --log and --pprof flags take precedence.
func (opts *rootOptions) applyConfig(con *io.PlotConfig) error {
	if opts.logFile == "" && con.LogFile != "" {
		opts.logFile = con.LogFile
		if err := opts.setupLogger(); err != nil { return err }
	}
	if opts.profFile == "" && con.ProfileFile != "" {
		opts.profFile = con.ProfileFile
		if err := opts.startProfile(); err != nil { return err }
	}
	return nil
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use: "ptstat",
		Short: "Count and plot particles in particle statistics files",
		Long: `ptstat works with the particle statistics files written for each
surface of a simulation. Every row of such a file is one particle and its
eight whitespace separated columns are

    X Y Z Vx Vy Vz VC SC

ptstat can count the particles in any number of files, summarize each
column, and plot 1D and 2D histograms of the columns.`,
		SilenceUsage: true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging. By default only warnings are logged.")
	root.PersistentFlags().StringVar(&opts.logFile, "log", "",
		"Location to write log statements to. Default is stderr.")
	root.PersistentFlags().StringVar(&opts.profFile, "pprof", "",
		"Location to write a CPU profile to. Default is no profiling.")

	root.AddCommand(newCountCmd())
	root.AddCommand(newPlotCmd(opts))
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newExampleConfigCmd())

	return root
}

// expandArgs rewrites "-p2" as "--p2". pflag would otherwise read it as
// "-p 2".
func expandArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg == "--":
			copy(out[i:], args[i:])
			return out
		case arg == "-p2":
			out[i] = "--p2"
		case strings.HasPrefix(arg, "-p2="):
			out[i] = "-" + arg
		default:
			out[i] = arg
		}
	}
	return out
}

// run executes the command line args, writing results to stdout.
func run(args []string, stdout goio.Writer) error {
	opts := &rootOptions{}
	root := newRootCmd(opts)
	root.SetArgs(expandArgs(args))
	root.SetOut(stdout)

	err := root.ExecuteContext(context.Background())
	if cerr := opts.files.Close(); err == nil { err = cerr }
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Debug("ptstat failed", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
