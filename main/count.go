package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phil-mansfield/ptstat/count"
	"github.com/phil-mansfield/ptstat/io"
)

func newCountCmd() *cobra.Command {
	threads := runtime.NumCPU()

	cmd := &cobra.Command{
		Use: "count FILE...",
		Short: "Count the particles in each file and in total",
		Example: `  ptstat count wall_stats/*`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args, threads)
		},
	}
	cmd.Flags().IntVarP(&threads, "threads", "t", threads,
		"Number of files which are read at the same time.")

	return cmd
}

func runCount(cmd *cobra.Command, files []string, threads int) error {
	logger.Debug("Counting particles",
		zap.Int("files", len(files)), zap.Int("threads", threads))

	out := cmd.OutOrStdout()
	results, err := count.Files(cmd.Context(), files, threads, nil)
	if err != nil {
		// Files listed before the bad one were still counted.
		if perr := io.PrintResults(out, results); perr != nil { return perr }
		return err
	}

	logger.Info("Counted particles",
		zap.Int("files", len(results)), zap.Int("total", count.Total(results)))
	return io.PrintCounts(out, results)
}
