package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/ptstat/io"
	"github.com/phil-mansfield/ptstat/particle"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use: "summary FILE...",
		Short: "Print the range, mean, and spread of every parameter",
		Args: cobra.MinimumNArgs(1),
		RunE: runSummary,
	}
}

func runSummary(cmd *cobra.Command, files []string) error {
	out := cmd.OutOrStdout()
	for i, file := range files {
		t, err := particle.ReadTable(file)
		if err != nil { return err }

		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil { return err }
		}
		if err := io.PrintSummary(out, file, t.Rows, particle.Summarize(t)); err != nil {
			return err
		}
	}
	return nil
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use: "example-config",
		Short: "Print an example plot config file",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), io.ExamplePlotFile)
			return err
		},
	}
}
