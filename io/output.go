package io

import (
	"fmt"
	goio "io"

	"github.com/phil-mansfield/ptstat/count"
	"github.com/phil-mansfield/ptstat/particle"
)

// PrintCounts writes one line per counted file followed by the total.
func PrintCounts(w goio.Writer, results []count.Result) error {
	if err := PrintResults(w, results); err != nil { return err }
	return PrintTotal(w, count.Total(results))
}

// PrintResults writes one line per counted file.
func PrintResults(w goio.Writer, results []count.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s --> %d particles\n", r.File, r.Rows); err != nil {
			return err
		}
	}
	return nil
}

func PrintTotal(w goio.Writer, total int) error {
	_, err := fmt.Fprintf(w, "TOTAL PARTICLES --> %d\n", total)
	return err
}

// PrintSummary writes the summaries of a single file as an aligned table
// with one row per parameter.
func PrintSummary(
	w goio.Writer, file string, rows int, sums []particle.Summary,
) error {
	header := []string{"Param", "Min", "Max", "Mean", "Std"}
	cells := make([][]string, len(sums))
	for i, s := range sums {
		cells[i] = []string{
			s.Param.String(),
			fmt.Sprintf("%.6g", s.Min), fmt.Sprintf("%.6g", s.Max),
			fmt.Sprintf("%.6g", s.Mean), fmt.Sprintf("%.6g", s.Std),
		}
	}

	ws := make([]int, len(header))
	for j := range header { ws[j] = len(header[j]) }
	for i := range cells {
		for j := range cells[i] {
			if len(cells[i][j]) > ws[j] { ws[j] = len(cells[i][j]) }
		}
	}

	if _, err := fmt.Fprintf(w, "# %s: %d particles\n", file, rows); err != nil {
		return err
	}
	if err := printRow(w, ws, header); err != nil { return err }
	for i := range cells {
		if err := printRow(w, ws, cells[i]); err != nil { return err }
	}
	return nil
}

// printRow left-aligns the first column and right-aligns the rest.
func printRow(w goio.Writer, ws []int, row []string) error {
	line := fmt.Sprintf("%-*s", ws[0], row[0])
	for j := 1; j < len(row); j++ {
		line += fmt.Sprintf(" %*s", ws[j], row[j])
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
