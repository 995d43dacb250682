// Package count counts the particles in statistics files.
package count

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/ptstat/particle"
)

// Result is the number of particles found in a single file.
type Result struct {
	File string
	Rows int
}

// Counter returns the number of particles in a file.
type Counter func(file string) (int, error)

// Files counts the particles in every file using up to workers concurrent
// counters. If workers is not positive, runtime.NumCPU() is used. A nil
// counter means particle.CountRows.
//
// Results are returned in the same order as files. If any file fails, the
// returned slice holds the results of every file before the first failing
// one, along with that file's error.
func Files(
	ctx context.Context, files []string, workers int, counter Counter,
) ([]Result, error) {
	if counter == nil { counter = particle.CountRows }
	if workers <= 0 { workers = runtime.NumCPU() }

	results := make([]Result, len(files))
	errs := make([]error, len(files))

	// Failures don't cancel the other counters: a file listed before the
	// failing one still needs its count.
	g := &errgroup.Group{}
	g.SetLimit(workers)

	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			n, err := counter(files[i])
			if err != nil {
				errs[i] = fmt.Errorf("Could not count '%s': %w", files[i], err)
				return errs[i]
			}
			results[i] = Result{ File: files[i], Rows: n }
			return nil
		})
	}

	_ = g.Wait()

	// Report the first failure in input order rather than completion order,
	// so the output matches a sequential run.
	for i := range errs {
		if errs[i] != nil { return results[:i], errs[i] }
	}
	return results, nil
}

// Total returns the sum of the particle counts in results.
func Total(results []Result) int {
	sum := 0
	for _, r := range results { sum += r.Rows }
	return sum
}
