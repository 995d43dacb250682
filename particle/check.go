package particle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed statistics file")

// checkRows scans a whitespace-delimited numeric file and returns its number
// of rows. Every row must have the same number of columns, at least minCols,
// and every value must be a number. Blank lines and lines starting with '#'
// are skipped.
func checkRows(file string, minCols int) (rows int, err error) {
	f, err := os.Open(file)
	if err != nil { return 0, err }
	defer f.Close()

	cols := -1
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' { continue }

		fields := strings.Fields(text)
		if cols == -1 {
			cols = len(fields)
			if cols < minCols {
				return 0, fmt.Errorf("%w: line %d has %d columns, "+
					"but at least %d are needed", ErrMalformed, line, cols, minCols)
			}
		} else if len(fields) != cols {
			return 0, fmt.Errorf("%w: line %d has %d columns, but line 1 has %d",
				ErrMalformed, line, len(fields), cols)
		}

		for _, s := range fields {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return 0, fmt.Errorf("%w: line %d: '%s' is not a number",
					ErrMalformed, line, s)
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil { return 0, err }

	return rows, nil
}
