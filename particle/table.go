package particle

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// Table is a particle statistics file loaded into memory. Each row is a
// single particle and each column is one Param.
type Table struct {
	Rows int
	cols [ParamCount][]float64
}

// Column returns the values of p for every particle in the table. The
// returned slice is owned by the Table.
func (t *Table) Column(p Param) []float64 { return t.cols[p] }

// NewTable creates a Table from columns given in Param order. It is mostly
// useful for synthetic data.
func NewTable(cols ...[]float64) (*Table, error) {
	if len(cols) != ParamCount {
		return nil, fmt.Errorf(
			"Given %d columns, but a particle table has %d.",
			len(cols), ParamCount,
		)
	}

	t := &Table{ Rows: len(cols[0]) }
	for i := range cols {
		if len(cols[i]) != t.Rows {
			return nil, fmt.Errorf(
				"Column %s has %d rows, but column %s has %d.",
				Param(i), len(cols[i]), X, t.Rows,
			)
		}
		t.cols[i] = cols[i]
	}
	return t, nil
}

// ReadTable reads every Param column of a whitespace-delimited statistics
// file. Files with fewer than ParamCount columns, ragged rows or non-numeric
// values are rejected with ErrMalformed.
func ReadTable(file string) (*Table, error) {
	rows, err := checkRows(file, ParamCount)
	if err != nil {
		return nil, fmt.Errorf("Could not read table '%s': %w", file, err)
	}
	if rows == 0 { return &Table{}, nil }

	idxs := make([]int, ParamCount)
	for i := range idxs { idxs[i] = Param(i).Column() }

	cols, err := table.ReadTable(file, idxs, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read table '%s': %w", file, err)
	}
	if len(cols) == 0 { return &Table{}, nil }
	return NewTable(cols...)
}

// CountRows returns the number of particles in a whitespace-delimited numeric
// file. Files with any number of columns can be counted, but every row must
// have the same number of numeric values.
func CountRows(file string) (int, error) {
	rows, err := checkRows(file, 1)
	if err != nil {
		return 0, fmt.Errorf("Could not read table '%s': %w", file, err)
	}
	return rows, nil
}
