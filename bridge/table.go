package bridge

import (
	"fmt"
	"strconv"
)

// Cell is a single scalar worksheet value - text, a number, a boolean or blank.
type Cell struct {
	value any
}

var Blank = Cell{}

func Text(v string) Cell {
	return Cell{value: v}
}

func Number(v float64) Cell {
	return Cell{value: v}
}

func Boolean(v bool) Cell {
	return Cell{value: v}
}

func (c Cell) IsBlank() bool {
	return c.value == nil
}

// Value returns the underlying scalar - a string, float64, bool or nil.
func (c Cell) Value() any {
	return c.value
}

// String formats the cell the way it would be typed into a worksheet. Blank
// cells format as the empty string.
func (c Cell) String() string {
	switch v := c.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", v)
	}
}

type Row []Cell

// Table is a rectangular grid of cells exchanged with a worksheet. It is a
// value type - the bridge neither caches nor mutates tables beyond the
// operation that produced or consumed them.
type Table []Row

// Shape returns the number of rows and the width of the widest row.
func (t Table) Shape() (rows int, cols int) {
	rows = len(t)
	for _, row := range t {
		if len(row) > cols {
			cols = len(row)
		}
	}

	return
}

// values converts a table to the [][]any representation used by the Sheets
// API. Short rows are padded to the table width and blank cells are sent as
// empty strings, so an update covers every cell of the target range.
func (t Table) values() [][]any {
	_, cols := t.Shape()

	values := make([][]any, len(t))

	for i, row := range t {
		values[i] = make([]any, cols)
		for j := range values[i] {
			values[i][j] = ""
		}

		for j, cell := range row {
			if !cell.IsBlank() {
				values[i][j] = cell.value
			}
		}
	}

	return values
}

// tabulate converts a Sheets API value grid to a Table. The API returns cells
// as string, float64 or bool depending on the render option; anything else is
// kept as its string form. Empty strings map to Blank - the service does not
// distinguish empty text from an unpopulated cell, and this keeps blank cells
// stable across a write/read round trip.
func tabulate(values [][]any) Table {
	table := make(Table, len(values))

	for i, row := range values {
		table[i] = make(Row, len(row))
		for j, v := range row {
			switch v := v.(type) {
			case nil:
				table[i][j] = Blank
			case string:
				if v == "" {
					table[i][j] = Blank
				} else {
					table[i][j] = Text(v)
				}
			case float64:
				table[i][j] = Number(v)
			case bool:
				table[i][j] = Boolean(v)
			default:
				table[i][j] = Text(fmt.Sprintf("%v", v))
			}
		}
	}

	return table
}
