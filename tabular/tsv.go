package tabular

import (
	"encoding/csv"
	"io"

	"github.com/sheetbridge/sheetbridge/bridge"
)

// Read parses delimiter separated values into a table. Rows may be ragged -
// the bridge pads them to the table width when uploading.
func Read(f io.Reader, comma rune) (bridge.Table, error) {
	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	table := make(bridge.Table, len(records))
	for i, record := range records {
		row := make(bridge.Row, len(record))
		for j, v := range record {
			row[j] = parseCell(v)
		}

		table[i] = row
	}

	return table, nil
}

// Write formats a table as delimiter separated values.
func Write(f io.Writer, comma rune, table bridge.Table) error {
	w := csv.NewWriter(f)
	w.Comma = comma

	for _, row := range table {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cell.String()
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
