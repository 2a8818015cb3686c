package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sheetbridge/sheetbridge/bridge"
)

// ReadXLSX loads the first sheet of an Excel workbook as a table.
func ReadXLSX(path string) (bridge.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	table := make(bridge.Table, len(rows))
	for i, record := range rows {
		row := make(bridge.Row, len(record))
		for j, v := range record {
			row[j] = parseCell(v)
		}

		table[i] = row
	}

	return table, nil
}

// WriteXLSX stores a table as a single-sheet Excel workbook.
func WriteXLSX(path string, table bridge.Table) error {
	f := excelize.NewFile()

	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range table {
		record := make([]any, len(row))
		for j, cell := range row {
			record[j] = cell.Value()
		}

		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &record); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
