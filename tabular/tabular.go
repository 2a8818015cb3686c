// Package tabular reads and writes bridge tables as local TSV, CSV and XLSX
// files.
package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sheetbridge/sheetbridge/bridge"
)

// ReadFile loads a table from a file, choosing the codec by extension:
// '.tsv' and '.txt' are tab separated, '.csv' comma separated and '.xlsx' an
// Excel workbook (first sheet).
func ReadFile(path string) (bridge.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return Read(f, '\t')

	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return Read(f, ',')

	case ".xlsx":
		return ReadXLSX(path)

	default:
		return nil, fmt.Errorf("unsupported file format '%s'", filepath.Ext(path))
	}
}

// WriteFile stores a table to a file, choosing the codec by extension.
func WriteFile(path string, table bridge.Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		return Write(f, '\t', table)

	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		return Write(f, ',', table)

	case ".xlsx":
		return WriteXLSX(path, table)

	default:
		return fmt.Errorf("unsupported file format '%s'", filepath.Ext(path))
	}
}

// parseCell converts a file cell to a table cell - numbers and booleans are
// recognised, everything else is trimmed text.
func parseCell(v string) bridge.Cell {
	v = strings.TrimSpace(v)

	if v == "" {
		return bridge.Blank
	}

	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return bridge.Number(n)
	}

	if strings.EqualFold(v, "true") {
		return bridge.Boolean(true)
	}

	if strings.EqualFold(v, "false") {
		return bridge.Boolean(false)
	}

	return bridge.Text(v)
}
