package tabular

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sheetbridge/sheetbridge/bridge"
)

func TestXLSXRoundTrip(t *testing.T) {
	table := bridge.Table{
		{bridge.Text("name"), bridge.Text("count")},
		{bridge.Text("widgets"), bridge.Number(42)},
	}

	file := filepath.Join(t.TempDir(), "test.xlsx")

	if err := WriteXLSX(file, table); err != nil {
		t.Fatalf("Unexpected error returned from WriteXLSX (%v)", err)
	}

	got, err := ReadXLSX(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadXLSX (%v)", err)
	}

	if !reflect.DeepEqual(got, table) {
		t.Errorf("Incorrect round-trip table\n   expected: %v\n   got:      %v\n", table, got)
	}
}

func TestReadXLSXWithMissingFile(t *testing.T) {
	if _, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Errorf("Expected error return for missing file, got %v", err)
	}
}

func TestFileFormatSelection(t *testing.T) {
	table := bridge.Table{
		{bridge.Text("a"), bridge.Number(1)},
	}

	for _, name := range []string{"test.tsv", "test.csv", "test.xlsx"} {
		file := filepath.Join(t.TempDir(), name)

		if err := WriteFile(file, table); err != nil {
			t.Fatalf("Unexpected error returned from WriteFile for '%s' (%v)", name, err)
		}

		got, err := ReadFile(file)
		if err != nil {
			t.Fatalf("Unexpected error returned from ReadFile for '%s' (%v)", name, err)
		}

		if !reflect.DeepEqual(got, table) {
			t.Errorf("Incorrect round-trip table for '%s'\n   expected: %v\n   got:      %v\n", name, table, got)
		}
	}
}

func TestReadFileWithUnsupportedFormat(t *testing.T) {
	if _, err := ReadFile("test.pdf"); err == nil {
		t.Errorf("Expected error return for unsupported format, got %v", err)
	}
}
