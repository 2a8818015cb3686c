package bridge

import (
	"testing"
)

func TestNewRefWithURL(t *testing.T) {
	expected := Ref{
		SpreadsheetID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		Sheet:         "Sheet1",
	}

	ref, err := NewRef("https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "Sheet1")
	if err != nil {
		t.Fatalf("Unexpected error returned from NewRef (%v)", err)
	}

	if ref != expected {
		t.Errorf("Incorrect reference\n   expected: %v\n   got:      %v\n", expected, ref)
	}
}

func TestNewRefWithID(t *testing.T) {
	expected := Ref{
		SpreadsheetID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		Sheet:         "ACL",
	}

	ref, err := NewRef("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "ACL")
	if err != nil {
		t.Fatalf("Unexpected error returned from NewRef (%v)", err)
	}

	if ref != expected {
		t.Errorf("Incorrect reference\n   expected: %v\n   got:      %v\n", expected, ref)
	}
}

func TestSpreadsheetID(t *testing.T) {
	cases := []struct {
		spreadsheet string
		expected    string
	}{
		{"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, c := range cases {
		id, err := SpreadsheetID(c.spreadsheet)
		if err != nil {
			t.Fatalf("Unexpected error returned from SpreadsheetID (%v)", err)
		}

		if id != c.expected {
			t.Errorf("Incorrect spreadsheet ID for '%s'\n   expected: %s\n   got:      %s\n", c.spreadsheet, c.expected, id)
		}
	}
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	if _, err := SpreadsheetID("https://example.com/spreadsheets/d/xxx"); err == nil {
		t.Errorf("Expected error return for invalid spreadsheet URL, got %v", err)
	}
}

func TestNewRefWithInvalidURL(t *testing.T) {
	if _, err := NewRef("https://example.com/spreadsheets/d/xxx", "Sheet1"); err == nil {
		t.Errorf("Expected error return for invalid spreadsheet URL, got %v", err)
	}
}

func TestNewRefWithMissingSheet(t *testing.T) {
	if _, err := NewRef("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", ""); err == nil {
		t.Errorf("Expected error return for missing sheet name, got %v", err)
	}
}
