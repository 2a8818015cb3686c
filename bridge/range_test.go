package bridge

import (
	"testing"
)

func TestParseA1(t *testing.T) {
	expected := a1{c1: 1, r1: 1, c2: 2, r2: 2}

	rng, err := parseA1("A1:B2")
	if err != nil {
		t.Fatalf("Unexpected error returned from parseA1 (%v)", err)
	}

	if rng != expected {
		t.Errorf("Incorrect range\n   expected: %+v\n   got:      %+v\n", expected, rng)
	}

	if !rng.fixed() {
		t.Errorf("Expected 'A1:B2' to be fixed-size")
	}

	if rows, cols := rng.shape(); rows != 2 || cols != 2 {
		t.Errorf("Incorrect shape - expected 2x2, got %dx%d", rows, cols)
	}
}

func TestParseA1WithOpenRows(t *testing.T) {
	expected := a1{c1: 1, r1: 2, c2: 5, r2: 0}

	rng, err := parseA1("A2:E")
	if err != nil {
		t.Fatalf("Unexpected error returned from parseA1 (%v)", err)
	}

	if rng != expected {
		t.Errorf("Incorrect range\n   expected: %+v\n   got:      %+v\n", expected, rng)
	}

	if rng.fixed() {
		t.Errorf("Expected 'A2:E' to not be fixed-size")
	}
}

func TestParseA1WithColumnsOnly(t *testing.T) {
	expected := a1{c1: 1, r1: 0, c2: 3, r2: 0}

	rng, err := parseA1("A:C")
	if err != nil {
		t.Fatalf("Unexpected error returned from parseA1 (%v)", err)
	}

	if rng != expected {
		t.Errorf("Incorrect range\n   expected: %+v\n   got:      %+v\n", expected, rng)
	}
}

func TestParseA1WithSingleCell(t *testing.T) {
	expected := a1{c1: 2, r1: 7, c2: 2, r2: 7}

	rng, err := parseA1("B7")
	if err != nil {
		t.Fatalf("Unexpected error returned from parseA1 (%v)", err)
	}

	if rng != expected {
		t.Errorf("Incorrect range\n   expected: %+v\n   got:      %+v\n", expected, rng)
	}
}

func TestParseA1WithWholeSheet(t *testing.T) {
	rng, err := parseA1("")
	if err != nil {
		t.Fatalf("Unexpected error returned from parseA1 (%v)", err)
	}

	if rng.fixed() {
		t.Errorf("Expected whole-sheet range to not be fixed-size")
	}
}

func TestParseA1WithInvalidRange(t *testing.T) {
	for _, rng := range []string{"1A", "A", "A1:B2:C3", "B2:A1", "A5:B2"} {
		if _, err := parseA1(rng); err == nil {
			t.Errorf("Expected error return for invalid range '%s', got %v", rng, err)
		}
	}
}

func TestColIndex(t *testing.T) {
	cases := map[string]int{
		"A":  1,
		"B":  2,
		"Z":  26,
		"AA": 27,
		"AZ": 52,
		"BA": 53,
	}

	for col, expected := range cases {
		if ix := colIndex(col); ix != expected {
			t.Errorf("Incorrect index for column '%s'\n   expected: %v\n   got:      %v\n", col, expected, ix)
		}

		if name := colName(expected); name != col {
			t.Errorf("Incorrect name for column %v\n   expected: %v\n   got:      %v\n", expected, col, name)
		}
	}
}

func TestQualify(t *testing.T) {
	cases := []struct {
		sheet    string
		rng      string
		expected string
	}{
		{"Sheet1", "A1:B2", "Sheet1!A1:B2"},
		{"Sheet1", "", "Sheet1"},
		{"My Sheet", "A1:B2", "'My Sheet'!A1:B2"},
		{"O'Brien", "A1", "'O''Brien'!A1"},
	}

	for _, c := range cases {
		if area := qualify(c.sheet, c.rng); area != c.expected {
			t.Errorf("Incorrect qualified range\n   expected: %s\n   got:      %s\n", c.expected, area)
		}
	}
}
