package bridge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// a1 is a parsed A1-notation range, relative to a worksheet. Column and row
// fields are 1-based; zero means unbounded (e.g. 'A2:E' leaves r2 open).
type a1 struct {
	c1, r1 int
	c2, r2 int
}

var a1Regexp = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)?(?::([A-Za-z]+)([0-9]+)?)?$`)

// parseA1 parses a range like 'A1:B2', 'A2:E', 'A:C' or 'B7'. The empty
// string is the whole worksheet.
func parseA1(rng string) (a1, error) {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return a1{}, nil
	}

	match := a1Regexp.FindStringSubmatch(rng)
	if match == nil {
		return a1{}, fmt.Errorf("invalid range '%s' - expected something like 'A1:B2'", rng)
	}

	r := a1{
		c1: colIndex(match[1]),
	}

	if match[2] != "" {
		r.r1, _ = strconv.Atoi(match[2])
	}

	if match[3] == "" {
		// single cell
		if r.r1 == 0 {
			return a1{}, fmt.Errorf("invalid range '%s' - expected something like 'A1:B2'", rng)
		}

		r.c2 = r.c1
		r.r2 = r.r1
		return r, nil
	}

	r.c2 = colIndex(match[3])
	if match[4] != "" {
		r.r2, _ = strconv.Atoi(match[4])
	}

	if r.c2 < r.c1 || (r.r1 > 0 && r.r2 > 0 && r.r2 < r.r1) {
		return a1{}, fmt.Errorf("invalid range '%s' - ends before it starts", rng)
	}

	return r, nil
}

// fixed returns true if the range has a definite row/column extent on all
// sides (so a write to it can be shape checked locally).
func (r a1) fixed() bool {
	return r.c1 > 0 && r.r1 > 0 && r.c2 > 0 && r.r2 > 0
}

func (r a1) shape() (rows int, cols int) {
	if r.r1 > 0 && r.r2 > 0 {
		rows = r.r2 - r.r1 + 1
	}

	if r.c1 > 0 && r.c2 > 0 {
		cols = r.c2 - r.c1 + 1
	}

	return
}

// colIndex converts a column name to a 1-based index ('A' is 1, 'AA' is 27).
func colIndex(col string) int {
	ix := 0
	for _, ch := range strings.ToUpper(col) {
		ix = ix*26 + int(ch-'A') + 1
	}

	return ix
}

// colName converts a 1-based column index to a column name.
func colName(ix int) string {
	name := ""
	for ix > 0 {
		ix--
		name = string(rune('A'+ix%26)) + name
		ix /= 26
	}

	return name
}

// qualify prefixes a sheet-relative range with the worksheet name, quoting
// names the A1 grammar would otherwise misread.
func qualify(sheet, rng string) string {
	name := sheet
	if strings.ContainsAny(name, " !':") {
		name = "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}

	if strings.TrimSpace(rng) == "" {
		return name
	}

	return fmt.Sprintf("%s!%s", name, rng)
}
