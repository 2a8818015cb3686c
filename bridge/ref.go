package bridge

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urlRegexp = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
	idRegexp  = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// Ref identifies a worksheet - a spreadsheet and a sheet (tab) within it. It
// is owned by the caller; the bridge holds no reference to it beyond the
// lifetime of a single operation.
type Ref struct {
	SpreadsheetID string
	Sheet         string
}

// SpreadsheetID extracts the spreadsheet ID from a docs.google.com URL or
// validates a bare ID.
func SpreadsheetID(spreadsheet string) (string, error) {
	spreadsheet = strings.TrimSpace(spreadsheet)

	if match := urlRegexp.FindStringSubmatch(spreadsheet); len(match) > 1 {
		spreadsheet = match[1]
	}

	if !idRegexp.MatchString(spreadsheet) {
		return "", fmt.Errorf("invalid spreadsheet '%s' - expected an ID or a URL like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", spreadsheet)
	}

	return spreadsheet, nil
}

// NewRef builds a worksheet reference from a spreadsheet ID or a
// docs.google.com URL, and a sheet name.
func NewRef(spreadsheet, sheet string) (Ref, error) {
	id, err := SpreadsheetID(spreadsheet)
	if err != nil {
		return Ref{}, err
	}

	if strings.TrimSpace(sheet) == "" {
		return Ref{}, fmt.Errorf("missing sheet name")
	}

	return Ref{
		SpreadsheetID: id,
		Sheet:         strings.TrimSpace(sheet),
	}, nil
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s", r.SpreadsheetID, r.Sheet)
}
