// Package bridge translates between in-memory tabular values and worksheets
// stored in Google Sheets. It is a thin adapter over the Sheets API - each
// operation is a single blocking request/response exchange, the remote
// spreadsheet is the system of record and the bridge keeps no local state.
package bridge

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scopes for the Sheets and Drive APIs.
const (
	SHEETS          = "https://www.googleapis.com/auth/spreadsheets"
	SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE_READONLY  = "https://www.googleapis.com/auth/drive.readonly"
)

// Bridge exposes read, write and append operations against a worksheet
// reference. The external Sheets service client is its only dependency -
// authentication, transport and service level retry policy all belong to the
// client. The bridge performs no retries of its own and surfaces every
// failure, re-tagged with an error kind, to the caller.
type Bridge struct {
	sheets *sheets.Service
}

// Result describes a successful write or append.
type Result struct {
	Range string
	Rows  int64
	Cells int64
}

// Worksheet describes a sheet (tab) within a spreadsheet.
type Worksheet struct {
	ID    int64
	Title string
	Rows  int64
	Cols  int64
}

// New wraps an existing Sheets service.
func New(service *sheets.Service) *Bridge {
	return &Bridge{
		sheets: service,
	}
}

// NewService creates a Sheets service and wraps it.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Bridge, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client (%w)", err)
	}

	return New(service), nil
}

// Read fetches a range from a worksheet. The range is relative to the
// referenced sheet ('A1:B2', 'A2:E', etc.); the empty string reads the whole
// sheet. Returns ErrNotFound if the spreadsheet or sheet does not exist,
// ErrPermission if the caller lacks access and ErrTransient on retryable
// service faults.
func (b *Bridge) Read(ctx context.Context, ref Ref, rng string) (Table, error) {
	if _, err := parseA1(rng); err != nil {
		return nil, err
	}

	if _, err := b.worksheet(ctx, ref); err != nil {
		return nil, err
	}

	response, err := b.sheets.Spreadsheets.Values.
		Get(ref.SpreadsheetID, qualify(ref.Sheet, rng)).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from worksheet %v (%w)", ref, classify(err))
	}

	return tabulate(response.Values), nil
}

// Write overwrites a range with the supplied table. If the target range is
// fixed-size the table shape is validated locally first and a
// ShapeMismatchError leaves the range unchanged - nothing is sent to the
// service. A failed write never partially applies: the table goes up as a
// single update.
func (b *Bridge) Write(ctx context.Context, ref Ref, rng string, table Table) (Result, error) {
	area, err := parseA1(rng)
	if err != nil {
		return Result{}, err
	}

	if len(table) == 0 {
		return Result{}, fmt.Errorf("empty table")
	}

	if area.fixed() {
		wantRows, wantCols := area.shape()
		gotRows, gotCols := table.Shape()

		if gotRows != wantRows || gotCols != wantCols {
			return Result{}, &ShapeMismatchError{
				Range:    rng,
				WantRows: wantRows,
				WantCols: wantCols,
				GotRows:  gotRows,
				GotCols:  gotCols,
			}
		}
	}

	if _, err := b.worksheet(ctx, ref); err != nil {
		return Result{}, err
	}

	vr := sheets.ValueRange{
		Range:  qualify(ref.Sheet, rng),
		Values: table.values(),
	}

	response, err := b.sheets.Spreadsheets.Values.
		Update(ref.SpreadsheetID, vr.Range, &vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return Result{}, fmt.Errorf("unable to write to worksheet %v (%w)", ref, classify(err))
	}

	return Result{
		Range: response.UpdatedRange,
		Rows:  response.UpdatedRows,
		Cells: response.UpdatedCells,
	}, nil
}

// Append adds the table's rows after the last populated row of the worksheet.
func (b *Bridge) Append(ctx context.Context, ref Ref, table Table) (Result, error) {
	if len(table) == 0 {
		return Result{}, fmt.Errorf("empty table")
	}

	if _, err := b.worksheet(ctx, ref); err != nil {
		return Result{}, err
	}

	vr := sheets.ValueRange{
		Values: table.values(),
	}

	response, err := b.sheets.Spreadsheets.Values.
		Append(ref.SpreadsheetID, qualify(ref.Sheet, ""), &vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return Result{}, fmt.Errorf("unable to append to worksheet %v (%w)", ref, classify(err))
	}

	result := Result{}
	if response.Updates != nil {
		result.Range = response.Updates.UpdatedRange
		result.Rows = response.Updates.UpdatedRows
		result.Cells = response.Updates.UpdatedCells
	}

	return result, nil
}

// Clear blanks one or more ranges of the referenced worksheet in a single
// batch. The ranges are relative to the referenced sheet; no ranges clears
// the whole sheet.
func (b *Bridge) Clear(ctx context.Context, ref Ref, ranges ...string) error {
	if _, err := b.worksheet(ctx, ref); err != nil {
		return err
	}

	if len(ranges) == 0 {
		ranges = []string{""}
	}

	rq := sheets.BatchClearValuesRequest{}
	for _, rng := range ranges {
		if _, err := parseA1(rng); err != nil {
			return err
		}

		rq.Ranges = append(rq.Ranges, qualify(ref.Sheet, rng))
	}

	if _, err := b.sheets.Spreadsheets.Values.BatchClear(ref.SpreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear worksheet %v (%w)", ref, classify(err))
	}

	return nil
}

// Worksheets enumerates the sheets of a spreadsheet.
func (b *Bridge) Worksheets(ctx context.Context, spreadsheetID string) ([]Worksheet, error) {
	spreadsheet, err := b.spreadsheet(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	worksheets := []Worksheet{}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}

		w := Worksheet{
			ID:    sheet.Properties.SheetId,
			Title: sheet.Properties.Title,
		}

		if grid := sheet.Properties.GridProperties; grid != nil {
			w.Rows = grid.RowCount
			w.Cols = grid.ColumnCount
		}

		worksheets = append(worksheets, w)
	}

	return worksheets, nil
}

func (b *Bridge) spreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := b.sheets.Spreadsheets.
		Get(spreadsheetID).
		Fields("spreadsheetId,sheets(properties(sheetId,title,gridProperties))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch spreadsheet %s (%w)", spreadsheetID, classify(err))
	}

	return spreadsheet, nil
}

// worksheet resolves a reference against the spreadsheet metadata. The Sheets
// API reports a bad sheet name in a range as a generic 400 - resolving the
// sheet up front lets a missing worksheet surface as ErrNotFound.
func (b *Bridge) worksheet(ctx context.Context, ref Ref) (*sheets.Sheet, error) {
	spreadsheet, err := b.spreadsheet(ctx, ref.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(ref.Sheet) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("worksheet '%s': %w", ref.Sheet, ErrNotFound)
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
