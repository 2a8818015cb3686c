package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sheetbridge/sheetbridge/bridge"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Lists the worksheets in a spreadsheet",
	Example: `  sheetbridge sheets --credentials credentials.json \
                     --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`,
	RunE: listSheets,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

func listSheets(cmd *cobra.Command, args []string) error {
	url, err := spreadsheet()
	if err != nil {
		return err
	}

	// the sheets command works on the whole spreadsheet, not a single tab
	id, err := bridge.SpreadsheetID(url)
	if err != nil {
		return err
	}

	b, err := newBridge(cmd.Context(), bridge.SHEETS_READONLY)
	if err != nil {
		return err
	}

	worksheets, err := b.Worksheets(cmd.Context(), id)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintf(w, "ID\tTITLE\tROWS\tCOLS\n")
	for _, sheet := range worksheets {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", sheet.ID, sheet.Title, sheet.Rows, sheet.Cols)
	}

	return w.Flush()
}
