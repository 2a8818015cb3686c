package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheetbridge/sheetbridge/bridge"
	"github.com/sheetbridge/sheetbridge/internal/log"
	"github.com/sheetbridge/sheetbridge/tabular"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Downloads a worksheet range to a local file",
	Long:  "Downloads a Google Sheets worksheet range and stores it to a local TSV, CSV or XLSX file",
	Example: `  sheetbridge get --credentials credentials.json \
                  --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                  --sheet "Sheet1" \
                  --range "A1:E" \
                  --file example.tsv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return get(cmd, getRange, getFile)
	},
}

var (
	getRange string
	getFile  string
)

func init() {
	getCmd.Flags().StringVar(&getRange, "range", "", "Worksheet range e.g. 'A2:E' (defaults to the whole sheet)")
	getCmd.Flags().StringVar(&getFile, "file", time.Now().Format("2006-01-02T150405.tsv"), "Output file. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	rootCmd.AddCommand(getCmd)
}

func get(cmd *cobra.Command, rng, file string) error {
	url, err := spreadsheet()
	if err != nil {
		return err
	}

	name, err := worksheet()
	if err != nil {
		return err
	}

	ref, err := bridge.NewRef(url, name)
	if err != nil {
		return err
	}

	log.Debug("retrieving worksheet", zap.String("spreadsheet", ref.SpreadsheetID), zap.String("sheet", ref.Sheet), zap.String("range", rng))

	b, err := newBridge(cmd.Context(), bridge.SHEETS_READONLY)
	if err != nil {
		return err
	}

	table, err := b.Read(cmd.Context(), ref, rng)
	if err != nil {
		return err
	}

	if len(table) == 0 {
		return fmt.Errorf("no data in worksheet/range")
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "*"+filepath.Ext(file))
	if err != nil {
		return err
	}

	tmp.Close()

	defer os.Remove(tmp.Name())

	if err := tabular.WriteFile(tmp.Name(), table); err != nil {
		return fmt.Errorf("error creating output file (%w)", err)
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return err
	}

	rows, cols := table.Shape()
	log.Info("retrieved worksheet", zap.String("file", file), zap.Int("rows", rows), zap.Int("cols", cols))

	return nil
}
