package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheetbridge/sheetbridge/bridge"
	"github.com/sheetbridge/sheetbridge/internal/log"
	"github.com/sheetbridge/sheetbridge/tabular"
)

var putCmd = &cobra.Command{
	Use:   "put",
	Short: "Uploads a local file to a worksheet range",
	Long: `Uploads a local TSV, CSV or XLSX file to a Google Sheets worksheet range,
overwriting the target range. If the range is fixed-size the file must match
its shape exactly - a mismatch fails without changing the worksheet.`,
	Example: `  sheetbridge put --credentials credentials.json \
                  --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                  --sheet "Sheet1" \
                  --range "A1:E5" \
                  --file example.tsv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return put(cmd, putRange, putFile)
	},
}

var (
	putRange string
	putFile  string
)

func init() {
	putCmd.Flags().StringVar(&putRange, "range", "", "Worksheet range e.g. 'A1:E5'")
	putCmd.Flags().StringVar(&putFile, "file", "", "Input file")

	rootCmd.AddCommand(putCmd)
}

func put(cmd *cobra.Command, rng, file string) error {
	if strings.TrimSpace(file) == "" {
		return fmt.Errorf("--file is a required option")
	}

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

	table, err := tabular.ReadFile(file)
	if err != nil {
		return err
	}

	b, err := newBridge(cmd.Context(), bridge.SHEETS)
	if err != nil {
		return err
	}

	result, err := b.Write(cmd.Context(), ref, rng, table)
	if err != nil {
		return err
	}

	log.Info("uploaded file to worksheet",
		zap.String("file", file),
		zap.String("range", result.Range),
		zap.Int64("rows", result.Rows),
		zap.Int64("cells", result.Cells))

	return nil
}
