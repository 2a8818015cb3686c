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

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Appends a local file's rows to a worksheet",
	Long:  "Appends the rows of a local TSV, CSV or XLSX file after the last populated row of a Google Sheets worksheet",
	Example: `  sheetbridge append --credentials credentials.json \
                     --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                     --sheet "Sheet1" \
                     --file example.tsv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appendRows(cmd, appendFile)
	},
}

var appendFile string

func init() {
	appendCmd.Flags().StringVar(&appendFile, "file", "", "Input file")

	rootCmd.AddCommand(appendCmd)
}

func appendRows(cmd *cobra.Command, file string) error {
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

	result, err := b.Append(cmd.Context(), ref, table)
	if err != nil {
		return err
	}

	log.Info("appended file to worksheet",
		zap.String("file", file),
		zap.String("range", result.Range),
		zap.Int64("rows", result.Rows))

	return nil
}
