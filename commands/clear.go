package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheetbridge/sheetbridge/bridge"
	"github.com/sheetbridge/sheetbridge/internal/log"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears one or more worksheet ranges",
	Long:  "Clears the values from one or more ranges of a Google Sheets worksheet in a single batch. Without --range the whole sheet is cleared.",
	Example: `  sheetbridge clear --credentials credentials.json \
                    --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                    --sheet "Sheet1" \
                    --range "A2:E" --range "G2:H"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return clear(cmd, clearRanges)
	},
}

var clearRanges []string

func init() {
	clearCmd.Flags().StringArrayVar(&clearRanges, "range", nil, "Worksheet range to clear (repeatable)")

	rootCmd.AddCommand(clearCmd)
}

func clear(cmd *cobra.Command, ranges []string) error {
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

	b, err := newBridge(cmd.Context(), bridge.SHEETS)
	if err != nil {
		return err
	}

	if err := b.Clear(cmd.Context(), ref, ranges...); err != nil {
		return err
	}

	log.Info("cleared worksheet ranges", zap.String("sheet", ref.Sheet), zap.Strings("ranges", ranges))

	return nil
}
