package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sheetbridge/sheetbridge/internal/log"
)

const APP = "sheetbridge"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   APP,
	Short: "Moves tabular data between local files and Google Sheets worksheets",
	Long: `sheetbridge reads and writes rectangular ranges of a Google Sheets worksheet,
bridging them to local TSV, CSV and XLSX files. The remote spreadsheet is the
system of record - sheetbridge keeps no local state beyond cached OAuth2
tokens.`,
	Version: VERSION,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(viper.GetBool("debug"))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (defaults to ~/.sheetbridge.yaml)")
	rootCmd.PersistentFlags().String("credentials", "", "Path for the Google API 'credentials.json' file")
	rootCmd.PersistentFlags().String("workdir", "", "Directory for working files (cached tokens, etc)")
	rootCmd.PersistentFlags().String("url", "", "Spreadsheet URL or ID")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet (tab) name")
	rootCmd.PersistentFlags().Bool("debug", false, "Displays internal information for diagnosing errors")

	viper.BindPFlag("credentials", rootCmd.PersistentFlags().Lookup("credentials"))
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("sheet", rootCmd.PersistentFlags().Lookup("sheet"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig resolves settings in flag > config file > environment order.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".sheetbridge")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SHEETBRIDGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", zap.String("file", viper.ConfigFileUsed()))
	}
}

func workdir() string {
	if dir := strings.TrimSpace(viper.GetString("workdir")); dir != "" {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".sheetbridge")
	}

	return ".sheetbridge"
}

func credentials() (string, error) {
	if file := strings.TrimSpace(viper.GetString("credentials")); file != "" {
		return file, nil
	}

	file := filepath.Join(workdir(), "credentials.json")
	if _, err := os.Stat(file); err != nil {
		return "", fmt.Errorf("--credentials is a required option")
	}

	return file, nil
}

func spreadsheet() (string, error) {
	if url := strings.TrimSpace(viper.GetString("url")); url != "" {
		return url, nil
	}

	return "", fmt.Errorf("--url is a required option")
}

func worksheet() (string, error) {
	if name := strings.TrimSpace(viper.GetString("sheet")); name != "" {
		return name, nil
	}

	return "", fmt.Errorf("--sheet is a required option")
}
