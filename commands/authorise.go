package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"

	"github.com/sheetbridge/sheetbridge/bridge"
)

var authoriseCmd = &cobra.Command{
	Use:     "authorise",
	Aliases: []string{"authorize"},
	Short:   "Authorises sheetbridge to access Google Sheets",
	Long:    "Runs the OAuth2 console flow for the Sheets scope and caches the granted tokens under the workdir. Not required for service account credentials.",
	RunE:    authorise,
}

func init() {
	rootCmd.AddCommand(authoriseCmd)
}

func authorise(cmd *cobra.Command, args []string) error {
	credentials, err := credentials()
	if err != nil {
		return err
	}

	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, bridge.SHEETS)
	if err != nil {
		return err
	}

	token, err := tokenFromConsole(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	tokens := tokenFile(credentials, bridge.SHEETS)
	if err := saveToken(tokens, token); err != nil {
		return err
	}

	fmt.Printf("Saved tokens to %s\n", tokens)

	return nil
}
