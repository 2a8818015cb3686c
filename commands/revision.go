package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/drive/v3"

	"github.com/sheetbridge/sheetbridge/bridge"
)

var revisionCmd = &cobra.Command{
	Use:   "revision",
	Short: "Displays the latest Drive revision of a spreadsheet",
	Long:  "Displays the ID and modification time of the most recent Google Drive revision of a spreadsheet, for change detection by external schedulers",
	RunE:  showRevision,
}

type revision struct {
	id       string
	modified time.Time
}

func init() {
	rootCmd.AddCommand(revisionCmd)
}

func showRevision(cmd *cobra.Command, args []string) error {
	url, err := spreadsheet()
	if err != nil {
		return err
	}

	id, err := bridge.SpreadsheetID(url)
	if err != nil {
		return err
	}

	credentials, err := credentials()
	if err != nil {
		return err
	}

	opts, err := authorize(cmd.Context(), credentials, bridge.DRIVE_READONLY)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	gdrive, err := drive.NewService(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	latest, err := getRevision(cmd.Context(), gdrive, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", latest.id, latest.modified.Format(time.RFC3339))

	return nil
}

// getRevision pages through the file's revisions and returns the most
// recently modified one.
func getRevision(ctx context.Context, gdrive *drive.Service, fileID string) (*revision, error) {
	page := ""
	latest := revision{}

	for {
		call := gdrive.Revisions.List(fileID).Fields("nextPageToken,revisions(id,modifiedTime)").Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, r := range revisions.Revisions {
			datetime, err := time.Parse(time.RFC3339, r.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.modified.Before(datetime) {
				latest.id = r.Id
				latest.modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileID)
	}

	return &latest, nil
}
