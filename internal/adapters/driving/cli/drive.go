package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

var (
	driveToken string
	driveMime  string
)

var driveContentCmd = &cobra.Command{
	Use:   "drive-content [fileId]",
	Short: "Extract text from a Google Drive file",
	Long: `Fetches a Drive file with the given OAuth access token and prints the
extraction result as JSON. Docs and Slides export as text, Sheets as CSV
(with a row count), PDFs go through pdftotext.`,
	Args: cobra.ExactArgs(1),
	RunE: runDriveContent,
}

func init() {
	driveContentCmd.Flags().StringVar(&driveToken, "token", "", "OAuth access token (required)")
	driveContentCmd.Flags().StringVar(&driveMime, "mime", "", "file MIME type as reported by Drive (required)")
	rootCmd.AddCommand(driveContentCmd)
}

func runDriveContent(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	if driveToken == "" {
		return errors.New("--token is required")
	}

	res := contentService.GetDriveContent(cmd.Context(), domain.ContentRequest{
		FileID:      args[0],
		AccessToken: driveToken,
		MimeType:    driveMime,
	})
	return outputJSON(cmd, res)
}
