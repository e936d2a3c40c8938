package cli

import (
	"github.com/spf13/cobra"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

var (
	downloadLanguage  string
	downloadOutputDir string
)

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download the raw caption track for a video",
	Long: `Downloads the caption track for the given video URL and saves the raw
WebVTT file to the output directory without cleaning it.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadLanguage, "language", "l", "", "subtitle language code (default from config)")
	downloadCmd.Flags().StringVarP(&downloadOutputDir, "output-dir", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	result, err := transcriptService.Download(cmd.Context(), driving.DownloadRequest{
		URL:       args[0],
		Language:  downloadLanguage,
		OutputDir: downloadOutputDir,
	})
	if err != nil {
		return err
	}

	if result.Title != "" {
		cmd.Printf("Title: %s\n", result.Title)
	}
	cmd.Printf("Saved: %s\n", result.Path)
	return nil
}
