package cli

import (
	"github.com/spf13/cobra"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/watcher"
)

var watchOutputDir string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and clean caption files dropped into it",
	Long: `Watches the given directory for new .vtt caption files and cleans
each one into the output directory automatically. Runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	outputDir := watchOutputDir
	if outputDir == "" {
		outputDir = appConfig.OutputDir
	}

	w := watcher.New(transcriptService, outputDir)
	cmd.Printf("Watching %s (transcripts go to %s). Ctrl-C to stop.\n", args[0], outputDir)
	return w.Run(cmd.Context(), args[0])
}
