package cli

import (
	"github.com/spf13/cobra"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

var (
	cleanSave      bool
	cleanOutputDir string
	cleanFilename  string
	cleanJSON      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean a local caption file into readable text",
	Long: `Cleans an already-downloaded WebVTT caption file: strips headers,
timing cues, and inline markup, decodes entities, and drops duplicate
rolling-caption lines. Prints the cleaned text; use --save to persist
it instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanSave, "save", false, "save the cleaned text to the output directory")
	cleanCmd.Flags().StringVarP(&cleanOutputDir, "output-dir", "o", "", "output directory for --save (default from config)")
	cleanCmd.Flags().StringVar(&cleanFilename, "filename", "", "filename for --save")
	cleanCmd.Flags().BoolVar(&cleanJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	result, err := transcriptService.Clean(cmd.Context(), driving.CleanRequest{
		Path:      args[0],
		Save:      cleanSave,
		OutputDir: cleanOutputDir,
		Filename:  cleanFilename,
	})
	if err != nil {
		return err
	}

	if cleanJSON {
		return printJSON(cmd, result)
	}

	if result.Path != "" {
		cmd.Printf("Saved: %s\n", result.Path)
		cmd.Printf("Lines: %d  Words: %d\n", result.Stats.TotalLines, result.Stats.TotalWords)
		return nil
	}

	cmd.Println(result.Text)
	return nil
}
