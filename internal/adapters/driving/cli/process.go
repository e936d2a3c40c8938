package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

var (
	processLanguage  string
	processOutputDir string
	processFilename  string
	processSummary   bool
	processJSON      bool
)

var processCmd = &cobra.Command{
	Use:   "process [url]",
	Short: "Download, clean, and save the transcript for a video",
	Long: `Downloads the caption track for the given video URL, cleans it into
deduplicated readable text, and saves the transcript to the output
directory. Reports statistics and, with --summary, the most frequent
keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processLanguage, "language", "l", "", "subtitle language code (default from config)")
	processCmd.Flags().StringVarP(&processOutputDir, "output-dir", "o", "", "output directory (default from config)")
	processCmd.Flags().StringVar(&processFilename, "filename", "", "transcript filename (default derived from video id)")
	processCmd.Flags().BoolVar(&processSummary, "summary", false, "include a keyword-frequency summary")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	result, err := transcriptService.Process(cmd.Context(), driving.ProcessRequest{
		URL:            args[0],
		Language:       processLanguage,
		OutputDir:      processOutputDir,
		Filename:       processFilename,
		IncludeSummary: processSummary,
	})
	if err != nil {
		return err
	}

	if processJSON {
		return printJSON(cmd, result)
	}

	if result.Title != "" {
		cmd.Printf("Title:   %s\n", result.Title)
	}
	cmd.Printf("Saved:   %s\n", result.Path)
	cmd.Printf("Lines:   %d  Words: %d  Characters: %d  Avg words/line: %.2f\n",
		result.Stats.TotalLines, result.Stats.TotalWords,
		result.Stats.TotalCharacters, result.Stats.AverageWordsPerLine)

	if len(result.Keywords) > 0 {
		cmd.Println("Keywords:")
		for _, kw := range result.Keywords {
			cmd.Printf("  %-20s %d\n", kw.Word, kw.Count)
		}
	}

	if result.Preview != "" {
		cmd.Println()
		cmd.Println(result.Preview)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
