package cli

import (
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently processed transcripts",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	entries, err := transcriptService.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No transcripts processed yet.")
		return nil
	}

	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.VideoURL
		}
		cmd.Printf("%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), title)
		cmd.Printf("    %s (%d lines, %d words)\n", e.Path, e.Lines, e.Words)
	}
	return nil
}
