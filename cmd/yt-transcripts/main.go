package main

import (
	"os"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
