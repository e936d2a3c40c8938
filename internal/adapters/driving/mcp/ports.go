package mcp

import (
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Transcript provides the download-clean-persist operations.
	Transcript driving.TranscriptService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Transcript == nil {
		return ErrMissingTranscriptService
	}
	return nil
}
