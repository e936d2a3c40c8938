package driven

import "context"

// SaveRequest describes a transcript write.
type SaveRequest struct {
	// Dir is the target directory. Created if missing.
	Dir string

	// Filename is the desired file name. When empty the store derives a
	// timestamped name from VideoID.
	Filename string

	// VideoID seeds the default filename.
	VideoID string

	// Content is the full transcript text.
	Content string
}

// TranscriptStore persists cleaned transcripts.
type TranscriptStore interface {
	// Save writes the transcript and returns the final stored path.
	// Failures (permissions, unwritable directory) are
	// persistence-stage errors.
	Save(ctx context.Context, req SaveRequest) (string, error)
}
