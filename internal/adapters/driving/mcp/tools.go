package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

// ProcessInput is the input schema for the process_video tool.
type ProcessInput struct {
	URL            string `json:"url" jsonschema:"the video URL to download and process captions for"`
	Language       string `json:"language,omitempty" jsonschema:"subtitle language code (default en)"`
	OutputDir      string `json:"output_dir,omitempty" jsonschema:"directory to save the transcript in (default from config)"`
	Filename       string `json:"filename,omitempty" jsonschema:"transcript filename (default derived from the video id)"`
	IncludeSummary bool   `json:"include_summary,omitempty" jsonschema:"include a keyword-frequency summary"`
}

// ProcessOutput is the output schema for the process_video tool.
type ProcessOutput struct {
	Path     string                 `json:"path"`
	Title    string                 `json:"title,omitempty"`
	VideoID  string                 `json:"video_id,omitempty"`
	Stats    domain.TranscriptStats `json:"stats"`
	Preview  string                 `json:"preview,omitempty"`
	Keywords []domain.Keyword       `json:"keywords,omitempty"`
}

// DownloadInput is the input schema for the download_captions tool.
type DownloadInput struct {
	URL       string `json:"url" jsonschema:"the video URL to download the raw caption track for"`
	Language  string `json:"language,omitempty" jsonschema:"subtitle language code (default en)"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"directory to save the caption file in (default from config)"`
}

// DownloadOutput is the output schema for the download_captions tool.
type DownloadOutput struct {
	Path    string `json:"path"`
	Title   string `json:"title,omitempty"`
	VideoID string `json:"video_id,omitempty"`
}

// CleanInput is the input schema for the clean_captions tool.
type CleanInput struct {
	FilePath  string `json:"file_path,omitempty" jsonschema:"path to a local caption file to clean"`
	RawText   string `json:"raw_text,omitempty" jsonschema:"raw caption text to clean (alternative to file_path)"`
	Save      bool   `json:"save,omitempty" jsonschema:"persist the cleaned text to the output directory"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"directory to save the cleaned text in (default from config)"`
	Filename  string `json:"filename,omitempty" jsonschema:"filename for the saved text"`
}

// CleanOutput is the output schema for the clean_captions tool.
type CleanOutput struct {
	Text  string                 `json:"text"`
	Lines int                    `json:"lines"`
	Stats domain.TranscriptStats `json:"stats"`
	Path  string                 `json:"path,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_video",
		Description: "Download captions for a video, clean them into readable text, and save the transcript",
	}, s.handleProcess)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "download_captions",
		Description: "Download the raw caption track for a video without cleaning",
	}, s.handleDownload)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_captions",
		Description: "Clean a caption file or raw caption text into deduplicated readable text",
	}, s.handleClean)
}

// toolFailure reports a pipeline failure in-band so callers always see
// one consistent failure shape: the failing stage plus the original
// message, never a bare protocol error.
func toolFailure(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: err.Error()},
		},
	}
}

// handleProcess handles the process_video tool invocation.
func (s *Server) handleProcess(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessInput,
) (*mcp.CallToolResult, ProcessOutput, error) {
	result, err := s.ports.Transcript.Process(ctx, driving.ProcessRequest{
		URL:            input.URL,
		Language:       input.Language,
		OutputDir:      input.OutputDir,
		Filename:       input.Filename,
		IncludeSummary: input.IncludeSummary,
	})
	if err != nil {
		return toolFailure(err), ProcessOutput{}, nil
	}

	return nil, ProcessOutput{
		Path:     result.Path,
		Title:    result.Title,
		VideoID:  result.VideoID,
		Stats:    result.Stats,
		Preview:  result.Preview,
		Keywords: result.Keywords,
	}, nil
}

// handleDownload handles the download_captions tool invocation.
func (s *Server) handleDownload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DownloadInput,
) (*mcp.CallToolResult, DownloadOutput, error) {
	result, err := s.ports.Transcript.Download(ctx, driving.DownloadRequest{
		URL:       input.URL,
		Language:  input.Language,
		OutputDir: input.OutputDir,
	})
	if err != nil {
		return toolFailure(err), DownloadOutput{}, nil
	}

	return nil, DownloadOutput{
		Path:    result.Path,
		Title:   result.Title,
		VideoID: result.VideoID,
	}, nil
}

// handleClean handles the clean_captions tool invocation.
func (s *Server) handleClean(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CleanInput,
) (*mcp.CallToolResult, CleanOutput, error) {
	result, err := s.ports.Transcript.Clean(ctx, driving.CleanRequest{
		Path:      input.FilePath,
		RawText:   input.RawText,
		Save:      input.Save,
		OutputDir: input.OutputDir,
		Filename:  input.Filename,
	})
	if err != nil {
		return toolFailure(err), CleanOutput{}, nil
	}

	return nil, CleanOutput{
		Text:  result.Text,
		Lines: result.Stats.TotalLines,
		Stats: result.Stats,
		Path:  result.Path,
	}, nil
}
