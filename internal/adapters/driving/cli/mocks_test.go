package cli

import (
	"context"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

// mockTranscriptService is a mock implementation of driving.TranscriptService.
type mockTranscriptService struct {
	processResult  *driving.ProcessResult
	downloadResult *driving.DownloadResult
	cleanResult    *driving.CleanResult
	historyEntries []domain.HistoryEntry
	err            error

	gotProcess driving.ProcessRequest
	gotClean   driving.CleanRequest
}

func (m *mockTranscriptService) Process(_ context.Context, req driving.ProcessRequest) (*driving.ProcessResult, error) {
	m.gotProcess = req
	return m.processResult, m.err
}

func (m *mockTranscriptService) Download(_ context.Context, _ driving.DownloadRequest) (*driving.DownloadResult, error) {
	return m.downloadResult, m.err
}

func (m *mockTranscriptService) Clean(_ context.Context, req driving.CleanRequest) (*driving.CleanResult, error) {
	m.gotClean = req
	return m.cleanResult, m.err
}

func (m *mockTranscriptService) History(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.historyEntries, m.err
}

// withMockService installs svc as the wired service for the duration of
// a test and returns a restore func.
func withMockService(svc driving.TranscriptService) func() {
	old := transcriptService
	transcriptService = svc
	return func() { transcriptService = old }
}
