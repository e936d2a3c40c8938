// Package services implements the driving ports by orchestrating the
// driven adapters: acquisition via the caption downloader, cleaning via
// the vtt normaliser, and persistence via the transcript store.
package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/logger"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/normalisers/vtt"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/summary"
)

// Defaults carries the configured fallbacks applied when a request
// omits a value. The output directory is explicit configuration, never
// package state.
type Defaults struct {
	Language     string
	OutputDir    string
	PreviewChars int
	KeywordCount int
}

const (
	defaultLanguage     = "en"
	defaultPreviewChars = 300
	defaultKeywordCount = 10
)

// Ensure TranscriptService implements the driving port.
var _ driving.TranscriptService = (*TranscriptService)(nil)

// TranscriptService orchestrates the download-clean-persist pipeline.
type TranscriptService struct {
	downloader driven.CaptionDownloader
	store      driven.TranscriptStore
	history    driven.HistoryStore
	defaults   Defaults
}

// NewTranscriptService creates the service. history may be nil, in
// which case runs are not recorded and History returns an error.
func NewTranscriptService(
	downloader driven.CaptionDownloader,
	store driven.TranscriptStore,
	history driven.HistoryStore,
	defaults Defaults,
) *TranscriptService {
	if defaults.Language == "" {
		defaults.Language = defaultLanguage
	}
	if defaults.PreviewChars <= 0 {
		defaults.PreviewChars = defaultPreviewChars
	}
	if defaults.KeywordCount <= 0 {
		defaults.KeywordCount = defaultKeywordCount
	}

	return &TranscriptService{
		downloader: downloader,
		store:      store,
		history:    history,
		defaults:   defaults,
	}
}

// Process runs the full pipeline: fetch captions, clean, compute stats,
// optionally summarise, persist, and record the run.
func (s *TranscriptService) Process(ctx context.Context, req driving.ProcessRequest) (*driving.ProcessResult, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}

	fetched, err := s.fetch(ctx, req.URL, req.Language)
	if err != nil {
		return nil, err
	}
	defer fetched.Cleanup()

	lines, err := vtt.NormalizeFile(fetched.Caption.Path)
	if err != nil {
		return nil, domain.NewStageError(domain.StageCleaning, err)
	}

	text := vtt.Join(lines)
	stats := vtt.Stats(lines)
	logger.Debug("cleaned transcript: %d lines, %d words", stats.TotalLines, stats.TotalWords)

	path, err := s.store.Save(ctx, driven.SaveRequest{
		Dir:      s.outputDir(req.OutputDir),
		Filename: req.Filename,
		VideoID:  fetched.Caption.VideoID,
		Content:  text,
	})
	if err != nil {
		return nil, domain.NewStageError(domain.StagePersistence, err)
	}

	result := &driving.ProcessResult{
		Path:    path,
		Title:   fetched.Caption.Title,
		VideoID: fetched.Caption.VideoID,
		Stats:   stats,
		Preview: preview(text, s.defaults.PreviewChars),
	}
	if req.IncludeSummary {
		result.Keywords = summary.Keywords(text, s.defaults.KeywordCount)
	}

	s.record(ctx, req.URL, fetched.Caption.Title, path, stats)

	return result, nil
}

// Download fetches the raw caption track and copies it into the output
// directory without cleaning.
func (s *TranscriptService) Download(ctx context.Context, req driving.DownloadRequest) (*driving.DownloadResult, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}

	fetched, err := s.fetch(ctx, req.URL, req.Language)
	if err != nil {
		return nil, err
	}
	defer fetched.Cleanup()

	raw, err := os.ReadFile(fetched.Caption.Path)
	if err != nil {
		return nil, domain.NewStageError(domain.StageAcquisition, fmt.Errorf("reading caption file: %w", err))
	}

	filename := fetched.Caption.VideoID + "." + fetched.Caption.Language + ".vtt"
	path, err := s.store.Save(ctx, driven.SaveRequest{
		Dir:      s.outputDir(req.OutputDir),
		Filename: filename,
		VideoID:  fetched.Caption.VideoID,
		Content:  string(raw),
	})
	if err != nil {
		return nil, domain.NewStageError(domain.StagePersistence, err)
	}

	return &driving.DownloadResult{
		Path:    path,
		Title:   fetched.Caption.Title,
		VideoID: fetched.Caption.VideoID,
	}, nil
}

// Clean normalises a local caption file or inline raw text, optionally
// persisting the result.
func (s *TranscriptService) Clean(ctx context.Context, req driving.CleanRequest) (*driving.CleanResult, error) {
	var (
		lines []string
		err   error
	)

	switch {
	case req.Path != "":
		lines, err = vtt.NormalizeFile(req.Path)
		if err != nil {
			return nil, domain.NewStageError(domain.StageCleaning, err)
		}
	case req.RawText != "":
		lines = vtt.Normalize(req.RawText)
	default:
		return nil, fmt.Errorf("%w: a caption file path or raw text is required", domain.ErrInvalidInput)
	}

	result := &driving.CleanResult{
		Lines: lines,
		Text:  vtt.Join(lines),
		Stats: vtt.Stats(lines),
	}

	if req.Save {
		path, err := s.store.Save(ctx, driven.SaveRequest{
			Dir:      s.outputDir(req.OutputDir),
			Filename: req.Filename,
			Content:  result.Text,
		})
		if err != nil {
			return nil, domain.NewStageError(domain.StagePersistence, err)
		}
		result.Path = path
	}

	return result, nil
}

// History lists recent processing runs.
func (s *TranscriptService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, fmt.Errorf("%w: history store not configured", domain.ErrNotFound)
	}
	return s.history.List(ctx, limit)
}

// fetch runs the downloader with the configured language fallback and
// tags failures as acquisition errors.
func (s *TranscriptService) fetch(ctx context.Context, url, language string) (*driven.FetchResult, error) {
	if language == "" {
		language = s.defaults.Language
	}

	logger.Debug("fetching captions for %s (language %s)", url, language)
	fetched, err := s.downloader.Fetch(ctx, url, language)
	if err != nil {
		return nil, domain.NewStageError(domain.StageAcquisition, err)
	}
	return fetched, nil
}

// record writes a history entry. History failures never fail the run.
func (s *TranscriptService) record(ctx context.Context, url, title, path string, stats domain.TranscriptStats) {
	if s.history == nil {
		return
	}

	err := s.history.Record(ctx, domain.HistoryEntry{
		ID:        uuid.New().String(),
		VideoURL:  url,
		Title:     title,
		Path:      path,
		Lines:     stats.TotalLines,
		Words:     stats.TotalWords,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("recording history entry: %v", err)
	}
}

func (s *TranscriptService) outputDir(override string) string {
	if override != "" {
		return override
	}
	return s.defaults.OutputDir
}

// preview returns the first n runes of text, with an ellipsis when
// truncated.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
