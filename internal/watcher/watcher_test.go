package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
)

// recordingService captures Clean requests on a channel.
type recordingService struct {
	cleaned chan driving.CleanRequest
}

func (r *recordingService) Process(_ context.Context, _ driving.ProcessRequest) (*driving.ProcessResult, error) {
	panic("not used")
}

func (r *recordingService) Download(_ context.Context, _ driving.DownloadRequest) (*driving.DownloadResult, error) {
	panic("not used")
}

func (r *recordingService) Clean(_ context.Context, req driving.CleanRequest) (*driving.CleanResult, error) {
	r.cleaned <- req
	return &driving.CleanResult{Path: "/out/cleaned.txt"}, nil
}

func (r *recordingService) History(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return nil, nil
}

func TestWatcher_ProcessesDroppedCaptionFiles(t *testing.T) {
	dir := t.TempDir()
	svc := &recordingService{cleaned: make(chan driving.CleanRequest, 4)}

	w := New(svc, "/out")
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, dir) }()

	// Give the watcher a moment to register.
	time.Sleep(50 * time.Millisecond)

	vttPath := filepath.Join(dir, "talk.vtt")
	require.NoError(t, os.WriteFile(vttPath, []byte("WEBVTT\n\nhello\n"), 0o644))

	// Non-caption files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))

	select {
	case req := <-svc.cleaned:
		assert.Equal(t, vttPath, req.Path)
		assert.True(t, req.Save)
		assert.Equal(t, "/out", req.OutputDir)
		assert.Equal(t, "talk.txt", req.Filename)
	case <-time.After(5 * time.Second):
		t.Fatal("caption file was not processed")
	}

	// Only the .vtt file triggered processing.
	select {
	case req := <-svc.cleaned:
		t.Fatalf("unexpected extra processing of %s", req.Path)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancellation")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	svc := &recordingService{cleaned: make(chan driving.CleanRequest, 1)}
	w := New(svc, "/out")

	err := w.Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
