// Package watcher implements drop-directory watch mode: caption files
// appearing in a watched directory are cleaned and persisted
// automatically. Useful when another tool (or a browser extension)
// deposits .vtt files faster than anyone wants to run clean by hand.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/logger"
)

// defaultDebounce coalesces the burst of write events a single file
// download produces.
const defaultDebounce = 500 * time.Millisecond

// Watcher cleans caption files dropped into a directory.
type Watcher struct {
	service   driving.TranscriptService
	outputDir string
	debounce  time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher that persists cleaned transcripts to outputDir.
func New(service driving.TranscriptService, outputDir string) *Watcher {
	return &Watcher{
		service:   service,
		outputDir: outputDir,
		debounce:  defaultDebounce,
		timers:    make(map[string]*time.Timer),
	}
}

// Run watches dir until the context is cancelled. Each .vtt file
// created or written in dir is cleaned and saved after a short
// debounce. Processing failures are logged, never fatal.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logger.Info("watching %s for caption files", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".vtt") {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// schedule (re)arms the debounce timer for path.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.process(ctx, path)
	})
}

// process cleans and saves one caption file.
func (w *Watcher) process(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result, err := w.service.Clean(ctx, driving.CleanRequest{
		Path:      path,
		Save:      true,
		OutputDir: w.outputDir,
		Filename:  base + ".txt",
	})
	if err != nil {
		logger.Warn("cleaning %s: %v", path, err)
		return
	}

	logger.Info("cleaned %s -> %s (%d lines)", path, result.Path, result.Stats.TotalLines)
}
