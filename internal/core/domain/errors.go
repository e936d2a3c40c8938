package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCaptions indicates the video has no caption track in the
	// requested language. This is the most common acquisition failure
	// and must stay distinguishable from transient I/O problems.
	ErrNoCaptions = errors.New("no captions available")

	// ErrDownloaderUnavailable indicates the yt-dlp binary could not
	// be located. Acquisition is disabled without it.
	ErrDownloaderUnavailable = errors.New("yt-dlp not found")
)

// Stage identifies which phase of the pipeline an error came from.
// Callers use it to report failures precisely: a missing caption track
// and a permissions problem on the output directory need different fixes.
type Stage string

const (
	StageAcquisition Stage = "acquisition"
	StageCleaning    Stage = "cleaning"
	StagePersistence Stage = "persistence"
)

// StageError wraps a lower-level failure with the pipeline stage it
// occurred in. The original cause is preserved for errors.Is/As.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with the given stage. Returns nil if err is nil.
func NewStageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the stage recorded on err, or an empty Stage when err
// carries no stage information.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
