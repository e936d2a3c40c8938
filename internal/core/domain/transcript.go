package domain

import "time"

// CaptionFile describes a caption track produced by the acquisition
// layer, along with the video metadata reported by the downloader.
type CaptionFile struct {
	// Path is the location of the raw caption file on disk.
	Path string

	// VideoID is the platform identifier of the video.
	VideoID string

	// Title is the video title, if the downloader reported one.
	Title string

	// Channel is the uploading channel or account name.
	Channel string

	// Language is the subtitle language code the track was fetched for.
	Language string

	// Duration is the video length in seconds.
	Duration float64
}

// TranscriptStats summarises a cleaned transcript.
type TranscriptStats struct {
	TotalLines          int     `json:"total_lines"`
	TotalWords          int     `json:"total_words"`
	TotalCharacters     int     `json:"total_characters"`
	AverageWordsPerLine float64 `json:"average_words_per_line"`
}

// Keyword is a single entry in a frequency summary.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// HistoryEntry records one successful end-to-end processing run.
type HistoryEntry struct {
	ID        string    `json:"id"`
	VideoURL  string    `json:"video_url"`
	Title     string    `json:"title"`
	Path      string    `json:"path"`
	Lines     int       `json:"lines"`
	Words     int       `json:"words"`
	CreatedAt time.Time `json:"created_at"`
}
