// Package domain contains the core business types for transcript
// processing: caption files, cleaned transcripts, statistics, history
// entries, and the error taxonomy shared by every adapter.
//
// Types here have no dependencies on adapters or external services.
package domain
