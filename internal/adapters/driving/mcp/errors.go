// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the transcript toolkit. It exposes caption download and cleaning
// as tools AI assistants can invoke, and processing history as a
// resource.
package mcp

import "errors"

// ErrMissingTranscriptService is returned when the transcript service is not provided.
var ErrMissingTranscriptService = errors.New("mcp: transcript service is required")
