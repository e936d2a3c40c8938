// Package driven defines the outbound port interfaces the core depends
// on: caption acquisition, transcript persistence, processing history,
// and configuration. Adapters under internal/adapters/driven implement
// these interfaces.
package driven
