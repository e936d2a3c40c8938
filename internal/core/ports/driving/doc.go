// Package driving defines the inbound port interfaces through which
// front ends (CLI commands, MCP tools) drive the core. Front ends
// depend on these interfaces, never on concrete services.
package driving
