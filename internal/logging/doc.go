// Package logging assembles structured slog loggers and formatting helpers used
// across wallview.
//
// It owns the console and JSON handlers, routes terminal output to stderr so
// command output on stdout stays machine-readable, and optionally mirrors every
// record to a JSON log file. A no-op logger is provided for library defaults
// and tests.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit the same field names (component, event_type, error_hint, impact).
package logging
