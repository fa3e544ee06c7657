// Package logging assembles structured slog loggers used across the moyn CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so API calls automatically carry
// the running command and request correlation IDs. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs never go to stdout: command output owns that stream.
package logging
