// Package logging assembles structured slog loggers and formatting helpers used
// across bookloom.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so stage code automatically tags log lines with
// run IDs, stage names, and book paths. A no-op logger is provided for tests.
package logging
