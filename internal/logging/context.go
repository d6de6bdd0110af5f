package logging

import (
	"context"
	"log/slog"

	"bookloom/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized key for the per-action correlation identifier.
	FieldRunID = "run_id"
	// FieldStage is the standardized key for stage names.
	FieldStage = "stage"
	// FieldBook is the standardized key for the book directory.
	FieldBook = "book"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldImpact describes the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldFile is the file handed to an external tool.
	FieldFile = "file"
	// FieldExitCode is the external tool exit status.
	FieldExitCode = "exit_code"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	if book, ok := services.BookFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldBook, book))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
