package stages

import (
	"context"
	"errors"
	"log/slog"

	"bookloom/internal/external"
	"bookloom/internal/library"
	"bookloom/internal/logging"
	"bookloom/internal/services"
)

const (
	noChaptersHint = "no chapter files found"
	noCleanHint    = "no clean files found; run preprocessing first"
)

// Runner executes the preprocessing and synthesis stages.
type Runner struct {
	invoker      external.Invoker
	preprocessor external.Tool
	tts          external.Tool
	naming       library.Naming
	logger       *slog.Logger
	observer     Observer
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver reports stage progress to o.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithLogger sets the logger used for stage and file events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithNaming overrides the chapter naming rules.
func WithNaming(naming library.Naming) Option {
	return func(r *Runner) {
		r.naming = naming
	}
}

// NewRunner constructs a Runner that invokes preprocessor and tts through
// invoker.
func NewRunner(invoker external.Invoker, preprocessor, tts external.Tool, opts ...Option) *Runner {
	r := &Runner{
		invoker:      invoker,
		preprocessor: preprocessor,
		tts:          tts,
		naming:       library.DefaultNaming(),
		observer:     nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "stages")
	return r
}

// Preprocess runs the preprocessor over every raw chapter of book. Clean
// files are written by the tool; their presence is not checked here.
func (r *Runner) Preprocess(ctx context.Context, book library.Book) (Result, error) {
	files, err := library.DiscoverChapters(book, r.naming)
	if err != nil {
		return Result{Stage: Preprocess}, err
	}
	return r.run(ctx, Preprocess, r.preprocessor, book, files, noChaptersHint)
}

// Synthesize runs the TTS tool over every clean file of book.
func (r *Runner) Synthesize(ctx context.Context, book library.Book) (Result, error) {
	files, err := library.DiscoverCleanFiles(book, r.naming)
	if err != nil {
		return Result{Stage: Synthesize}, err
	}
	return r.run(ctx, Synthesize, r.tts, book, files, noCleanHint)
}

// Run dispatches to the stage named by stage.
func (r *Runner) Run(ctx context.Context, stage Name, book library.Book) (Result, error) {
	switch stage {
	case Preprocess:
		return r.Preprocess(ctx, book)
	case Synthesize:
		return r.Synthesize(ctx, book)
	default:
		return Result{Stage: stage}, services.Wrap(services.ErrValidation, "stages", "run", "unknown stage "+string(stage), nil)
	}
}

func (r *Runner) run(ctx context.Context, stage Name, tool external.Tool, book library.Book, files []string, emptyHint string) (Result, error) {
	ctx = services.WithStage(services.WithBook(ctx, book.Path), string(stage))
	logger := logging.WithContext(ctx, r.logger)
	result := Result{Stage: stage, Total: len(files)}

	r.observer.StageStarted(stage, book, files)
	if len(files) == 0 {
		logging.WarnWithContext(logger, "stage has nothing to process", "stage_empty",
			logging.String(logging.FieldImpact, "no files processed"),
			logging.String("hint", emptyHint),
		)
		r.observer.NothingToProcess(stage, book, emptyHint)
		r.observer.StageFinished(result)
		return result, nil
	}

	logger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("tool", tool.Label()),
		logging.Int("total", result.Total),
	)

	for i, file := range files {
		index := i + 1
		r.observer.FileStarted(stage, index, result.Total, file)
		res, err := r.invoker.Invoke(ctx, tool, file)
		if err != nil && ctxDone(ctx, err) {
			result.Failed++
			r.observer.FileFinished(stage, index, result.Total, file, res, err)
			logger.Warn("stage interrupted",
				logging.String(logging.FieldEventType, "stage_interrupted"),
				logging.String(logging.FieldFile, file),
				logging.Int("processed", result.Processed),
				logging.Error(err),
			)
			r.observer.StageFinished(result)
			return result, err
		}

		if err == nil && res.Succeeded() {
			result.Processed++
			logger.Debug("file processed",
				logging.String(logging.FieldEventType, "file_processed"),
				logging.String(logging.FieldFile, file),
				logging.Duration("duration", res.Duration),
			)
		} else {
			result.Failed++
			attrs := []logging.Attr{
				logging.String(logging.FieldFile, file),
				logging.Int(logging.FieldExitCode, res.ExitCode),
				logging.String(logging.FieldImpact, "file skipped; stage continues"),
			}
			if err != nil {
				attrs = append(attrs, logging.Error(err))
			}
			logging.WarnWithContext(logger, "file failed", "file_failed", attrs...)
		}
		r.observer.FileFinished(stage, index, result.Total, file, res, err)
	}

	logger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Int("processed", result.Processed),
		logging.Int("failed", result.Failed),
		logging.Int("total", result.Total),
	)
	r.observer.StageFinished(result)
	return result, nil
}

func ctxDone(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
