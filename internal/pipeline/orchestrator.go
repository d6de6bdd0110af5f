package pipeline

import (
	"context"
	"log/slog"

	"bookloom/internal/library"
	"bookloom/internal/logging"
	"bookloom/internal/services"
	"bookloom/internal/stages"
)

// State is a step of the pipeline state machine.
type State string

const (
	StatePreprocess State = "PREPROCESS"
	StateSynthesize State = "SYNTHESIZE"
	StateDone       State = "DONE"
)

// Verdict summarizes a finished pipeline run.
type Verdict string

const (
	// VerdictStopped means preprocessing produced nothing, so synthesis never ran.
	VerdictStopped Verdict = "stopped"
	// VerdictSuccess means every clean file was synthesized.
	VerdictSuccess Verdict = "success"
	// VerdictPartial means synthesis ran but at least one file failed.
	VerdictPartial Verdict = "partial"
)

// StageRunner is the subset of stages.Runner the orchestrator drives.
type StageRunner interface {
	Preprocess(ctx context.Context, book library.Book) (stages.Result, error)
	Synthesize(ctx context.Context, book library.Book) (stages.Result, error)
}

// Outcome is the final pipeline report.
type Outcome struct {
	Book       library.Book
	Visited    []State
	Preprocess stages.Result
	Synthesis  *stages.Result
	Verdict    Verdict
}

// Reporter receives the final report. The console implements it.
type Reporter interface {
	PipelineStopped(out Outcome)
	PipelineFinished(out Outcome)
}

// Orchestrator drives the stage runner through the pipeline states.
type Orchestrator struct {
	runner   StageRunner
	reporter Reporter
	logger   *slog.Logger
}

// NewOrchestrator wires an orchestrator. reporter and logger may be nil.
func NewOrchestrator(runner StageRunner, reporter Reporter, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		runner:   runner,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run executes the full pipeline for book. The returned error is non-nil only
// when a stage could not run at all (unreadable chapters directory, operator
// interrupt); per-file failures are reflected in the Outcome.
func (o *Orchestrator) Run(ctx context.Context, book library.Book) (Outcome, error) {
	ctx = services.WithBook(ctx, book.Path)
	logger := logging.WithContext(ctx, o.logger)
	out := Outcome{Book: book}
	state := StatePreprocess

	for {
		out.Visited = append(out.Visited, state)
		switch state {
		case StatePreprocess:
			res, err := o.runner.Preprocess(ctx, book)
			out.Preprocess = res
			if err != nil {
				return out, err
			}
			if res.Processed > 0 {
				state = StateSynthesize
				continue
			}
			out.Verdict = VerdictStopped
			state = StateDone

		case StateSynthesize:
			res, err := o.runner.Synthesize(ctx, book)
			out.Synthesis = &res
			if err != nil {
				return out, err
			}
			out.Verdict = verdictFor(res)
			state = StateDone

		case StateDone:
			o.finish(logger, out)
			return out, nil
		}
	}
}

func (o *Orchestrator) finish(logger *slog.Logger, out Outcome) {
	if out.Verdict == VerdictStopped {
		logging.WarnWithContext(logger, "pipeline stopped", "pipeline_stopped",
			logging.String(logging.FieldImpact, "audio generation skipped"),
			logging.Int("preprocess_total", out.Preprocess.Total),
			logging.Int("preprocess_failed", out.Preprocess.Failed),
		)
		if o.reporter != nil {
			o.reporter.PipelineStopped(out)
		}
		return
	}

	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "pipeline_complete"),
		logging.String("verdict", string(out.Verdict)),
		logging.Int("preprocess_processed", out.Preprocess.Processed),
		logging.Int("preprocess_total", out.Preprocess.Total),
	}
	if out.Synthesis != nil {
		attrs = append(attrs,
			logging.Int("synthesis_processed", out.Synthesis.Processed),
			logging.Int("synthesis_total", out.Synthesis.Total),
		)
	}
	logger.Info("pipeline finished", logging.Args(attrs...)...)
	if o.reporter != nil {
		o.reporter.PipelineFinished(out)
	}
}

func verdictFor(res stages.Result) Verdict {
	if res.Processed == res.Total {
		return VerdictSuccess
	}
	return VerdictPartial
}
