package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bookloom/internal/booklock"
	"bookloom/internal/config"
	"bookloom/internal/console"
	"bookloom/internal/external"
	"bookloom/internal/library"
	"bookloom/internal/logging"
	"bookloom/internal/pipeline"
	"bookloom/internal/preflight"
	"bookloom/internal/services"
	"bookloom/internal/stages"
)

type action string

const (
	actionPreprocess action = "preprocess"
	actionSynthesize action = "synthesize"
	actionPipeline   action = "pipeline"
)

// session bundles everything one CLI invocation needs to run actions
// against a book.
type session struct {
	cfg     *config.Config
	naming  library.Naming
	logger  *slog.Logger
	console *console.Console
	prompt  *prompter
	runner  *stages.Runner
	orch    *pipeline.Orchestrator
}

func (c *commandContext) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	out := console.New(cmd.OutOrStdout())
	naming := library.NamingFromConfig(cfg)
	invoker := external.NewCommandInvoker(cmd.OutOrStdout(), cmd.ErrOrStderr())
	resultsEnv := "BOOKLOOM_RESULTS_DIR=" + cfg.Paths.ResultsDir
	preprocessor := external.ToolFromConfig("preprocessor", cfg.Preprocessor).WithEnv(resultsEnv)
	tts := external.ToolFromConfig("tts", cfg.TTS).WithEnv(resultsEnv, "OUTPUT_DIR="+cfg.Paths.ResultsDir)

	runner := stages.NewRunner(invoker, preprocessor, tts,
		stages.WithNaming(naming),
		stages.WithLogger(logger),
		stages.WithObserver(out),
	)
	return &session{
		cfg:     cfg,
		naming:  naming,
		logger:  logging.NewComponentLogger(logger, "cli"),
		console: out,
		prompt:  newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		runner:  runner,
		orch:    pipeline.NewOrchestrator(runner, out, logger),
	}, nil
}

// preflight verifies the tools and directories every stage relies on.
func (s *session) preflight() error {
	results := preflight.RunAll(s.cfg)
	for _, r := range preflight.Failed(results) {
		s.console.Status(r.Name, console.KindFail, r.Detail)
		logging.WarnWithContext(s.logger, "preflight check failed", "preflight_failed",
			logging.String("check", r.Name),
			logging.String("detail", r.Detail),
			logging.String(logging.FieldImpact, "no stage can run"),
		)
	}
	return preflight.Err(results)
}

// perform runs one action under a fresh run ID, holding the book lock when
// configured. Per-file failures are reported by the console and never
// returned.
func (s *session) perform(ctx context.Context, book library.Book, act action) error {
	ctx = services.WithBook(services.WithRunID(ctx, uuid.NewString()), book.Path)
	logger := logging.WithContext(ctx, s.logger)

	if s.cfg.Pipeline.LockBook {
		lock, err := booklock.Acquire(book.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release book lock",
					logging.String(logging.FieldEventType, "lock_release_failed"),
					logging.Error(err),
				)
			}
		}()
	}

	logger.Info("action started",
		logging.String(logging.FieldEventType, "action_start"),
		logging.String("action", string(act)),
	)

	var err error
	switch act {
	case actionPreprocess:
		_, err = s.runner.Preprocess(ctx, book)
	case actionSynthesize:
		_, err = s.runner.Synthesize(ctx, book)
	case actionPipeline:
		_, err = s.orch.Run(ctx, book)
	default:
		err = services.Wrap(services.ErrValidation, "cli", "perform", fmt.Sprintf("unknown action %q", act), nil)
	}
	if err != nil {
		logger.Error("action failed",
			logging.String(logging.FieldEventType, "action_failed"),
			logging.String("action", string(act)),
			logging.Error(err),
		)
		return err
	}

	logger.Info("action finished",
		logging.String(logging.FieldEventType, "action_complete"),
		logging.String("action", string(act)),
	)
	return nil
}
