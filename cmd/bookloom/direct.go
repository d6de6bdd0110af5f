package main

import (
	"github.com/spf13/cobra"
)

// runDirect runs one action without the menu. Per-file failures do not
// change the exit status; only setup errors do.
func runDirect(cmd *cobra.Command, ctx *commandContext, args []string) error {
	return runOnce(cmd, ctx, args, actionPipeline)
}

func runOnce(cmd *cobra.Command, ctx *commandContext, args []string, act action) error {
	s, err := ctx.newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.preflight(); err != nil {
		return err
	}
	book, err := s.resolveBook(cmd.Context(), args)
	if err != nil {
		return err
	}
	return s.perform(cmd.Context(), book, act)
}
