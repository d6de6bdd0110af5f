package main

import (
	"github.com/spf13/cobra"
)

func newStageCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newStageCommand(ctx, "preprocess [book_directory]", "Run the preprocessor over every raw chapter", actionPreprocess),
		newStageCommand(ctx, "synthesize [book_directory]", "Run the TTS tool over every clean file", actionSynthesize),
		newStageCommand(ctx, "pipeline [book_directory]", "Preprocess, then generate audio when anything was cleaned", actionPipeline),
	}
}

func newStageCommand(ctx *commandContext, use, short string, act action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, ctx, args, act)
		},
	}
}
