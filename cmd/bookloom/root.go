package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var direct bool
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:   "bookloom [book_directory]",
		Short: "Turn book chapters into audio with an external preprocessor and TTS tool",
		Long: "Without arguments bookloom lists the books under the configured books directory\n" +
			"and asks which one to work on. Pass a book directory to skip the question.\n" +
			"With --direct the full pipeline runs once and bookloom exits; otherwise an\n" +
			"interactive menu offers preprocessing, audio generation, or both.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if direct {
				return runDirect(cmd, ctx, args)
			}
			return runInteractive(cmd, ctx, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log output to stderr")
	rootCmd.Flags().BoolVarP(&direct, "direct", "d", false, "Run the full pipeline once without the menu")

	rootCmd.AddCommand(newBooksCommand(ctx))
	for _, cmd := range newStageCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
