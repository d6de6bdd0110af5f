package main

import (
	"github.com/spf13/cobra"

	"bookloom/internal/verify"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [book_directory]",
		Short: "Compare raw chapters with their cleaned versions",
		Long: "check pairs every raw chapter with its cleaned file and reports how much\n" +
			"text survived preprocessing. Chapters that kept less than 80% of their\n" +
			"characters are flagged for inspection.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			book, err := s.resolveBook(cmd.Context(), args)
			if err != nil {
				return err
			}
			report, err := verify.Compare(book, s.naming)
			if err != nil {
				return err
			}
			s.console.Verification(report)
			return nil
		},
	}
}
