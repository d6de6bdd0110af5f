package main

import (
	"github.com/spf13/cobra"

	"bookloom/internal/console"
	"bookloom/internal/library"
)

func newBooksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List books that have a chapters directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			books, err := library.ListBooks(s.cfg.Paths.BooksDir, s.naming)
			if err != nil {
				return err
			}
			s.console.Books(s.bookEntries(books))
			s.console.Status("Books directory", console.KindInfo, s.cfg.Paths.BooksDir)
			return nil
		},
	}
}
