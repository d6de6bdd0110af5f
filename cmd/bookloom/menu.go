package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bookloom/internal/console"
	"bookloom/internal/library"
)

type menuItem struct {
	label string
	act   action
}

var menuItems = []menuItem{
	{label: "Preprocess chapters", act: actionPreprocess},
	{label: "Generate audio from clean files", act: actionSynthesize},
	{label: "Full pipeline (preprocess, then generate audio)", act: actionPipeline},
	{label: "Exit"},
}

func runInteractive(cmd *cobra.Command, ctx *commandContext, args []string) error {
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
	return s.menu(cmd.Context(), book)
}

// menu loops until the operator exits or input closes. Action errors are
// reported and the loop continues; only cancellation ends it with an error.
func (s *session) menu(ctx context.Context, book library.Book) error {
	for {
		s.printMenu(book)
		answer, err := s.prompt.ask(ctx, fmt.Sprintf("Choose an option [1-%d]: ", len(menuItems)))
		if err != nil {
			return endOfInput(err)
		}
		index, err := library.ValidateSelection(answer, len(menuItems))
		if err != nil {
			s.console.Status("Menu", console.KindWarn, err.Error())
			continue
		}
		item := menuItems[index]
		if item.act == "" {
			s.console.Println("Goodbye.")
			return nil
		}

		if err := s.perform(ctx, book, item.act); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.console.Status(item.label, console.KindFail, err.Error())
		}

		if _, err := s.prompt.ask(ctx, "\nPress Enter to continue..."); err != nil {
			return endOfInput(err)
		}
	}
}

func (s *session) printMenu(book library.Book) {
	s.console.Section("Bookloom: " + book.Title())
	s.console.Status("Book", console.KindInfo, book.Path)
	for i, item := range menuItems {
		s.console.Println(fmt.Sprintf("  %d) %s", i+1, item.label))
	}
}

// endOfInput treats closed input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
