package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bookloom/internal/console"
	"bookloom/internal/library"
	"bookloom/internal/services"
)

// resolveBook returns the book named by args, or asks the operator to pick
// one from the books directory.
func (s *session) resolveBook(ctx context.Context, args []string) (library.Book, error) {
	if len(args) > 0 {
		return library.ResolveBook(args[0], s.naming)
	}
	return s.chooseBook(ctx)
}

func (s *session) chooseBook(ctx context.Context) (library.Book, error) {
	books, err := library.ListBooks(s.cfg.Paths.BooksDir, s.naming)
	if err != nil {
		return library.Book{}, err
	}

	s.console.Section("Available books")
	s.console.Books(s.bookEntries(books))

	for {
		answer, err := s.prompt.ask(ctx, fmt.Sprintf("Select a book [1-%d]: ", len(books)))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return library.Book{}, services.Wrap(services.ErrValidation, "cli", "select book", "input closed before a book was selected", nil)
			}
			return library.Book{}, err
		}
		index, err := library.ValidateSelection(answer, len(books))
		if err != nil {
			s.console.Status("Selection", console.KindWarn, err.Error())
			continue
		}
		return books[index], nil
	}
}

// bookEntries counts raw and clean chapters for the selection table. A book
// whose chapters directory cannot be read is listed with zero counts.
func (s *session) bookEntries(books []library.Book) []console.BookEntry {
	entries := make([]console.BookEntry, 0, len(books))
	for _, book := range books {
		raw, _ := library.DiscoverChapters(book, s.naming)
		clean, _ := library.DiscoverCleanFiles(book, s.naming)
		entries = append(entries, console.BookEntry{Book: book, Chapters: len(raw), Clean: len(clean)})
	}
	return entries
}
