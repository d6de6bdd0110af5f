package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bookloom/internal/services"
)

// Book is a directory that holds a chapters subdirectory.
type Book struct {
	Path        string
	Name        string
	ChaptersDir string
}

// Title returns a human friendly label derived from the directory name, so
// TOTALNA_WOJNA becomes "Totalna Wojna".
func (b Book) Title() string {
	return DisplayName(b.Name)
}

// DisplayName converts a directory name into a title-cased label.
func DisplayName(name string) string {
	name = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.ToLower(name))
}

// ResolveBook validates that path is a directory containing the chapters
// subdirectory and returns the corresponding Book.
func ResolveBook(path string, naming Naming) (Book, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Book{}, services.Wrap(services.ErrValidation, "library", "resolve book", "book path is empty", nil)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Book{}, services.Wrap(services.ErrValidation, "library", "resolve book", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Book{}, services.Wrap(services.ErrNotFound, "library", "resolve book", fmt.Sprintf("book directory %s does not exist", abs), nil)
		}
		return Book{}, services.Wrap(services.ErrNotFound, "library", "resolve book", abs, err)
	}
	if !info.IsDir() {
		return Book{}, services.Wrap(services.ErrValidation, "library", "resolve book", fmt.Sprintf("%s is not a directory", abs), nil)
	}
	chapters := filepath.Join(abs, naming.ChaptersDir)
	if !isDir(chapters) {
		return Book{}, services.Wrap(services.ErrNotFound, "library", "resolve book", fmt.Sprintf("chapters directory %s not found", chapters), nil)
	}
	return Book{Path: abs, Name: filepath.Base(abs), ChaptersDir: chapters}, nil
}

// ListBooks returns the immediate subdirectories of root that contain a
// chapters subdirectory, sorted by path. A missing root or an empty result is
// an error.
func ListBooks(root string, naming Naming) ([]Book, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, services.Wrap(services.ErrConfiguration, "library", "list books", fmt.Sprintf("books directory %s not found", root), nil)
		}
		return nil, services.Wrap(services.ErrConfiguration, "library", "list books", root, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, "library", "list books", fmt.Sprintf("%s is not a directory", root), nil)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "library", "list books", root, err)
	}

	books := make([]Book, 0, len(entries))
	for _, entry := range entries {
		candidate := filepath.Join(root, entry.Name())
		if !isDir(candidate) {
			continue
		}
		chapters := filepath.Join(candidate, naming.ChaptersDir)
		if !isDir(chapters) {
			continue
		}
		books = append(books, Book{Path: candidate, Name: entry.Name(), ChaptersDir: chapters})
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Path < books[j].Path })

	if len(books) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "library", "list books", fmt.Sprintf("no books with a %s directory under %s", naming.ChaptersDir, root), nil)
	}
	return books, nil
}

// isDir follows symlinks so a linked book directory is still offered.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
