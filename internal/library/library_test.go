package library_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"bookloom/internal/library"
	"bookloom/internal/services"
	"bookloom/internal/testsupport"
)

func TestListBooksOffersOnlyDirectoriesWithChapters(t *testing.T) {
	root := t.TempDir()
	testsupport.MakeBook(t, root, "BETA_BOOK")
	testsupport.MakeBook(t, root, "ALPHA_BOOK")
	if err := os.MkdirAll(filepath.Join(root, "NO_CHAPTERS", "drafts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testsupport.WriteText(t, filepath.Join(root, "notes.txt"), "not a book")
	testsupport.WriteText(t, filepath.Join(root, "FILE_CHAPTERS", "chapters"), "chapters is a file here")

	books, err := library.ListBooks(root, library.DefaultNaming())
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d: %+v", len(books), books)
	}
	if books[0].Name != "ALPHA_BOOK" || books[1].Name != "BETA_BOOK" {
		t.Fatalf("expected lexicographic order, got %q, %q", books[0].Name, books[1].Name)
	}
	if books[0].ChaptersDir != filepath.Join(root, "ALPHA_BOOK", "chapters") {
		t.Fatalf("unexpected chapters dir %q", books[0].ChaptersDir)
	}
}

func TestListBooksErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "BOOKS")
	if _, err := library.ListBooks(missing, library.DefaultNaming()); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for missing root, got %v", err)
	}

	empty := t.TempDir()
	if err := os.Mkdir(filepath.Join(empty, "loose"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := library.ListBooks(empty, library.DefaultNaming()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for root without books, got %v", err)
	}
}

func TestResolveBook(t *testing.T) {
	root := t.TempDir()
	bookDir := testsupport.MakeBook(t, root, "GAMMA")

	book, err := library.ResolveBook(bookDir, library.DefaultNaming())
	if err != nil {
		t.Fatalf("ResolveBook: %v", err)
	}
	if book.Path != bookDir || book.Name != "GAMMA" {
		t.Fatalf("unexpected book %+v", book)
	}

	if _, err := library.ResolveBook(filepath.Join(root, "missing"), library.DefaultNaming()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for missing book, got %v", err)
	}

	bare := filepath.Join(root, "BARE")
	if err := os.Mkdir(bare, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := library.ResolveBook(bare, library.DefaultNaming()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for book without chapters, got %v", err)
	}

	file := filepath.Join(root, "plain.txt")
	testsupport.WriteText(t, file, "x")
	if _, err := library.ResolveBook(file, library.DefaultNaming()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for file path, got %v", err)
	}

	if _, err := library.ResolveBook("  ", library.DefaultNaming()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty path, got %v", err)
	}
}

func TestClassifyIsExclusiveOverText(t *testing.T) {
	naming := library.DefaultNaming()
	cases := map[string]library.Kind{
		"ch1.txt":                library.KindChapter,
		"ch1_clean.txt":          library.KindClean,
		"_clean.txt":             library.KindClean,
		"ch1_clean_notes.txt":    library.KindChapter,
		"ch1.clean.txt":          library.KindChapter,
		"ch1_clean.txt.bak":      library.KindOther,
		"ch1.md":                 library.KindOther,
		".hidden.txt":            library.KindOther,
		"/abs/dir/ch2_clean.txt": library.KindClean,
	}
	for name, want := range cases {
		if got := naming.Classify(name); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestCleanName(t *testing.T) {
	naming := library.DefaultNaming()
	got := naming.CleanName(filepath.Join("/b", "chapters", "ch1.txt"))
	if want := filepath.Join("/b", "chapters", "ch1_clean.txt"); got != want {
		t.Fatalf("CleanName = %q, want %q", got, want)
	}
	if naming.Classify(got) != library.KindClean {
		t.Fatalf("expected clean name to classify as clean")
	}
}

func TestDiscoverySplitsAndSorts(t *testing.T) {
	root := t.TempDir()
	bookDir := testsupport.MakeBook(t, root, "DELTA",
		"ch10.txt", "ch02.txt", "ch01.txt", "ch01_clean.txt", "notes.md")
	chapters := filepath.Join(bookDir, "chapters")
	if err := os.Mkdir(filepath.Join(chapters, "nested.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testsupport.WriteText(t, filepath.Join(chapters, "sub", "deep.txt"), "not scanned")

	book, err := library.ResolveBook(bookDir, library.DefaultNaming())
	if err != nil {
		t.Fatalf("ResolveBook: %v", err)
	}

	raw, err := library.DiscoverChapters(book, library.DefaultNaming())
	if err != nil {
		t.Fatalf("DiscoverChapters: %v", err)
	}
	wantRaw := []string{
		filepath.Join(chapters, "ch01.txt"),
		filepath.Join(chapters, "ch02.txt"),
		filepath.Join(chapters, "ch10.txt"),
	}
	if !reflect.DeepEqual(raw, wantRaw) {
		t.Fatalf("unexpected chapters:\n got %q\nwant %q", raw, wantRaw)
	}

	clean, err := library.DiscoverCleanFiles(book, library.DefaultNaming())
	if err != nil {
		t.Fatalf("DiscoverCleanFiles: %v", err)
	}
	if !reflect.DeepEqual(clean, []string{filepath.Join(chapters, "ch01_clean.txt")}) {
		t.Fatalf("unexpected clean files %q", clean)
	}

	again, err := library.DiscoverChapters(book, library.DefaultNaming())
	if err != nil {
		t.Fatalf("DiscoverChapters again: %v", err)
	}
	if !reflect.DeepEqual(raw, again) {
		t.Fatalf("expected stable discovery, got %q then %q", raw, again)
	}

	for _, path := range raw {
		for _, c := range clean {
			if path == c {
				t.Fatalf("file %q classified as both chapter and clean", path)
			}
		}
	}
}

func TestDiscoverEmptyAndMissing(t *testing.T) {
	root := t.TempDir()
	bookDir := testsupport.MakeBook(t, root, "EMPTY")
	book, err := library.ResolveBook(bookDir, library.DefaultNaming())
	if err != nil {
		t.Fatalf("ResolveBook: %v", err)
	}
	files, err := library.DiscoverChapters(book, library.DefaultNaming())
	if err != nil {
		t.Fatalf("DiscoverChapters: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %q", files)
	}

	if err := os.RemoveAll(book.ChaptersDir); err != nil {
		t.Fatalf("remove chapters: %v", err)
	}
	if _, err := library.DiscoverCleanFiles(book, library.DefaultNaming()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found after chapters removal, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"TOTALNA_WOJNA_INFORMACYJNA": "Totalna Wojna Informacyjna",
		"my-first--book":             "My First Book",
		"already Nice":               "Already Nice",
		"___":                        "",
	}
	for in, want := range cases {
		if got := library.DisplayName(in); got != want {
			t.Fatalf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}
