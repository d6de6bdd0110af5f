package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"bookloom/internal/services"
)

// DiscoverChapters returns the raw chapter files of book in lexicographic order.
func DiscoverChapters(book Book, naming Naming) ([]string, error) {
	return discover(book, naming, KindChapter)
}

// DiscoverCleanFiles returns the cleaned files of book in lexicographic order.
func DiscoverCleanFiles(book Book, naming Naming) ([]string, error) {
	return discover(book, naming, KindClean)
}

func discover(book Book, naming Naming, want Kind) ([]string, error) {
	dir := book.ChaptersDir
	if dir == "" {
		dir = filepath.Join(book.Path, naming.ChaptersDir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "library", "discover", fmt.Sprintf("read %s", dir), err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if naming.Classify(entry.Name()) != want {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(entry, path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func isRegularFile(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
