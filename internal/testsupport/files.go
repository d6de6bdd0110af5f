package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// MakeBook creates root/name/chapters and writes each file with placeholder
// text. It returns the book directory.
func MakeBook(t testing.TB, root, name string, files ...string) string {
	t.Helper()

	bookDir := filepath.Join(root, name)
	chapters := filepath.Join(bookDir, "chapters")
	if err := os.MkdirAll(chapters, 0o755); err != nil {
		t.Fatalf("mkdir chapters for %s: %v", name, err)
	}
	for _, file := range files {
		WriteText(t, filepath.Join(chapters, file), "Rozdział "+file+"\nTreść rozdziału.\n")
	}
	return bookDir
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteExecutable writes an executable script named name into dir and returns
// its path.
func WriteExecutable(t testing.TB, dir, name, script string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
