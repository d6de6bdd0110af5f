package library

import (
	"path/filepath"
	"strings"

	"bookloom/internal/config"
)

// Kind classifies a file found in a chapters directory.
type Kind int

const (
	KindOther Kind = iota
	KindChapter
	KindClean
)

func (k Kind) String() string {
	switch k {
	case KindChapter:
		return "chapter"
	case KindClean:
		return "clean"
	default:
		return "other"
	}
}

// Naming holds the rules that separate raw chapters from cleaned output.
type Naming struct {
	ChaptersDir   string
	TextExtension string
	CleanSuffix   string
}

// DefaultNaming matches the file names written by the stock preprocessor:
// chapters/<stem>.txt in, chapters/<stem>_clean.txt out.
func DefaultNaming() Naming {
	return Naming{ChaptersDir: "chapters", TextExtension: ".txt", CleanSuffix: "_clean"}
}

// NamingFromConfig extracts the naming rules from the library section.
func NamingFromConfig(cfg *config.Config) Naming {
	if cfg == nil {
		return DefaultNaming()
	}
	return Naming{
		ChaptersDir:   cfg.Library.ChaptersDir,
		TextExtension: cfg.Library.TextExtension,
		CleanSuffix:   cfg.Library.CleanSuffix,
	}
}

// Classify reports whether name is a raw chapter, a cleaned file, or neither.
// The two text kinds are exclusive: a stem ending in the clean suffix is never
// a chapter. Hidden files are ignored, as a shell glob would.
func (n Naming) Classify(name string) Kind {
	name = filepath.Base(name)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, n.TextExtension) {
		return KindOther
	}
	stem := strings.TrimSuffix(name, n.TextExtension)
	if stem == "" {
		return KindOther
	}
	if strings.HasSuffix(stem, n.CleanSuffix) {
		return KindClean
	}
	return KindChapter
}

// CleanName returns the cleaned file name the preprocessor writes for a raw
// chapter file.
func (n Naming) CleanName(chapterPath string) string {
	dir := filepath.Dir(chapterPath)
	stem := strings.TrimSuffix(filepath.Base(chapterPath), n.TextExtension)
	return filepath.Join(dir, stem+n.CleanSuffix+n.TextExtension)
}
