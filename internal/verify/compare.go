package verify

import (
	"errors"
	"os"
	"path/filepath"

	"bookloom/internal/library"
	"bookloom/internal/services"
)

// Status grades a single chapter.
type Status string

const (
	StatusOK         Status = "OK"
	StatusCheck      Status = "CHECK"
	StatusSuspicious Status = "SUSPICIOUS"
	StatusMissing    Status = "MISSING"
)

// Quality grades overall character retention across a book.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityModerate  Quality = "moderate"
	QualityPoor      Quality = "poor"
)

const (
	suspiciousBelow = 0.70
	checkBelow      = 0.80
)

// Entry pairs a raw chapter with its cleaned version.
type Entry struct {
	Name      string
	Original  string
	Cleaned   string
	Raw       TextStats
	Clean     *TextStats
	CharRatio float64
	SizeRatio float64
	LineRatio float64
	// Similarity is the cosine similarity of the word frequencies of both
	// sides. A low value with a healthy CharRatio means the text was
	// rewritten rather than trimmed.
	Similarity float64
	Status     Status
}

// NeedsInspection reports whether the entry should be looked at by hand.
func (e Entry) NeedsInspection() bool {
	return e.Status == StatusSuspicious || e.Status == StatusCheck
}

// Report is the verification result for one book.
type Report struct {
	Book          library.Book
	Entries       []Entry
	OriginalChars int
	CleanedChars  int
}

// Compared returns the number of chapters that had a cleaned counterpart.
func (r Report) Compared() int {
	n := 0
	for _, e := range r.Entries {
		if e.Clean != nil {
			n++
		}
	}
	return n
}

// Missing returns the entries without a cleaned file.
func (r Report) Missing() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status == StatusMissing {
			out = append(out, e)
		}
	}
	return out
}

// Flagged returns the entries graded CHECK or SUSPICIOUS.
func (r Report) Flagged() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.NeedsInspection() {
			out = append(out, e)
		}
	}
	return out
}

// Retention is cleaned characters over original characters across compared
// chapters.
func (r Report) Retention() float64 {
	return ratio(r.CleanedChars, r.OriginalChars)
}

// Quality grades Retention.
func (r Report) Quality() Quality {
	return RateRetention(r.Retention())
}

// Compare measures every raw chapter of book against <stem><suffix><ext>.
func Compare(book library.Book, naming library.Naming) (Report, error) {
	files, err := library.DiscoverChapters(book, naming)
	if err != nil {
		return Report{}, err
	}
	report := Report{Book: book, Entries: make([]Entry, 0, len(files))}
	for _, original := range files {
		entry, err := compareOne(original, naming.CleanName(original))
		if err != nil {
			return Report{}, services.Wrap(services.ErrValidation, "verify", "compare", filepath.Base(original), err)
		}
		if entry.Clean != nil {
			report.OriginalChars += entry.Raw.Chars
			report.CleanedChars += entry.Clean.Chars
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

func compareOne(original, cleaned string) (Entry, error) {
	entry := Entry{Name: filepath.Base(original), Original: original, Cleaned: cleaned}
	rawText, raw, err := readText(original)
	if err != nil {
		return Entry{}, err
	}
	entry.Raw = raw

	if _, err := os.Stat(cleaned); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			entry.Status = StatusMissing
			return entry, nil
		}
		return Entry{}, err
	}
	cleanText, clean, err := readText(cleaned)
	if err != nil {
		return Entry{}, err
	}
	entry.Clean = &clean
	entry.Similarity = similarity(rawText, cleanText)
	entry.CharRatio = ratio(clean.Chars, raw.Chars)
	entry.SizeRatio = ratio(int(clean.Bytes), int(raw.Bytes))
	entry.LineRatio = ratio(clean.Lines, raw.Lines)
	entry.Status = Grade(entry.CharRatio)
	return entry, nil
}

// Grade maps a character ratio to a chapter status.
func Grade(charRatio float64) Status {
	switch {
	case charRatio < suspiciousBelow:
		return StatusSuspicious
	case charRatio < checkBelow:
		return StatusCheck
	default:
		return StatusOK
	}
}

// RateRetention maps overall retention to a quality grade.
func RateRetention(retention float64) Quality {
	switch {
	case retention > 0.95:
		return QualityExcellent
	case retention > 0.85:
		return QualityGood
	case retention > 0.75:
		return QualityModerate
	default:
		return QualityPoor
	}
}

// ratio treats an empty denominator as full retention.
func ratio(num, den int) float64 {
	if den == 0 {
		return 1.0
	}
	return float64(num) / float64(den)
}
