package console

import (
	"fmt"

	"bookloom/internal/verify"
)

const maxNameWidth = 32

// Verification prints a verification report: a per-chapter table, details for
// chapters that need inspection, and overall retention.
func (c *Console) Verification(report verify.Report) {
	c.Section("Processing verification: " + report.Book.Title())
	c.Status("Book", KindInfo, report.Book.Path)
	if len(report.Entries) == 0 {
		c.Status("Chapters", KindFail, "no chapter files found")
		return
	}
	c.Status("Chapters", KindInfo, fmt.Sprintf("%d to analyze", len(report.Entries)))

	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		row := []string{truncateName(e.Name), c.statsCell(e.Raw)}
		if e.Clean == nil {
			row = append(row, "-", "-", "-", "-", string(e.Status))
		} else {
			row = append(row, c.statsCell(*e.Clean), percent(e.CharRatio), percent(e.SizeRatio), percent(e.Similarity), string(e.Status))
		}
		rows = append(rows, row)
	}
	c.Table(
		[]string{"File", "Original", "Cleaned", "Char%", "Size%", "Words", "Status"},
		rows,
		[]Alignment{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft},
	)

	for _, e := range report.Missing() {
		c.Status(e.Name, KindFail, "no cleaned file found")
	}

	flagged := report.Flagged()
	c.Section("Detailed content check")
	if len(flagged) == 0 {
		c.Status("Content", KindOK, "all compared files appear to be processed correctly")
	}
	for _, e := range flagged {
		kind := KindWarn
		if e.Status == verify.StatusSuspicious {
			kind = KindFail
		}
		c.Status(e.Name, kind, fmt.Sprintf("%s, character loss %.1f%%", e.Status, (1-e.CharRatio)*100))
		c.line(fmt.Sprintf("%s  Original first 100 chars: %s...", statusIndent, e.Raw.Head))
		c.line(fmt.Sprintf("%s  Cleaned first 100 chars:  %s...", statusIndent, e.Clean.Head))
		c.line(fmt.Sprintf("%s  Original last 100 chars:  ...%s", statusIndent, e.Raw.Tail))
		c.line(fmt.Sprintf("%s  Cleaned last 100 chars:   ...%s", statusIndent, e.Clean.Tail))
	}

	if report.Compared() == 0 {
		c.Status("Retention", KindWarn, "nothing to compare; run preprocessing first")
		return
	}
	c.Section("Overall statistics")
	c.Status("Original chars", KindInfo, c.Number(report.OriginalChars))
	c.Status("Cleaned chars", KindInfo, c.Number(report.CleanedChars))
	c.Status("Retention", qualityKind(report.Quality()), fmt.Sprintf("%s (%s)", percent(report.Retention()), qualityText(report.Quality())))
}

func (c *Console) statsCell(s verify.TextStats) string {
	return fmt.Sprintf("%sc/%sl", c.Number(s.Chars), c.Number(s.Lines))
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameWidth {
		return string(runes[:maxNameWidth-3]) + "..."
	}
	return name
}

func qualityKind(q verify.Quality) Kind {
	switch q {
	case verify.QualityExcellent, verify.QualityGood:
		return KindOK
	case verify.QualityModerate:
		return KindWarn
	default:
		return KindFail
	}
}

func qualityText(q verify.Quality) string {
	switch q {
	case verify.QualityExcellent:
		return "excellent retention, minimal content loss"
	case verify.QualityGood:
		return "good retention, acceptable cleaning"
	case verify.QualityModerate:
		return "moderate retention, check flagged files"
	default:
		return "poor retention, significant content loss"
	}
}
