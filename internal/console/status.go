package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Kind selects the tag and colour of a status line.
type Kind int

const (
	KindInfo Kind = iota
	KindOK
	KindWarn
	KindFail
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

// RenderStatusLine formats "  label:   [TAG] message".
func RenderStatusLine(label string, kind Kind, message string, colorize bool) string {
	statusText := kindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := kindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func kindLabel(kind Kind) string {
	switch kind {
	case KindOK:
		return "OK"
	case KindWarn:
		return "WARN"
	case KindFail:
		return "FAIL"
	default:
		return "INFO"
	}
}

func kindColor(kind Kind) string {
	switch kind {
	case KindOK:
		return ansiGreen
	case KindWarn:
		return ansiYellow
	case KindFail:
		return ansiRed
	case KindInfo:
		return ansiBlue
	default:
		return ""
	}
}

// RenderSectionHeader returns a title line and its underline.
func RenderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// ShouldColorize reports whether writer is a terminal.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
