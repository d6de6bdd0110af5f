package verify

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// excerptRunes is the length of the head and tail excerpts kept per file.
const excerptRunes = 100

// TextStats describes one text file.
type TextStats struct {
	Bytes int64
	Lines int
	Chars int
	Head  string
	Tail  string
}

// Measure reads path as UTF-8 text and returns its statistics.
func Measure(path string) (TextStats, error) {
	_, stats, err := readText(path)
	return stats, err
}

func readText(path string) (string, TextStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", TextStats{}, fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), measureContent(data), nil
}

func measureContent(data []byte) TextStats {
	content := string(data)
	runes := []rune(content)
	stats := TextStats{
		Bytes: int64(len(data)),
		Lines: countLines(content),
		Chars: utf8.RuneCountInString(content),
	}
	head := runes
	if len(head) > excerptRunes {
		head = head[:excerptRunes]
	}
	tail := runes
	if len(tail) > excerptRunes {
		tail = tail[len(tail)-excerptRunes:]
	}
	stats.Head = flatten(string(head))
	stats.Tail = flatten(string(tail))
	return stats
}

// countLines counts lines the way a text editor does: a trailing newline does
// not start a new line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return lines
}

func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
