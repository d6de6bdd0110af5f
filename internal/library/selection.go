package library

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSelectionNotNumber reports input that is not an integer.
	ErrSelectionNotNumber = errors.New("selection is not a number")
	// ErrSelectionOutOfRange reports an integer outside 1..count.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// ValidateSelection parses a 1-based menu choice and returns the matching
// 0-based index. It performs no I/O so prompt loops can re-ask on error.
func ValidateSelection(input string, count int) (int, error) {
	trimmed := strings.TrimSpace(input)
	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSelectionNotNumber, trimmed)
	}
	if count <= 0 || choice < 1 || choice > count {
		return 0, fmt.Errorf("%w: %d (choose 1-%d)", ErrSelectionOutOfRange, choice, count)
	}
	return choice - 1, nil
}
