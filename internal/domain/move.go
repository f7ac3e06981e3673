package domain

import (
	"strconv"
	"strings"
)

// ParseMove turns user input ("1".."7") into a 0-based column.
func ParseMove(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return -1, ErrInvalidMove
	}
	if n < 1 || n > Columns {
		return -1, ErrInvalidMove
	}
	return n - 1, nil
}
