package ui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// CheckTerminal verifies stdout is a terminal and reports whether it is at
// least minWidth x minHeight cells. A small terminal is not an error; the
// returned size lets the caller warn about clipping.
func CheckTerminal(minWidth, minHeight int) (width, height int, fits bool, err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false, ErrNotTerminal
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to read terminal size: %w", err)
	}
	return width, height, width >= minWidth && height >= minHeight, nil
}
