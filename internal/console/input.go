// Package console is the line-oriented front end: it prompts for a cell
// number and a W/A/S/D direction, applies the swap and prints each board the
// cascade passes through.
package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

// Input errors. ErrExit is not a failure; it ends the session.
var (
	ErrExit             = errors.New("console: exit requested")
	ErrNotANumber       = errors.New("console: cell is not a number")
	ErrCellOutOfRange   = errors.New("console: cell out of range")
	ErrUnknownDirection = errors.New("console: unknown direction")
)

const exitCommand = "exit"

// normalize lowercases and trims a line of input.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseCell reads a 1-based cell number in 1..cells.
func ParseCell(s string, cells int) (int, error) {
	s = normalize(s)
	if s == exitCommand {
		return 0, ErrExit
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 1 || n > cells {
		return 0, ErrCellOutOfRange
	}
	return n, nil
}

// ParseDirection reads one of w, a, s, d in any case.
func ParseDirection(s string) (match3.Direction, error) {
	switch normalize(s) {
	case "w":
		return match3.DirUp, nil
	case "s":
		return match3.DirDown, nil
	case "a":
		return match3.DirLeft, nil
	case "d":
		return match3.DirRight, nil
	case exitCommand:
		return 0, ErrExit
	default:
		return 0, ErrUnknownDirection
	}
}

// DirectionKey returns the key that selects d.
func DirectionKey(d match3.Direction) string {
	switch d {
	case match3.DirDown:
		return "S"
	case match3.DirLeft:
		return "A"
	case match3.DirRight:
		return "D"
	default:
		return "W"
	}
}
