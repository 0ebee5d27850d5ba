package config

import (
	"fmt"
	"sort"
)

// MinBoardSide and MinAlphabet are the smallest values that can hold a run of three.
// MinStrictAlphabet applies when refill.allow_chains is false: with three
// symbols a strict refill can find every symbol ruled out for a cell.
const (
	MinBoardSide      = 3
	MinAlphabet       = 3
	MinStrictAlphabet = 4
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the top-level board, every variant board, playback and the preset.
func (c Match3Config) Validate() error {
	if err := validateBoard("board", c.Board); err != nil {
		return err
	}

	ids := make([]string, 0, len(c.Variants))
	for id := range c.Variants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := validateBoard("variants."+id, c.BoardFor(id)); err != nil {
			return err
		}
	}

	if !c.Refill.AllowChains {
		if err := validateStrictAlphabet("board", c.Board.Alphabet); err != nil {
			return err
		}
		for _, id := range ids {
			if err := validateStrictAlphabet("variants."+id, c.BoardFor(id).Alphabet); err != nil {
				return err
			}
		}
	}

	if c.Display.StepDelayTicks < 0 {
		return ValidationError{
			Code:    "INVALID_DELAY",
			Message: fmt.Sprintf("display.step_delay_ticks is %d, want >= 0", c.Display.StepDelayTicks),
		}
	}

	if _, err := ParseDifficultyPreset(c.Difficulty.Preset); err != nil {
		return ValidationError{Code: "INVALID_PRESET", Message: err.Error()}
	}

	return nil
}

func validateBoard(where string, b BoardConfig) error {
	if b.Rows < MinBoardSide || b.Cols < MinBoardSide {
		return ValidationError{
			Code:    "BOARD_TOO_SMALL",
			Message: fmt.Sprintf("%s is %dx%d, want at least %dx%d", where, b.Rows, b.Cols, MinBoardSide, MinBoardSide),
		}
	}
	return validateAlphabet(where, b.Alphabet)
}

func validateAlphabet(where, alphabet string) error {
	seen := make(map[rune]bool)
	for _, r := range alphabet {
		if r == '*' || r == '.' || r == ' ' {
			return ValidationError{
				Code:    "RESERVED_SYMBOL",
				Message: fmt.Sprintf("%s alphabet uses reserved symbol %q", where, r),
			}
		}
		if seen[r] {
			return ValidationError{
				Code:    "DUPLICATE_SYMBOL",
				Message: fmt.Sprintf("%s alphabet repeats %q", where, r),
			}
		}
		seen[r] = true
	}
	if len(seen) < MinAlphabet {
		return ValidationError{
			Code:    "ALPHABET_TOO_SMALL",
			Message: fmt.Sprintf("%s alphabet %q has %d symbols, want at least %d", where, alphabet, len(seen), MinAlphabet),
		}
	}
	return nil
}

func validateStrictAlphabet(where, alphabet string) error {
	if n := len([]rune(alphabet)); n < MinStrictAlphabet {
		return ValidationError{
			Code:    "ALPHABET_TOO_SMALL",
			Message: fmt.Sprintf("%s alphabet %q has %d symbols, strict refill needs at least %d", where, alphabet, n, MinStrictAlphabet),
		}
	}
	return nil
}

// Validate checks that the fixture is a non-empty rectangle.
func (bf BoardFile) Validate() error {
	rows, cols := bf.Size()
	if rows < MinBoardSide || cols < MinBoardSide {
		return ValidationError{
			Code:    "BOARD_TOO_SMALL",
			Message: fmt.Sprintf("board is %dx%d, want at least %dx%d", rows, cols, MinBoardSide, MinBoardSide),
		}
	}
	for i, row := range bf.Rows {
		if n := len([]rune(row)); n != cols {
			return ValidationError{
				Code:    "RAGGED_BOARD",
				Message: fmt.Sprintf("row %d has %d cells, want %d", i+1, n, cols),
			}
		}
	}
	if bf.Alphabet != "" {
		return validateAlphabet("board", bf.Alphabet)
	}
	return nil
}
