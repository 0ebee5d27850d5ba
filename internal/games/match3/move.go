package match3

import "errors"

// MoveResult is the outcome of a swap request.
type MoveResult int

const (
	ResultApplied MoveResult = iota
	ResultNoMatch
	ResultOutOfBounds
)

// Move errors. Neither is fatal; the board is left unchanged.
var (
	ErrInvalidMove     = errors.New("match3: swap leaves the board")
	ErrNoMatchProduced = errors.New("match3: swap does not make a match")
)

// String returns a human-readable name for the result.
func (r MoveResult) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultNoMatch:
		return "no-match"
	case ResultOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Err maps the result to its sentinel error, nil when the swap was applied.
func (r MoveResult) Err() error {
	switch r {
	case ResultNoMatch:
		return ErrNoMatchProduced
	case ResultOutOfBounds:
		return ErrInvalidMove
	default:
		return nil
	}
}

// CellCoord converts a 1-based linear cell index into a coordinate.
// ok is false when the index is outside 1..rows*cols.
func CellCoord(cell, rows, cols int) (Coord, bool) {
	if cell < 1 || cell > rows*cols {
		return NoCoord, false
	}
	return Coord{Row: (cell - 1) / cols, Col: (cell - 1) % cols}, true
}

// CellIndex is the inverse of CellCoord.
func CellIndex(c Coord, cols int) int {
	return c.Row*cols + c.Col + 1
}
