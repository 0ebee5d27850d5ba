package match3

import (
	"fmt"
	"strings"
)

// Symbol is the content of one board cell.
type Symbol rune

// Empty marks a cleared cell waiting for collapse and refill.
const Empty Symbol = 0

// String returns the printable form of a symbol; Empty prints as '*'.
func (s Symbol) String() string {
	if s == Empty {
		return "*"
	}
	return string(rune(s))
}

// Alphabet is the ordered set of symbols a board is drawn from.
type Alphabet []Symbol

// DefaultAlphabet is the five-letter set of the 4x4 classic board.
var DefaultAlphabet = Alphabet{'A', 'D', 'F', 'G', 'X'}

// ParseAlphabet builds an alphabet from a string of distinct symbols.
func ParseAlphabet(s string) (Alphabet, error) {
	seen := make(map[rune]bool)
	alpha := make(Alphabet, 0, len(s))
	for _, r := range s {
		if r == '*' || r == '.' || r == ' ' {
			return nil, fmt.Errorf("alphabet: %q is reserved", r)
		}
		if seen[r] {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q", r)
		}
		seen[r] = true
		alpha = append(alpha, Symbol(r))
	}
	if len(alpha) == 0 {
		return nil, fmt.Errorf("alphabet: empty")
	}
	return alpha, nil
}

// Index returns the position of s in the alphabet, or -1.
func (a Alphabet) Index(s Symbol) int {
	for i, sym := range a {
		if sym == s {
			return i
		}
	}
	return -1
}

// String joins the symbols.
func (a Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}

// Coord is a (row, column) position, 0-indexed, row-major.
type Coord struct {
	Row int
	Col int
}

// NoCoord marks an absent run in MatchInfo.
var NoCoord = Coord{Row: -1, Col: -1}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the R×C board. Dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]Symbol
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]Symbol, rows)
	for r := range g.cells {
		g.cells[r] = make([]Symbol, cols)
	}
	return g
}

// ParseGrid builds a grid from one string per row. '*' and '.' are empty cells.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	cols := len([]rune(rows[0]))
	g := NewGrid(len(rows), cols)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			if ch == '*' || ch == '.' {
				continue
			}
			g.cells[r][c] = Symbol(ch)
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on malformed input.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the symbol at c. Out-of-bounds reads return Empty.
func (g *Grid) Get(c Coord) Symbol {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[c.Row][c.Col]
}

// Set writes the symbol at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, s Symbol) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col] = s
	}
}

// Swap exchanges the contents of two in-bounds cells.
func (g *Grid) Swap(a, b Coord) {
	g.cells[a.Row][a.Col], g.cells[b.Row][b.Col] = g.cells[b.Row][b.Col], g.cells[a.Row][a.Col]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.rows, g.cols)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// CopyFrom overwrites g with the contents of src, which must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if src.rows != g.rows || src.cols != g.cols {
		panic(fmt.Sprintf("grid: copy %dx%d into %dx%d", src.rows, src.cols, g.rows, g.cols))
	}
	for r := range g.cells {
		copy(g.cells[r], src.cells[r])
	}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Column returns a copy of column c, top to bottom.
func (g *Grid) Column(c int) []Symbol {
	col := make([]Symbol, g.rows)
	for r := range g.rows {
		col[r] = g.cells[r][c]
	}
	return col
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for r := range g.cells {
		for _, s := range g.cells[r] {
			if s == Empty {
				n++
			}
		}
	}
	return n
}

// Lines returns one string per row, empties as '*'.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range g.cells {
		var sb strings.Builder
		for _, s := range g.cells[r] {
			sb.WriteString(s.String())
		}
		lines[r] = sb.String()
	}
	return lines
}

// String prints the board one row per line with every cell bracketed, e.g. "[A][*][G]".
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range g.cells[r] {
			sb.WriteByte('[')
			sb.WriteString(s.String())
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// SetColumn overwrites column c top to bottom with syms.
func (g *Grid) SetColumn(c int, syms []Symbol) {
	for r := range min(g.rows, len(syms)) {
		g.cells[r][c] = syms[r]
	}
}
