// Package match3 implements the match-resolution engine of a tile-matching
// puzzle: run detection, move feasibility, cascade resolution and
// guaranteed-playable random fills, plus the arcade game built on it.
package match3

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Options configures a new Engine.
type Options struct {
	Rows     int
	Cols     int
	Alphabet Alphabet
	Policy   RefillPolicy
	Seed     int64
	Logger   *log.Logger // nil discards engine logs
}

// DefaultOptions returns the classic 4x4 board with the ADFGX alphabet.
func DefaultOptions() Options {
	return Options{
		Rows:     4,
		Cols:     4,
		Alphabet: DefaultAlphabet,
		Policy:   RefillChain,
	}
}

// MinStrictAlphabet is the smallest alphabet the strict refill policy accepts.
// With three symbols a cell can have every symbol ruled out by pairs around
// it, and a strict refill would retry forever.
const MinStrictAlphabet = 4

// Validate checks that a playable board can be built from the options.
func (o Options) Validate() error {
	if o.Rows < MinRun || o.Cols < MinRun {
		return fmt.Errorf("match3: board %dx%d is smaller than %dx%d", o.Rows, o.Cols, MinRun, MinRun)
	}
	if len(o.Alphabet) < MinRun {
		return fmt.Errorf("match3: alphabet %q needs at least %d symbols", o.Alphabet.String(), MinRun)
	}
	if o.Policy == RefillStrict && len(o.Alphabet) < MinStrictAlphabet {
		return fmt.Errorf("match3: strict refill needs at least %d symbols, alphabet %q has %d",
			MinStrictAlphabet, o.Alphabet.String(), len(o.Alphabet))
	}
	seen := make(map[Symbol]bool)
	for _, s := range o.Alphabet {
		if s == Empty || seen[s] {
			return fmt.Errorf("match3: alphabet %q has an empty or repeated symbol", o.Alphabet.String())
		}
		seen[s] = true
	}
	return nil
}

// Stats counts the moves and cascade work of one engine since Init.
type Stats struct {
	MovesApplied  int
	MovesRejected int
	Cascades      int // applied moves whose cascade chained through more than one clear
	CascadeStats
}

// ErrUnsettledBoard is returned by LoadGrid for boards that are not ready to play.
var ErrUnsettledBoard = errors.New("match3: board has a match or no feasible move")

// Engine owns the live grid. It is not safe for concurrent use.
type Engine struct {
	grid     *Grid
	filler   *Filler
	logger   *log.Logger
	observer Observer
	stats    Stats
}

// NewEngine creates an engine with an empty grid. Call Init before play.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	alpha := make(Alphabet, len(opts.Alphabet))
	copy(alpha, opts.Alphabet)

	return &Engine{
		grid: NewGrid(opts.Rows, opts.Cols),
		filler: &Filler{
			Alphabet: alpha,
			Rand:     rand.New(rand.NewSource(opts.Seed)),
			Policy:   opts.Policy,
		},
		logger: logger,
	}, nil
}

// SetObserver installs a callback for every intermediate board of a move.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Init fills a fresh board with no match and at least one feasible move.
func (e *Engine) Init() {
	attempts := e.filler.FillRandom(e.grid, false)
	e.stats = Stats{}
	e.logger.Debug("board initialized", "attempts", attempts, "rows", e.grid.rows, "cols", e.grid.cols)
}

// LoadGrid replaces the board with g, which must match the engine's size,
// use only alphabet symbols, and be settled.
func (e *Engine) LoadGrid(g *Grid) error {
	if g.rows != e.grid.rows || g.cols != e.grid.cols {
		return fmt.Errorf("match3: board is %dx%d, want %dx%d", g.rows, g.cols, e.grid.rows, e.grid.cols)
	}
	for r := range g.cells {
		for c, s := range g.cells[r] {
			if e.filler.Alphabet.Index(s) < 0 {
				return fmt.Errorf("match3: cell %v holds %q, not in alphabet %q", At(r, c), s.String(), e.filler.Alphabet.String())
			}
		}
	}
	if HasMatch(g) || !HasFeasibleMove(g) {
		return ErrUnsettledBoard
	}
	e.grid.CopyFrom(g)
	e.stats = Stats{}
	return nil
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.grid.rows
}

// Cols returns the board width.
func (e *Engine) Cols() int {
	return e.grid.cols
}

// Alphabet returns the symbols the board is drawn from.
func (e *Engine) Alphabet() Alphabet {
	return e.filler.Alphabet
}

// Policy returns the refill policy.
func (e *Engine) Policy() RefillPolicy {
	return e.filler.Policy
}

// Snapshot returns a copy of the current board.
func (e *Engine) Snapshot() *Grid {
	return e.grid.Clone()
}

// Stats returns the counters since the last Init.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Hint returns a swap that would make a match.
func (e *Engine) Hint() (Coord, Direction, bool) {
	return FindFeasibleMove(e.grid)
}

// ApplyMove swaps the cell with 1-based index cell in direction dir.
// An index outside the board is reported as out of bounds.
func (e *Engine) ApplyMove(cell int, dir Direction) MoveResult {
	at, ok := CellCoord(cell, e.grid.rows, e.grid.cols)
	if !ok {
		e.stats.MovesRejected++
		return ResultOutOfBounds
	}
	return e.ApplySwap(at, dir)
}

// ApplySwap swaps the cell at with its neighbour in direction dir. The swap
// is committed only if it produces a match, and then the cascade runs to
// Stable before ApplySwap returns.
func (e *Engine) ApplySwap(at Coord, dir Direction) MoveResult {
	to := at.Step(dir)
	if !e.grid.InBounds(at) || !e.grid.InBounds(to) {
		e.stats.MovesRejected++
		return ResultOutOfBounds
	}

	trial := e.grid.Clone()
	trial.Swap(at, to)
	if !HasMatch(trial) {
		e.stats.MovesRejected++
		return ResultNoMatch
	}

	e.grid.CopyFrom(trial)
	e.stats.MovesApplied++
	if e.observer != nil {
		e.observer(Event{Kind: EventSwapped, Grid: e.grid.Clone()})
	}

	res := NewResolver(e.grid, e.filler, e.observer, e.logger)
	cs := res.Resolve()
	if cs.Clears > 1 {
		e.stats.Cascades++
	}
	e.stats.Clears += cs.Clears
	e.stats.CellsCleared += cs.CellsCleared
	e.stats.Collapses += cs.Collapses
	e.stats.Refills += cs.Refills
	e.stats.RefillAttempts += cs.RefillAttempts

	e.logger.Debug("move applied",
		"at", at,
		"dir", dir,
		"cleared", cs.CellsCleared,
		"clears", cs.Clears,
		"refill_attempts", cs.RefillAttempts,
	)
	return ResultApplied
}
