package match3

import (
	"github.com/charmbracelet/log"
)

// Phase is a state of the cascade resolver.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMatchesPending
	PhaseCollapsing
	PhaseRefilling
	PhaseStable
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMatchesPending:
		return "matches-pending"
	case PhaseCollapsing:
		return "collapsing"
	case PhaseRefilling:
		return "refilling"
	case PhaseStable:
		return "stable"
	default:
		return "unknown"
	}
}

// EventKind tells an observer which step just ran.
type EventKind int

const (
	EventSwapped EventKind = iota
	EventCleared
	EventCollapsed
	EventRefilled
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventSwapped:
		return "swapped"
	case EventCleared:
		return "cleared"
	case EventCollapsed:
		return "collapsed"
	case EventRefilled:
		return "refilled"
	default:
		return "unknown"
	}
}

// Event describes one intermediate board state. Grid is a private copy.
type Event struct {
	Kind     EventKind
	Grid     *Grid
	Cleared  int // cells emptied, for EventCleared
	Attempts int // draws taken, for EventRefilled
}

// Observer receives every intermediate board state of a cascade.
type Observer func(Event)

// ClearMatch empties the vertical and horizontal spans recorded in info and
// returns the number of cells that were not already empty.
func ClearMatch(g *Grid, info MatchInfo) int {
	n := 0
	if info.HasVertical() {
		for r := info.High.Row; r <= info.Low.Row; r++ {
			if g.cells[r][info.High.Col] != Empty {
				g.cells[r][info.High.Col] = Empty
				n++
			}
		}
	}
	if info.HasHorizontal() {
		for c := info.Left.Col; c <= info.Right.Col; c++ {
			if g.cells[info.Left.Row][c] != Empty {
				g.cells[info.Left.Row][c] = Empty
				n++
			}
		}
	}
	return n
}

// ClearAll detects and clears until no match remains.
func ClearAll(g *Grid) int {
	total := 0
	for {
		found, info := Detect(g)
		if !found {
			return total
		}
		total += ClearMatch(g, info)
	}
}

// Collapse drops every symbol down its column in one pass, keeping the order
// of symbols and leaving empties on top. Rows are visited bottom-up so a symbol
// that already fell is not moved again. Reports whether anything moved.
func Collapse(g *Grid) bool {
	moved := false
	for r := g.rows - 2; r >= 0; r-- {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Empty {
				continue
			}
			dst := r
			for dst+1 < g.rows && g.cells[dst+1][c] == Empty {
				dst++
			}
			if dst != r {
				g.cells[dst][c] = g.cells[r][c]
				g.cells[r][c] = Empty
				moved = true
			}
		}
	}
	return moved
}

// CascadeStats counts the work done by one or more cascades.
type CascadeStats struct {
	Clears         int // MatchesPending steps
	CellsCleared   int
	Collapses      int
	Refills        int
	RefillAttempts int
}

// Resolver drives a board from "a matching swap was applied" to Stable.
//
//	Idle -> MatchesPending  a match is present
//	MatchesPending -> Collapsing  after clearing every match
//	Collapsing -> MatchesPending  dropped symbols lined up
//	Collapsing -> Refilling  otherwise
//	Refilling -> MatchesPending  the new symbols made a match
//	Refilling -> Stable
type Resolver struct {
	grid     *Grid
	filler   *Filler
	observer Observer
	logger   *log.Logger
	phase    Phase
	stats    CascadeStats
}

// NewResolver creates a resolver in the Idle phase. observer and logger may be nil.
func NewResolver(g *Grid, f *Filler, observer Observer, logger *log.Logger) *Resolver {
	return &Resolver{
		grid:     g,
		filler:   f,
		observer: observer,
		logger:   logger,
		phase:    PhaseIdle,
	}
}

// Phase returns the current phase.
func (r *Resolver) Phase() Phase {
	return r.phase
}

// Stats returns the counters accumulated so far.
func (r *Resolver) Stats() CascadeStats {
	return r.stats
}

// Step performs one transition and returns the new phase.
// Calling Step in PhaseStable is a no-op.
func (r *Resolver) Step() Phase {
	switch r.phase {
	case PhaseIdle:
		if HasMatch(r.grid) {
			r.phase = PhaseMatchesPending
		} else {
			r.phase = PhaseStable
		}

	case PhaseMatchesPending:
		n := ClearAll(r.grid)
		r.stats.Clears++
		r.stats.CellsCleared += n
		r.emit(Event{Kind: EventCleared, Cleared: n})
		r.phase = PhaseCollapsing

	case PhaseCollapsing:
		Collapse(r.grid)
		r.stats.Collapses++
		r.emit(Event{Kind: EventCollapsed})
		if HasMatch(r.grid) {
			r.phase = PhaseMatchesPending
		} else {
			r.phase = PhaseRefilling
		}

	case PhaseRefilling:
		attempts := r.filler.FillRandom(r.grid, true)
		r.stats.Refills++
		r.stats.RefillAttempts += attempts
		r.emit(Event{Kind: EventRefilled, Attempts: attempts})
		if HasMatch(r.grid) {
			r.phase = PhaseMatchesPending
		} else {
			r.phase = PhaseStable
		}
	}

	if r.logger != nil {
		r.logger.Debug("cascade step", "phase", r.phase, "cleared", r.stats.CellsCleared)
	}
	return r.phase
}

// Resolve steps until the board is Stable.
func (r *Resolver) Resolve() CascadeStats {
	for r.phase != PhaseStable {
		r.Step()
	}
	return r.stats
}

func (r *Resolver) emit(ev Event) {
	if r.observer == nil {
		return
	}
	ev.Grid = r.grid.Clone()
	r.observer(ev)
}
