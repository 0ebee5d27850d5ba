package match3

import (
	"errors"
	"testing"
)

var exampleRows = []string{"ABAA", "BABB", "ABAB", "BABA"}

func newExampleEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'C'}, Seed: 7})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := e.LoadGrid(MustParseGrid(exampleRows...)); err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	return e
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"too few rows", Options{Rows: 2, Cols: 4, Alphabet: DefaultAlphabet}},
		{"too few cols", Options{Rows: 4, Cols: 2, Alphabet: DefaultAlphabet}},
		{"short alphabet", Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B'}}},
		{"repeated symbol", Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'A'}}},
		{"empty symbol", Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', Empty}}},
		{"strict refill with three symbols", Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'C'}, Policy: RefillStrict}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStrictRefillAlphabetSize(t *testing.T) {
	three := Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'C'}, Policy: RefillChain}
	if _, err := NewEngine(three); err != nil {
		t.Errorf("chain refill with three symbols: NewEngine() error = %v", err)
	}

	four := Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'C', 'D'}, Policy: RefillStrict}
	if _, err := NewEngine(four); err != nil {
		t.Errorf("strict refill with four symbols: NewEngine() error = %v", err)
	}
}

func TestInitPostConditions(t *testing.T) {
	sizes := []struct {
		rows, cols int
		alpha      Alphabet
	}{
		{4, 4, DefaultAlphabet},
		{3, 5, DefaultAlphabet},
		{8, 8, Alphabet{'A', 'D', 'F', 'G', 'X', 'V'}},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 10; seed++ {
			e, err := NewEngine(Options{Rows: sz.rows, Cols: sz.cols, Alphabet: sz.alpha, Seed: seed})
			if err != nil {
				t.Fatalf("NewEngine: %v", err)
			}
			e.Init()

			g := e.Snapshot()
			if g.EmptyCount() != 0 || HasMatch(g) || !HasFeasibleMove(g) {
				t.Errorf("%dx%d seed %d: board not playable:\n%s", sz.rows, sz.cols, seed, g)
			}
		}
	}
}

func TestEngineDeterministic(t *testing.T) {
	play := func() *Grid {
		e, err := NewEngine(Options{Rows: 5, Cols: 5, Alphabet: DefaultAlphabet, Seed: 99})
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		e.Init()
		for range 5 {
			at, dir, ok := e.Hint()
			if !ok {
				t.Fatal("no hint on a stable board")
			}
			if res := e.ApplySwap(at, dir); res != ResultApplied {
				t.Fatalf("hinted swap = %s, want applied", res)
			}
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if !a.Equal(b) {
		t.Errorf("same seed and moves diverged:\n%s\n\n%s", a, b)
	}
}

func TestApplyMoveBoundary(t *testing.T) {
	e := newExampleEngine(t)
	before := e.Snapshot()

	tests := []struct {
		cell int
		dir  Direction
	}{
		{1, DirUp},
		{1, DirLeft},
		{4, DirRight},
		{16, DirDown},
		{13, DirLeft},
		{0, DirRight},
		{17, DirUp},
		{-3, DirDown},
	}

	for _, tt := range tests {
		res := e.ApplyMove(tt.cell, tt.dir)
		if res != ResultOutOfBounds {
			t.Errorf("ApplyMove(%d, %s) = %s, want out-of-bounds", tt.cell, tt.dir, res)
		}
		if !errors.Is(res.Err(), ErrInvalidMove) {
			t.Errorf("ApplyMove(%d, %s).Err() = %v, want ErrInvalidMove", tt.cell, tt.dir, res.Err())
		}
	}

	if !e.Snapshot().Equal(before) {
		t.Error("rejected moves changed the board")
	}
	if got := e.Stats().MovesRejected; got != len(tests) {
		t.Errorf("MovesRejected = %d, want %d", got, len(tests))
	}
}

func TestApplyMoveNoMatch(t *testing.T) {
	e := newExampleEngine(t)
	before := e.Snapshot()

	// Cells 3 and 4 both hold A.
	res := e.ApplyMove(4, DirLeft)
	if res != ResultNoMatch {
		t.Fatalf("ApplyMove(4, left) = %s, want no-match", res)
	}
	if !errors.Is(res.Err(), ErrNoMatchProduced) {
		t.Errorf("Err() = %v, want ErrNoMatchProduced", res.Err())
	}
	if !e.Snapshot().Equal(before) {
		t.Errorf("board changed after no-match:\n%s", e.Snapshot())
	}
	if e.Stats().MovesApplied != 0 {
		t.Errorf("MovesApplied = %d, want 0", e.Stats().MovesApplied)
	}
}

func TestApplyMoveApplied(t *testing.T) {
	e := newExampleEngine(t)

	var events []Event
	e.SetObserver(func(ev Event) { events = append(events, ev) })

	res := e.ApplyMove(1, DirRight)
	if res != ResultApplied {
		t.Fatalf("ApplyMove(1, right) = %s, want applied", res)
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v, want nil", res.Err())
	}

	g := e.Snapshot()
	if g.EmptyCount() != 0 || HasMatch(g) || !HasFeasibleMove(g) {
		t.Errorf("board not stable after move:\n%s", g)
	}

	if len(events) < 4 {
		t.Fatalf("got %d events, want at least swapped, cleared, collapsed, refilled", len(events))
	}
	if events[0].Kind != EventSwapped || events[0].Grid.Lines()[0] != "BAAA" {
		t.Errorf("first event = %s %q, want swapped BAAA", events[0].Kind, events[0].Grid.Lines()[0])
	}
	if events[1].Kind != EventCleared || events[1].Cleared != 3 || events[1].Grid.Lines()[0] != "B***" {
		t.Errorf("second event = %s cleared %d %q, want cleared 3 B***", events[1].Kind, events[1].Cleared, events[1].Grid.Lines()[0])
	}

	st := e.Stats()
	if st.MovesApplied != 1 {
		t.Errorf("MovesApplied = %d, want 1", st.MovesApplied)
	}
	if st.CellsCleared < 3 {
		t.Errorf("CellsCleared = %d, want >= 3", st.CellsCleared)
	}
	if st.Refills < 1 || st.RefillAttempts < st.Refills {
		t.Errorf("Refills = %d, RefillAttempts = %d", st.Refills, st.RefillAttempts)
	}
}

func TestLoadGridRejects(t *testing.T) {
	e, err := NewEngine(Options{Rows: 4, Cols: 4, Alphabet: Alphabet{'A', 'B', 'C'}})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	if err := e.LoadGrid(MustParseGrid("ABA", "BAB", "ABA")); err == nil {
		t.Error("expected size mismatch error")
	}
	if err := e.LoadGrid(MustParseGrid("ABAX", "BABB", "ABAB", "BABA")); err == nil {
		t.Error("expected unknown symbol error")
	}
	if err := e.LoadGrid(MustParseGrid("BAAA", "BABB", "ABAB", "BABA")); !errors.Is(err, ErrUnsettledBoard) {
		t.Errorf("LoadGrid(with match) = %v, want ErrUnsettledBoard", err)
	}
	if err := e.LoadGrid(MustParseGrid("A*AA", "BABB", "ABAB", "BABA")); err == nil {
		t.Error("expected error for empty cell")
	}
}

func TestCellCoord(t *testing.T) {
	tests := []struct {
		cell int
		want Coord
		ok   bool
	}{
		{1, At(0, 0), true},
		{4, At(0, 3), true},
		{5, At(1, 0), true},
		{16, At(3, 3), true},
		{0, NoCoord, false},
		{17, NoCoord, false},
	}

	for _, tt := range tests {
		got, ok := CellCoord(tt.cell, 4, 4)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CellCoord(%d) = %v, %v, want %v, %v", tt.cell, got, ok, tt.want, tt.ok)
		}
		if ok && CellIndex(got, 4) != tt.cell {
			t.Errorf("CellIndex(%v) = %d, want %d", got, CellIndex(got, 4), tt.cell)
		}
	}
}

func TestGridString(t *testing.T) {
	g := MustParseGrid("A*", "DG")
	want := "[A][*]\n[D][G]"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
