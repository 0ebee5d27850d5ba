package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Board   []string // live board, one string per row
	Cursor  Coord
	Grabbed bool
	Moves   int
	Pending int // playback frames not yet shown
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.display != nil:
		state = StateResolving
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Board:   g.engine.grid.Lines(),
		Cursor:  g.cursor,
		Grabbed: g.grabbed,
		Moves:   g.engine.Stats().MovesApplied,
		Pending: len(g.frames),
		State:   state,
	}
}
