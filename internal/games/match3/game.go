package match3

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Variant is a registered board layout. Its size and alphabet come from the
// variants section of the config.
type Variant struct {
	ID    string
	Title string
}

// Variants lists the boards registered with the platform.
var Variants = []Variant{
	{ID: "classic", Title: "Match-3"},
	{ID: "large", Title: "Match-3 (Large)"},
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset // empty: use the config's preset
	boardFile        string
	gameLogger       *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the config's difficulty preset. The empty
// string keeps the config's choice and unknown names select normal.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetBoardFile makes the next Reset start from a board fixture instead of a random fill.
func SetBoardFile(path string) {
	boardFile = path
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// LoadConfig loads the config named by SetConfigPath and applies the
// difficulty preset.
func LoadConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		return cfg, err
	}
	preset := difficultyPreset
	if preset == "" {
		if preset, err = config.ParseDifficultyPreset(cfg.Difficulty.Preset); err != nil {
			return cfg, err
		}
	}
	config.ApplyMatch3Preset(&cfg, preset)
	return cfg, cfg.Validate()
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game is the playable match-3 board: a cursor, grab-and-swap input and
// step-by-step playback of each cascade.
type Game struct {
	variant Variant
	cfg     config.Match3Config
	engine  *Engine
	tick    uint64

	cursor  Coord
	grabbed bool

	hintAt   Coord
	hintDir  Direction
	showHint bool

	// Cascade playback
	frames     []Event
	display    *Grid // board on screen while frames are pending, nil when idle
	frameTicks int

	message      string
	messageTicks int

	setupErr error

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the config and deals a fresh board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.paused = false
	g.setupErr = nil
	g.clearTransient()

	cfg, err := LoadConfig()
	if err != nil {
		g.setupErr = err
		cfg = config.DefaultMatch3Config()
		if difficultyPreset != "" {
			config.ApplyMatch3Preset(&cfg, difficultyPreset)
		}
	}
	g.cfg = cfg

	if err := g.newEngine(rc.Seed, boardFile); err != nil {
		g.setupErr = err
		g.cfg = config.DefaultMatch3Config()
		if err := g.newEngine(rc.Seed, ""); err != nil {
			panic(fmt.Sprintf("match3: default board rejected: %v", err))
		}
	}

	g.cursor = Coord{}
	g.checkScreenSize()
}

// newEngine replaces the engine and hooks playback onto it.
func (g *Game) newEngine(seed int64, fixturePath string) error {
	e, err := EngineFromConfig(g.cfg, g.variant.ID, seed, fixturePath, gameLogger)
	if err != nil {
		return err
	}
	e.SetObserver(g.record)
	g.engine = e
	return nil
}

// EngineFromConfig builds an engine for a variant and deals a board, or
// loads it from fixturePath when set. A fixture may override the alphabet.
func EngineFromConfig(cfg config.Match3Config, variant string, seed int64, fixturePath string, logger *log.Logger) (*Engine, error) {
	board := cfg.BoardFor(variant)
	opts := Options{
		Rows:   board.Rows,
		Cols:   board.Cols,
		Policy: PolicyFromConfig(cfg.Refill),
		Seed:   seed,
		Logger: logger,
	}

	var fixture *Grid
	if fixturePath != "" {
		bf, err := config.LoadBoardFile(fixturePath)
		if err != nil {
			return nil, err
		}
		if bf.Alphabet != "" {
			board.Alphabet = bf.Alphabet
		}
		opts.Rows, opts.Cols = bf.Size()
		if fixture, err = ParseGrid(bf.Rows...); err != nil {
			return nil, err
		}
	}

	alpha, err := ParseAlphabet(board.Alphabet)
	if err != nil {
		return nil, err
	}
	opts.Alphabet = alpha

	e, err := NewEngine(opts)
	if err != nil {
		return nil, err
	}
	if fixture != nil {
		if err := e.LoadGrid(fixture); err != nil {
			return nil, err
		}
	} else {
		e.Init()
	}
	return e, nil
}

// PolicyFromConfig maps the refill section to a policy.
func PolicyFromConfig(rc config.RefillConfig) RefillPolicy {
	if rc.AllowChains {
		return RefillChain
	}
	return RefillStrict
}

// record queues an intermediate board for playback.
func (g *Game) record(ev Event) {
	if !g.cfg.Display.ShowSteps || g.cfg.Display.StepDelayTicks == 0 {
		return
	}
	g.frames = append(g.frames, ev)
}

func (g *Game) clearTransient() {
	g.grabbed = false
	g.showHint = false
	g.frames = nil
	g.display = nil
	g.frameTicks = 0
	g.message = ""
	g.messageTicks = 0
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Input waits until the cascade has been shown.
	if g.display != nil {
		g.advancePlayback()
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionEnd):
		g.gameOver = true
		g.clearTransient()
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionSelect):
		g.grabbed = !g.grabbed
	case in.Has(core.ActionHint):
		g.hintAt, g.hintDir, g.showHint = g.engine.Hint()
	case in.Has(core.ActionBack):
		g.grabbed = false
		g.showHint = false
	default:
		for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
			if in.Has(a) {
				g.handleDirection(actionDirection(a))
				break
			}
		}
	}

	return core.StepResult{State: g.State()}
}

func actionDirection(a core.Action) Direction {
	switch a {
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirUp
	}
}

// handleDirection moves the cursor, or swaps when a cell is grabbed.
func (g *Game) handleDirection(d Direction) {
	if !g.grabbed {
		next := g.cursor.Step(d)
		next.Row = core.Clamp(next.Row, 0, g.engine.Rows()-1)
		next.Col = core.Clamp(next.Col, 0, g.engine.Cols()-1)
		g.cursor = next
		return
	}

	g.grabbed = false
	switch g.engine.ApplySwap(g.cursor, d) {
	case ResultOutOfBounds:
		g.flash("cannot swipe")
	case ResultNoMatch:
		g.flash("no match")
	case ResultApplied:
		g.showHint = false
		g.advancePlayback()
	}
}

// advancePlayback shows the next queued board, or ends playback.
func (g *Game) advancePlayback() {
	if g.frameTicks > 0 {
		g.frameTicks--
		return
	}
	if len(g.frames) == 0 {
		g.display = nil
		return
	}
	g.display = g.frames[0].Grid
	g.frames = g.frames[1:]
	g.frameTicks = g.cfg.Display.StepDelayTicks
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = 45
}

// restart deals a new board with the same engine settings.
func (g *Game) restart() {
	g.engine.Init()
	g.gameOver = false
	g.clearTransient()
	g.cursor = Coord{}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Busy:     g.display != nil,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.engine != nil {
		s := g.engine.Stats()
		st.Moves = s.MovesApplied
		st.Rejected = s.MovesRejected
		st.Cascades = s.Cascades
		st.Cleared = s.CellsCleared
	}
	return st
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// SetupError returns the config or board error that made Reset fall back to
// the default board, if any.
func (g *Game) SetupError() error {
	return g.setupErr
}

// Resize updates the screen size without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}
