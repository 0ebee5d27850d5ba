package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
)

const (
	cellWidth = 3 // "[A]"
	hudHeight = 3
	helpText  = "arrows move  space grab  h hint  r new board  e end  p pause  q quit"
)

// minScreenSize returns the smallest screen the board fits on.
func (g *Game) minScreenSize() (int, int) {
	rows, cols := 4, 4
	if g.engine != nil {
		rows, cols = g.engine.Rows(), g.engine.Cols()
	}
	return core.Max(cols*cellWidth+2, 24), hudHeight + rows + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.engine.grid
	if g.display != nil {
		board = g.display
	}

	boardW := board.Cols() * cellWidth
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, board, boardX, boardY)
	g.renderFooter(dst, boardY+board.Rows()+1)

	if g.paused {
		g.renderPaused(dst)
	}
	if g.gameOver {
		g.renderSummary(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the session counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	st := g.State()
	dst.DrawTextCentered(1, fmt.Sprintf("Moves: %d  Cascades: %d  Cleared: %d", st.Moves, st.Cascades, st.Cleared))
}

// renderBoard draws every cell as a bracketed symbol colored by its alphabet position.
func (g *Game) renderBoard(dst *core.Screen, board *Grid, x0, y0 int) {
	alpha := g.engine.Alphabet()
	idle := g.display == nil

	hintTo := NoCoord
	if g.showHint && idle {
		hintTo = g.hintAt.Step(g.hintDir)
	}

	for r := range board.Rows() {
		for c := range board.Cols() {
			at := At(r, c)
			sym := board.Get(at)
			x := x0 + c*cellWidth
			y := y0 + r

			lb, rb, frame := '[', ']', core.ColorGray
			switch {
			case idle && at == g.cursor && g.grabbed:
				lb, rb, frame = '{', '}', core.ColorYellow
			case idle && at == g.cursor:
				lb, rb, frame = '>', '<', core.ColorWhite
			case g.showHint && idle && (at == g.hintAt || at == hintTo):
				lb, rb, frame = '(', ')', core.ColorCyan
			}

			symColor := core.ColorGray
			if sym != Empty {
				symColor = core.ColorDefault
				if g.cfg.Display.Color {
					symColor = core.PaletteColor(alpha.Index(sym))
				}
			}

			dst.SetColored(x, y, lb, frame)
			dst.SetColored(x+1, y, []rune(sym.String())[0], symColor)
			dst.SetColored(x+2, y, rb, frame)
		}
	}
}

// renderFooter draws the status line and the key help.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.message != "":
		dst.DrawTextCentered(y, g.message)
	case g.display != nil:
		dst.DrawTextCentered(y, "resolving...")
	case g.setupErr != nil:
		msg := "using default board: " + g.setupErr.Error()
		dst.DrawTextColored(core.Max(0, (g.screenW-len(msg))/2), y, msg, core.ColorRed)
	case g.showHint:
		dst.DrawTextCentered(y, fmt.Sprintf("hint: %d %s", CellIndex(g.hintAt, g.engine.Cols()), g.hintDir))
	}
	dst.DrawTextCentered(y+1, helpText)
}

func (g *Game) renderPaused(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "PAUSED")
	dst.DrawTextCentered(y+1, "Press P to resume")
}

// renderSummary draws the end-of-session box.
func (g *Game) renderSummary(dst *core.Screen) {
	st := g.State()
	lines := []string{
		"SESSION OVER",
		"",
		fmt.Sprintf("Moves:    %d", st.Moves),
		fmt.Sprintf("Rejected: %d", st.Rejected),
		fmt.Sprintf("Cascades: %d", st.Cascades),
		fmt.Sprintf("Cleared:  %d", st.Cleared),
		"",
		"R new board  Q quit",
	}

	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	box := core.NewRect((g.screenW-w-4)/2, (g.screenH-len(lines)-2)/2, w+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+1+i, l)
	}
}
