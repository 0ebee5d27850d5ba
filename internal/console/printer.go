package console

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

// Printer writes boards, skipping a board identical to the last one printed.
type Printer struct {
	w    io.Writer
	last *match3.Grid
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes g surrounded by blank lines unless it equals the last printed
// board. repeat forces the print.
func (p *Printer) Print(g *match3.Grid, repeat bool) {
	if !repeat && p.last != nil && p.last.Equal(g) {
		return
	}
	fmt.Fprintf(p.w, "\n%s\n\n", g)
	p.last = g.Clone()
}
