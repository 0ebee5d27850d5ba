package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

// Session runs the prompt loop against one engine.
type Session struct {
	engine    *match3.Engine
	in        *bufio.Scanner
	out       io.Writer
	printer   *Printer
	logger    *log.Logger
	showSteps bool

	lines chan inputLine // fed by readInput while Run is active
	done  chan struct{}
}

// inputLine is one scanned line, or the error that ended the input.
type inputLine struct {
	text string
	err  error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSteps prints every intermediate board of a cascade, not only the result.
func WithSteps(show bool) Option {
	return func(s *Session) { s.showSteps = show }
}

// NewSession creates a session. The engine must already hold a board.
func NewSession(e *match3.Engine, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine:    e,
		in:        bufio.NewScanner(in),
		out:       out,
		printer:   NewPrinter(out),
		logger:    log.New(io.Discard),
		showSteps: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints the banner and the board, then reads moves until "exit", end of
// input or cancellation of ctx. Those all end the session with a nil error.
func (s *Session) Run(ctx context.Context) error {
	s.lines = make(chan inputLine)
	s.done = make(chan struct{})
	defer close(s.done)
	go s.readInput()

	cells := s.engine.Rows() * s.engine.Cols()
	s.banner(cells)
	s.printer.Print(s.engine.Snapshot(), true)

	if s.showSteps {
		s.engine.SetObserver(func(ev match3.Event) {
			s.printer.Print(ev.Grid, false)
		})
		defer s.engine.SetObserver(nil)
	}

	for {
		cell, err := s.readCell(ctx, cells)
		if err != nil {
			return s.finish(err)
		}
		dir, err := s.readDirection(ctx)
		if err != nil {
			return s.finish(err)
		}

		res := s.engine.ApplyMove(cell, dir)
		s.logger.Debug("move", "cell", cell, "dir", dir, "result", res)
		switch res {
		case match3.ResultOutOfBounds:
			fmt.Fprint(s.out, "\ncannot swipe\n\n")
		case match3.ResultNoMatch:
			fmt.Fprint(s.out, "\nno match\n\n")
		}
		s.printer.Print(s.engine.Snapshot(), false)
	}
}

// Stats returns the engine counters for the session.
func (s *Session) Stats() match3.Stats {
	return s.engine.Stats()
}

func (s *Session) banner(cells int) {
	fmt.Fprintln(s.out, "Match 3")
	fmt.Fprintln(s.out, "-------")
	fmt.Fprintf(s.out, "This program recreates the basic mechanics of a match 3 game on a %dx%d grid.\n", s.engine.Rows(), s.engine.Cols())
	fmt.Fprintf(s.out, "Enter a position on the board, the numbering starts as 1 in the top left and ends at %d in the bottom right.\n", cells)
	fmt.Fprintln(s.out, "Then enter a direction to swipe in using the 'W/A/S/D' keys.")
	fmt.Fprintln(s.out, "Enter 'hint' for a possible move, 'exit' to exit the program.")
}

// finish turns the ways a session can end into a nil error.
func (s *Session) finish(err error) error {
	if errors.Is(err, ErrExit) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readInput scans the input on its own goroutine so a blocked read does not
// hold up cancellation. It stops at the end of input or when Run returns.
func (s *Session) readInput() {
	for s.in.Scan() {
		select {
		case s.lines <- inputLine{text: s.in.Text()}:
		case <-s.done:
			return
		}
	}

	err := io.EOF
	if scanErr := s.in.Err(); scanErr != nil {
		err = fmt.Errorf("console: cannot read input: %w", scanErr)
	}
	select {
	case s.lines <- inputLine{err: err}:
	case <-s.done:
	}
}

// readLine prompts and returns the next line. Running out of input is io.EOF.
// It returns ctx.Err() as soon as ctx is done, even while the read is blocked.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case l := <-s.lines:
		return l.text, l.err
	}
}

func (s *Session) readCell(ctx context.Context, cells int) (int, error) {
	for {
		line, err := s.readLine(ctx, fmt.Sprintf("Enter a cell space(1-%d): ", cells))
		if err != nil {
			return 0, err
		}
		if normalize(line) == "hint" {
			s.hint()
			continue
		}

		cell, err := ParseCell(line, cells)
		switch {
		case err == nil:
			return cell, nil
		case errors.Is(err, ErrNotANumber):
			fmt.Fprintf(s.out, "Invalid Input: Enter a number from 1-%d.\n\n", cells)
		case errors.Is(err, ErrCellOutOfRange):
			fmt.Fprint(s.out, "Invalid Input: Space number out of bounds.\n\n")
		default:
			return 0, err
		}
	}
}

func (s *Session) readDirection(ctx context.Context) (match3.Direction, error) {
	for {
		line, err := s.readLine(ctx, "Enter a direction: ")
		if err != nil {
			return 0, err
		}

		dir, err := ParseDirection(line)
		switch {
		case err == nil:
			return dir, nil
		case errors.Is(err, ErrUnknownDirection):
			fmt.Fprint(s.out, "Invalid Input: Invalid direction. Enter W/A/S/D.\n\n")
		default:
			return 0, err
		}
	}
}

func (s *Session) hint() {
	at, dir, ok := s.engine.Hint()
	if !ok {
		fmt.Fprint(s.out, "no possible move\n\n")
		return
	}
	fmt.Fprintf(s.out, "try cell %d, direction %s\n\n", match3.CellIndex(at, s.engine.Cols()), DirectionKey(dir))
}
