package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/console"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagNoSteps bool

var consoleCmd = &cobra.Command{
	Use:   "console [variant]",
	Short: "Play with the classic cell/direction prompt",
	Long: `Play on stdin/stdout. The board is printed as [A][D]..., cells are
numbered 1..rows*cols left to right, top to bottom.

Each move asks for a cell number, then a direction:
  W/A/S/D  - Swap with the neighbour above, left, below, right
  hint     - Print a move that makes a match
  exit     - Quit

Examples:
  match3 console
  match3 console large --seed 42
  echo "exit" | match3 console`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&flagNoSteps, "no-steps", false, "Print only the settled board after each move")
}

func runConsole(_ *cobra.Command, args []string) error {
	variantID := registry.DefaultID
	if len(args) > 0 {
		variantID = args[0]
	}
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'match3 list' to see available variants", variantID)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := match3.LoadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := match3.EngineFromConfig(cfg, variantID, seed, flagBoard, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	showSteps := cfg.Display.ShowSteps && !flagNoSteps
	sess := console.NewSession(engine, os.Stdin, os.Stdout,
		console.WithLogger(logger),
		console.WithSteps(showSteps),
	)
	runErr := sess.Run(ctx)

	st := sess.Stats()
	if store != nil && st.MovesApplied > 0 {
		_, err := store.SaveSession(storage.Session{
			Variant:      variantID,
			Frontend:     "console",
			Moves:        st.MovesApplied,
			Rejected:     st.MovesRejected,
			Cascades:     st.Cascades,
			CellsCleared: st.CellsCleared,
			Seed:         seed,
			Duration:     int(time.Since(started).Seconds()),
		})
		if err != nil {
			logger.Warn("session not saved", "variant", variantID, "err", err)
		}
	}

	return runErr
}
