package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant in the TUI",
	Long: `Start a match-3 board in the full-screen terminal UI.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Grab a cell, then press a direction to swap
  H            - Show a hint
  E            - End the session and show the summary
  R            - New board
  P            - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - One symbol fewer, matches come easily
  normal - The configured symbols
  hard   - One extra symbol from the reserve

Examples:
  match3 play
  match3 play large
  match3 play --difficulty hard --seed 7
  match3 play --board ./boards/tricky.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := registry.DefaultID
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'match3 list' to see available variants", variantID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()
	match3.SetLogger(logger)

	game, err := registry.Create(variantID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
