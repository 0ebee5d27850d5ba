// match3 is a match-3 puzzle for the terminal: swap neighbouring symbols to
// line up three or more and watch the board clear, drop and refill.
//
// Usage:
//
//	match3 list                 - List board variants
//	match3 play [variant]       - Play in the full-screen TUI
//	match3 console [variant]    - Play with the line-oriented prompt
//	match3 menu                 - Pick a variant interactively
//	match3 history [variant]    - Show recent sessions and totals
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/history.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Symbol set preset: easy, normal, hard
//	--board <path>        - Start from a board fixture YAML
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagBoard      string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap symbols, clear lines, chain cascades",
	Long: `Match-3 is a terminal puzzle. Swap two neighbouring symbols so that
three or more of a kind line up; they clear, the column drops and new
symbols fall in, sometimes setting off a chain.

Available commands:
  list     - Show all board variants
  play     - Play a variant in the TUI
  console  - Play with the classic cell/direction prompt
  menu     - Interactive variant picker
  history  - Recent sessions and totals

Examples:
  match3 play
  match3 play large --difficulty hard
  match3 console --seed 42
  match3 history classic --tui`,
	PersistentPreRunE: applyGameFlags,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", "", "Start from a board fixture YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
}

// applyGameFlags hands the config flags to the game package before any
// board is dealt.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	match3.SetBoardFile(flagBoard)
	return nil
}
