package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagHistoryTUI   bool
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recent sessions and totals",
	Long: `Display the most recent sessions of a variant with aggregate stats.

Examples:
  match3 history
  match3 history large --limit 20
  match3 history --tui
  match3 history classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history in the table view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the variant's history")
}

func runHistory(_ *cobra.Command, args []string) error {
	variantID := registry.DefaultID
	if len(args) > 0 {
		variantID = args[0]
	}
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'match3 list' to see available variants", variantID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(variantID); err != nil {
			return err
		}
		fmt.Printf("History of %s cleared.\n", variantID)
		return nil
	}

	if flagHistoryTUI {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH, variantID)
		return err
	}

	return printHistory(store, variantID, flagHistoryLimit)
}

// printHistory writes the plain-text history of one variant.
func printHistory(store *storage.Store, variantID string, limit int) error {
	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	sessions, err := store.RecentSessions(variantID, limit)
	if err != nil {
		return err
	}
	stats, err := store.VariantStats(variantID)
	if err != nil {
		return err
	}

	fmt.Printf("Session History - %s\n", game.Title())
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' and end a board with E to record one.\n", variantID)
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-8s  %-8s  %-7s  %s\n", "#", "Moves", "Cascades", "Cleared", "Via", "Date")
	fmt.Printf("  %-5s  %-6s  %-8s  %-8s  %-7s  %s\n", "-", "-----", "--------", "-------", "---", "----")
	for _, s := range sessions {
		fmt.Printf("  %-5d  %-6d  %-8d  %-8d  %-7s  %s\n",
			s.ID, s.Moves, s.Cascades, s.CellsCleared, s.Frontend, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Sessions: %d  Moves: %d (avg %.1f)  Cleared: %d  Best cascade count: %d\n",
		stats.Sessions, stats.TotalMoves, stats.AvgMoves, stats.TotalCleared, stats.MaxCascades)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
