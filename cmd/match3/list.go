package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant with its size and symbols.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	cfg, err := match3.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, v := range variants {
		b := cfg.BoardFor(v.ID)
		marker := ""
		if v.ID == registry.DefaultID {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-*s  %dx%d %s%s\n", maxIDLen, v.ID, maxTitleLen, v.Title, b.Rows, b.Cols, b.Alphabet, marker)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play a variant.")
	return nil
}
