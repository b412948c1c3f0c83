package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/games/jewels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board variants",
	Long:  `Shows every registered board variant with its size and color count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	base := jewels.Config()

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2
	for _, v := range jewels.Variants() {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Board", "Colors", "Title")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")
	for _, v := range jewels.Variants() {
		size, colors := base.Board.Size, base.Board.Colors
		if v.Preset != "" {
			size, colors = config.BoardForPreset(v.Preset)
		}
		board := fmt.Sprintf("%dx%d", size, size)
		fmt.Printf("  %-*s  %-7s  %-6d  %s\n", maxIDLen, v.ID, board, colors, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'jewels play <id>' to play a variant.")
}
