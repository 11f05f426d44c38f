package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pou-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a minigame",
	Long: `Start playing the specified minigame without the menus.
Pressing Escape leaves the game and exits.

Examples:
  pou play catcher
  pou play dodger --seed 42
  pou play hopper --config ./my-pou.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pou list' to see available games", gameID)
	}
	return runArcade(gameID)
}
