package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with the main menu",
	Long: `Start the arcade in interactive menu mode.

Controls:
  W/S or Up/Down  - Navigate menus
  A/D or Left/Right - Move, hop, change skin
  Space           - Select, jetpack
  Enter           - Select, play again after game over
  Esc             - Back to the previous menu
  Q               - Quit

Examples:
  pou menu
  pou menu --fps 30
  pou menu --window`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runArcade("")
}
