package common

import (
	"fmt"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// HUD placement in world units.
const (
	ScoreX     = 50
	ScoreY     = 50
	MarginX    = 50
	OverTitleY = 150
	OverRetryY = 250
	OverBackY  = 350

	HUDColor = core.ColorWhite
)

// DrawScore draws the running score in the top-left corner.
func DrawScore(dst core.Surface, score int) {
	dst.DrawLabel(ScoreX, ScoreY, fmt.Sprintf("Score: %d", score), HUDColor)
}

// DrawTopRight draws a short label right-aligned at the score's height.
func DrawTopRight(dst core.Surface, text string) {
	w, _ := dst.Size()
	dst.DrawLabelRight(w-MarginX, ScoreY, text, HUDColor)
}

// DrawGameOver draws the final score and the restart/leave prompts.
func DrawGameOver(dst core.Surface, score int) {
	dst.DrawLabelCentered(OverTitleY, fmt.Sprintf("Final score: %d", score), core.ColorBrightYellow)
	dst.DrawLabelCentered(OverRetryY, "Press Enter to play again", HUDColor)
	dst.DrawLabelCentered(OverBackY, "Press Escape to open main menu", HUDColor)
}
