package session

import "github.com/vovakirdan/pou-arcade/internal/core"

// Menu colors
const (
	itemColor     = core.ColorWhite
	selectedColor = core.ColorRed
)

// Item rows in world units.
var (
	mainRows     = []float64{150, 250, 350}
	minigameRows = []float64{100, 200, 300, 400}
	settingsRows = mainRows
)

// Main menu entries
const (
	mainMinigames = iota
	mainSettings
	mainExit
)

// Settings menu entries
const (
	settingsSkin = iota
	settingsAudio
	settingsBack
)

// menu is a vertical list with a wrapping cursor.
type menu struct {
	cursor int
	size   int
}

// move shifts the cursor by delta, wrapping around.
func (m *menu) move(delta int) {
	m.cursor = core.Wrap(m.cursor+delta, m.size)
}

// navigate applies up and down presses.
func (m *menu) navigate(in core.InputFrame) {
	if in.JustPressed(core.ActionUp) {
		m.move(-1)
	}
	if in.JustPressed(core.ActionDown) {
		m.move(1)
	}
}

// selected reports whether the current item was chosen this tick.
func selected(in core.InputFrame) bool {
	return in.JustPressed(core.ActionJump) || in.JustPressed(core.ActionConfirm)
}

// drawMenu draws labels centered at rows, the cursor's item in red.
// If there are fewer rows than labels, extra labels continue the spacing.
func drawMenu(dst core.Surface, labels []string, rows []float64, cursor int) {
	for i, label := range labels {
		c := itemColor
		if i == cursor {
			c = selectedColor
		}
		dst.DrawLabelCentered(rowY(rows, i), label, c)
	}
}

func rowY(rows []float64, i int) float64 {
	if i < len(rows) {
		return rows[i]
	}
	step := 100.0
	if len(rows) > 1 {
		step = rows[1] - rows[0]
	}
	return rows[len(rows)-1] + float64(i-len(rows)+1)*step
}

func audioLabel(on bool) string {
	if on {
		return "Audio: On"
	}
	return "Audio: Off"
}
