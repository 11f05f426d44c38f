package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// bindings maps every action to its keys.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionJump:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionBack:    {ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// heldActions returns the actions with at least one key down.
func heldActions(isDown func(ebiten.Key) bool) map[core.Action]bool {
	held := make(map[core.Action]bool)
	for a, keys := range bindings {
		for _, k := range keys {
			if isDown(k) {
				held[a] = true
				break
			}
		}
	}
	return held
}
