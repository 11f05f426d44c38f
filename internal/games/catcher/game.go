// Package catcher implements Food Drop.
// Pou slides along the ground catching falling food while avoiding trash.
package catcher

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/games/common"
	"github.com/vovakirdan/pou-arcade/internal/registry"
)

// Visual styles for rendering
var (
	foodLooks = []core.Paint{
		{Rune: '●', Color: core.ColorRed},
		{Rune: '◆', Color: core.ColorYellow},
		{Rune: '▲', Color: core.ColorGreen},
		{Rune: '♥', Color: core.ColorBrightRed},
		{Rune: '♣', Color: core.ColorBrightGreen},
		{Rune: '■', Color: core.ColorOrange},
	}
	trashLooks = []core.Paint{
		{Rune: '▓', Color: core.ColorGray},
		{Rune: '▒', Color: core.ColorGray},
		{Rune: '░', Color: core.ColorMagenta},
		{Rune: '#', Color: core.ColorGray},
	}
	groundPaint = core.Paint{Rune: '▔', Color: core.ColorGreen}
)

// Game implements the Food Drop logic.
type Game struct {
	x      float64      // Character left edge; y is fixed
	score  int          // Food caught
	missed int          // Food that hit the ground
	items  *ItemStream  // Falling food and trash
	round  common.Round // Lifecycle and music
	cfg    config.CatcherConfig
	world  config.WorldConfig
}

// New creates a Food Drop game ready to play.
func New(rt core.RuntimeConfig, cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(rt.Seed))
	g := &Game{
		items: NewItemStream(rng, cfg.Catcher.Items, cfg.World),
		round: common.NewRound(core.CueCatcherMusic),
		cfg:   cfg.Catcher,
		world: cfg.World,
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catcher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Food Drop"
}

// Reset restores the starting values.
func (g *Game) Reset() {
	g.x = g.cfg.Player.X
	g.score = 0
	g.missed = 0
	g.items.Reset()
	g.round.Reset()
}

// Velocity returns the current fall speed of every item.
func (g *Game) Velocity() float64 {
	return float64(g.score)/g.cfg.Fall.ScoreDivisor + g.cfg.Fall.Base
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, ctx core.TickContext) core.StepResult {
	snd := ctx.Sound()
	switch g.round.Begin(in, snd) {
	case common.GateExit:
		g.Reset()
		return core.StepResult{State: g.State(), Outcome: core.OutcomeReturnToMenu}
	case common.GateRestart:
		g.Reset()
		return core.StepResult{State: g.State()}
	case common.GateHold:
		return core.StepResult{State: g.State()}
	}

	g.move(in)
	g.items.Refill()

	player := g.playerRect()

	caught, missed := g.items.AdvanceFood(g.Velocity(), player)
	for range caught {
		g.score++
		snd.Play(core.CueEat)
	}
	g.missed += missed

	if g.items.AdvanceTrash(g.Velocity(), player) {
		g.round.End(snd)
	}

	if g.missed > g.cfg.MaxMisses {
		g.round.End(snd)
	}

	return core.StepResult{State: g.State()}
}

// move slides the character while a direction is held.
func (g *Game) move(in core.InputFrame) {
	if in.IsHeld(core.ActionRight) {
		g.x += g.cfg.Player.Speed
	}
	if in.IsHeld(core.ActionLeft) {
		g.x -= g.cfg.Player.Speed
	}
	g.x = core.ClampF(g.x, 0, g.world.Width-g.cfg.Player.Size)
}

// playerRect returns the character's collision rectangle.
func (g *Game) playerRect() core.Rect {
	p := g.cfg.Player
	return core.NewRect(g.x, p.Y, p.Size, p.Size)
}

// Render draws the current game state.
func (g *Game) Render(dst core.Surface, skin core.Skin) {
	if g.round.Over() {
		common.DrawGameOver(dst, g.score)
		return
	}

	ground := g.cfg.Player.Y + g.cfg.Player.Size
	dst.FillRect(core.NewRect(0, ground, g.world.Width, g.world.Height-ground), groundPaint)

	dst.FillRect(g.playerRect(), core.Paint{Rune: skin.Glyph(), Color: skin.Color()})

	for _, f := range g.items.Food() {
		dst.FillRect(f.Rect, foodLooks[f.Variant%len(foodLooks)])
	}
	for _, t := range g.items.Trash() {
		dst.FillRect(t.Rect, trashLooks[t.Variant%len(trashLooks)])
	}

	common.DrawScore(dst, g.score)
	common.DrawTopRight(dst, fmt.Sprintf("Missed: %d/%d", g.missed, g.cfg.MaxMisses+1))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.round.Over(),
	}
}

// Missed returns how many food items hit the ground this round.
func (g *Game) Missed() int {
	return g.missed
}

// Register the game with the registry
func init() {
	registry.Register("catcher", func(rt core.RuntimeConfig, cfg config.Config) registry.Game {
		return New(rt, cfg)
	})
}
