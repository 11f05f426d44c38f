// Package dodger implements Jet Pou.
// Pou flies a jetpack through gaps between scrolling trees.
package dodger

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/games/common"
	"github.com/vovakirdan/pou-arcade/internal/registry"
)

// Scenery layout in world units
const (
	groundHeight = 40
	tuftSpacing  = 100
	cloudSpacing = 300
	cloudY       = 120
)

// Visual styles for rendering
var (
	treePaint    = core.Paint{Rune: '█', Color: core.ColorGreen}
	trunkPaint   = core.Paint{Rune: '▒', Color: core.ColorOrange}
	groundPaint  = core.Paint{Rune: '▀', Color: core.ColorBrightGreen}
	tuftPaint    = core.Paint{Rune: '"', Color: core.ColorGreen}
	cloudPaint   = core.Paint{Rune: '░', Color: core.ColorBrightWhite}
	jetpackPaint = core.Paint{Rune: '▌', Color: core.ColorGray}
)

// Game implements the Jet Pou logic.
type Game struct {
	y       float64 // Character top; x is fixed
	vel     float64 // Vertical velocity, positive is down
	canJump bool    // Cleared by a thrust, restored when the key is released
	score   int     // Tree pairs passed
	bgX     float64 // Background scroll offset
	groundX float64 // Ground scroll offset
	trees   *TreeStream
	round   common.Round
	cfg     config.DodgerConfig
	world   config.WorldConfig
}

// New creates a Jet Pou game ready to play.
func New(rt core.RuntimeConfig, cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(rt.Seed))
	g := &Game{
		trees: NewTreeStream(rng, cfg.Dodger.Trees),
		round: common.NewRound(core.CueDodgerMusic),
		cfg:   cfg.Dodger,
		world: cfg.World,
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jet Pou"
}

// Reset restores the starting values.
func (g *Game) Reset() {
	g.y = g.cfg.Player.StartY
	g.vel = g.cfg.Player.StartVelocity
	g.canJump = true
	g.score = 0
	g.bgX = 0
	g.groundX = 0
	g.trees.Reset()
	g.round.Reset()
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

	g.scroll()

	p := g.cfg.Player
	thrust := in.IsHeld(core.ActionJump)
	if thrust && g.canJump && g.y > p.Ceiling {
		g.vel = p.JumpStrength
		g.canJump = false
		snd.Play(core.CueJetpack)
	}

	g.y += g.vel
	g.vel += p.Gravity

	if !thrust {
		g.canJump = true
	}

	if g.y > p.FallLimit {
		g.round.End(snd)
	}

	hit, passed := g.trees.Advance(g.hitbox())
	g.score += passed
	if hit {
		g.round.End(snd)
	}

	return core.StepResult{State: g.State()}
}

// scroll moves both scenery layers and wraps them after one screen width.
func (g *Game) scroll() {
	g.bgX = wrapScroll(g.bgX-g.cfg.Scenery.BackgroundSpeed, g.world.Width)
	g.groundX = wrapScroll(g.groundX-g.cfg.Scenery.GroundSpeed, g.world.Width)
}

func wrapScroll(x, width float64) float64 {
	if x <= -width {
		return 0
	}
	return x
}

// hitbox returns the character's collision rectangle, trimmed top and bottom.
func (g *Game) hitbox() core.Rect {
	p := g.cfg.Player
	return core.NewRect(p.X, g.y, p.Size, p.Size).InsetY(p.HitboxInset)
}

// Render draws the current game state.
func (g *Game) Render(dst core.Surface, skin core.Skin) {
	g.drawScenery(dst)

	if g.round.Over() {
		common.DrawGameOver(dst, g.score)
		return
	}

	for _, pair := range g.trees.Pairs() {
		dst.FillRect(pair.Upper.Rect, treePaint)
		dst.FillRect(pair.Lower.Rect, treePaint)
		// Trunks: the upper tree hangs, the lower one grows
		trunkW := pair.Lower.Rect.W / 5
		trunkX := pair.X() + (pair.Lower.Rect.W-trunkW)/2
		dst.FillRect(core.NewRect(trunkX, pair.Upper.Rect.Y, trunkW, pair.Upper.Rect.H/4), trunkPaint)
		dst.FillRect(core.NewRect(trunkX, pair.Lower.Rect.Bottom()-pair.Lower.Rect.H/4, trunkW, pair.Lower.Rect.H/4), trunkPaint)
	}

	p := g.cfg.Player
	dst.FillRect(core.NewRect(p.X-20, g.y, p.Size-15, p.Size-20), jetpackPaint)
	dst.FillRect(core.NewRect(p.X, g.y, p.Size, p.Size), core.Paint{Rune: skin.Glyph(), Color: skin.Color()})

	common.DrawScore(dst, g.score)
}

// drawScenery draws the scrolling clouds and ground.
func (g *Game) drawScenery(dst core.Surface) {
	w, h := g.world.Width, g.world.Height

	for x := math.Mod(g.bgX, cloudSpacing); x < w; x += cloudSpacing {
		dst.FillRect(core.NewRect(x+40, cloudY, 120, 30), cloudPaint)
	}

	groundY := h - groundHeight
	dst.FillRect(core.NewRect(0, groundY, w, groundHeight), groundPaint)
	for x := math.Mod(g.groundX, tuftSpacing); x < w; x += tuftSpacing {
		dst.FillRect(core.NewRect(x, groundY-10, 10, 10), tuftPaint)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.round.Over(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("dodger", func(rt core.RuntimeConfig, cfg config.Config) registry.Game {
		return New(rt, cfg)
	})
}
