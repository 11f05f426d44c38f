// Package hopper implements Sky Hop.
// Pou hops up a tower of cloud rows, landing only on the one step in
// each row, while a time bar drains.
package hopper

import (
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/games/common"
	"github.com/vovakirdan/pou-arcade/internal/registry"
)

// Time bar height in world units, drawn along the bottom edge.
const barHeight = 40

// Visual styles for rendering
var (
	stepPaint  = core.Paint{Rune: '█', Color: core.ColorYellow}
	cloudPaint = core.Paint{Rune: '▒', Color: core.ColorBrightWhite}
	barBack    = core.Paint{Rune: '░', Color: core.ColorGray}
	barFill    = core.Paint{Rune: '█', Color: core.ColorGreen}
)

// Game implements the Sky Hop logic.
type Game struct {
	x, y      float64
	hopping   bool    // Mid-hop; new hops are ignored
	hopVel    float64 // Vertical hop velocity, counts up to HopEnd
	dir       float64 // +1 right, -1 left
	scrolling bool    // Rows are sliding down
	scrollVel float64
	score     int
	pressure  float64 // Elapsed-time meter; the round ends past the world width
	rows      *RowStream
	round     common.Round
	cfg       config.HopperConfig
	world     config.WorldConfig
}

// New creates a Sky Hop game ready to play.
func New(rt core.RuntimeConfig, cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(rt.Seed))
	g := &Game{
		rows:  NewRowStream(rng, cfg.Hopper.Cells, cfg.World),
		round: common.NewRound(core.CueHopperMusic),
		cfg:   cfg.Hopper,
		world: cfg.World,
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hop"
}

// Reset restores the starting values.
func (g *Game) Reset() {
	p := g.cfg.Player
	g.x = g.world.Width/2 - p.Size/2
	g.y = p.Y
	g.hopping = false
	g.hopVel = p.HopVelocity
	g.dir = 1
	g.scrolling = false
	g.scrollVel = g.cfg.Scroll.Start
	g.score = 0
	g.pressure = 0
	g.rows.Reset()
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

	if !g.hopping {
		switch {
		case in.JustPressed(core.ActionRight):
			g.startHop(1, snd)
		case in.JustPressed(core.ActionLeft):
			g.startHop(-1, snd)
		}
	}

	p := g.cfg.Player
	if g.hopping {
		g.y += g.hopVel
		g.x += g.dir * p.HopDX
		g.hopVel++
		if g.hopVel >= p.HopEnd {
			g.hopping = false
			g.hopVel = p.HopVelocity
			g.score++
			g.pressure -= g.cfg.Pressure.HopRelief
		}
	}

	if g.x < p.MinX || g.x > p.MaxX {
		g.round.End(snd)
	}

	if g.rows.Collide(g.playerRect()) {
		g.round.End(snd)
	}

	if g.scrolling {
		g.rows.Scroll(g.scrollVel)
		g.scrollVel--
		if g.scrollVel <= g.cfg.Scroll.Floor {
			g.scrolling = false
			g.scrollVel = g.cfg.Scroll.Start
		}
	}

	g.rows.Recycle()

	g.pressure += 1 + float64(g.score)/float64(g.cfg.Pressure.ScoreDivisor)
	g.pressure = max(g.pressure, 0)
	if g.pressure > g.world.Width {
		g.round.End(snd)
	}

	return core.StepResult{State: g.State()}
}

// startHop begins a hop in direction dir and starts the rows scrolling.
func (g *Game) startHop(dir float64, snd core.Sound) {
	g.hopping = true
	g.dir = dir
	g.scrolling = true
	snd.Play(core.CueJump)
}

// playerRect returns the character's collision rectangle.
func (g *Game) playerRect() core.Rect {
	s := g.cfg.Player.Size
	return core.NewRect(g.x, g.y, s, s)
}

// Render draws the current game state.
func (g *Game) Render(dst core.Surface, skin core.Skin) {
	if g.round.Over() {
		common.DrawGameOver(dst, g.score)
		return
	}

	for _, rows := range [][]Row{g.rows.FourWide(), g.rows.ThreeWide()} {
		for _, row := range rows {
			for _, c := range row.Cells {
				if c.Kind == core.KindStep {
					dst.FillRect(c.Rect, stepPaint)
				} else {
					dst.FillRect(c.Rect, cloudPaint)
				}
			}
		}
	}

	dst.FillRect(g.playerRect(), core.Paint{Rune: skin.Glyph(), Color: skin.Color()})

	common.DrawScore(dst, g.score)

	w, h := g.world.Width, g.world.Height
	dst.FillRect(core.NewRect(0, h-barHeight, w, barHeight), barBack)
	dst.FillRect(core.NewRect(0, h-barHeight, w-g.pressure, barHeight), barFill)
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
	registry.Register("hopper", func(rt core.RuntimeConfig, cfg config.Config) registry.Game {
		return New(rt, cfg)
	})
}
