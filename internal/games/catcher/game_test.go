package catcher

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/pou-arcade/internal/audio/audiotest"
	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

func newGame(seed int64) (*Game, *audiotest.Recorder, core.TickContext) {
	snd := &audiotest.Recorder{Busy: true}
	g := New(core.RuntimeConfig{TickRate: 60, Seed: seed}, config.Default())
	return g, snd, core.TickContext{Skin: core.SkinDefault, Audio: snd}
}

func item(kind core.Kind, x, y float64) core.Entity {
	return core.Entity{Rect: core.NewRect(x, y, 50, 50), Kind: kind}
}

// park fills both lists with items far above the screen so nothing spawns
// and nothing lands during the next tick.
func park(g *Game) {
	g.items.food = []core.Entity{item(core.KindFood, 0, -50000), item(core.KindFood, 0, -50000)}
	g.items.trash = []core.Entity{item(core.KindTrash, 0, -50000)}
}

func pressed(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Press(a)
	return f
}

func held(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Hold(a)
	return f
}

func TestStartingState(t *testing.T) {
	g, _, _ := newGame(1)

	if g.State().Score != 0 || g.Missed() != 0 || g.State().GameOver {
		t.Errorf("unexpected start state: %+v missed=%d", g.State(), g.Missed())
	}
	if g.x != 550 {
		t.Errorf("x = %v, want 550", g.x)
	}
	if len(g.items.Food()) != 0 || len(g.items.Trash()) != 0 {
		t.Error("item lists should start empty")
	}
}

func TestFiveMissesEndRound(t *testing.T) {
	g, snd, ctx := newGame(1)

	for i := 1; i <= 5; i++ {
		g.items.food = []core.Entity{item(core.KindFood, 0, 600), item(core.KindFood, 0, -50000)}
		g.items.trash = []core.Entity{item(core.KindTrash, 0, -50000)}
		res := g.Step(core.NewInputFrame(), ctx)

		if g.Missed() != i {
			t.Fatalf("after tick %d missed = %d", i, g.Missed())
		}
		if wantOver := i == 5; res.State.GameOver != wantOver {
			t.Fatalf("after %d misses GameOver = %v, want %v", i, res.State.GameOver, wantOver)
		}
	}

	if n := snd.PlayCount(core.CueGameOver); n != 1 {
		t.Errorf("game over cue played %d times, want 1", n)
	}
	if !snd.WasStopped(core.CueCatcherMusic) {
		t.Error("music should stop at game over")
	}

	// Stays over until confirm or back
	x := g.x
	for range 30 {
		res := g.Step(held(core.ActionLeft), ctx)
		if !res.State.GameOver || res.Outcome != core.OutcomeContinue {
			t.Fatalf("game over should hold, got %+v", res)
		}
	}
	if g.x != x || g.Missed() != 5 {
		t.Error("nothing should move after game over")
	}
}

func TestVelocityFollowsScore(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 3},
		{4, 3.8},
		{5, 4},
		{10, 5},
		{23, 7.6},
	}

	g, _, _ := newGame(1)
	prev := 0.0
	for _, tt := range tests {
		g.score = tt.score
		got := g.Velocity()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("score %d: velocity = %v, want %v", tt.score, got, tt.want)
		}
		if got < prev {
			t.Errorf("velocity decreased at score %d", tt.score)
		}
		prev = got
	}
}

func TestCatchAtScoreTen(t *testing.T) {
	g, snd, ctx := newGame(1)
	g.score = 10

	if got := g.Velocity(); got != 5.0 {
		t.Fatalf("Velocity() = %v, want 5.0", got)
	}

	target := item(core.KindFood, 575, 340)
	g.items.food = []core.Entity{target, item(core.KindFood, 0, -50000)}
	g.items.trash = []core.Entity{item(core.KindTrash, 0, -50000)}

	g.Step(core.NewInputFrame(), ctx)

	if g.State().Score != 11 {
		t.Errorf("score = %d, want 11", g.State().Score)
	}
	for _, f := range g.items.Food() {
		if f.Rect.X == 575 {
			t.Error("caught food should be removed")
		}
	}
	if snd.PlayCount(core.CueEat) != 1 {
		t.Errorf("eat cue played %d times, want 1", snd.PlayCount(core.CueEat))
	}
}

func TestTwoCatchesInOneTick(t *testing.T) {
	g, snd, ctx := newGame(1)

	g.items.food = []core.Entity{item(core.KindFood, 560, 340), item(core.KindFood, 600, 340)}
	g.items.trash = []core.Entity{item(core.KindTrash, 0, -50000)}

	g.Step(core.NewInputFrame(), ctx)

	if g.State().Score != 2 {
		t.Errorf("score = %d, want 2", g.State().Score)
	}
	if snd.PlayCount(core.CueEat) != 2 {
		t.Errorf("eat cue played %d times, want 2", snd.PlayCount(core.CueEat))
	}
}

func TestTrashEndsRound(t *testing.T) {
	g, snd, ctx := newGame(1)

	g.items.food = []core.Entity{item(core.KindFood, 0, -50000), item(core.KindFood, 0, -50000)}
	g.items.trash = []core.Entity{item(core.KindTrash, 575, 340)}

	res := g.Step(core.NewInputFrame(), ctx)
	if !res.State.GameOver {
		t.Fatal("touching trash should end the round")
	}
	if snd.PlayCount(core.CueGameOver) != 1 || !snd.WasStopped(core.CueCatcherMusic) {
		t.Errorf("cues: played %v stopped %v", snd.Played, snd.Stopped)
	}
}

func TestTrashBelowScreenIsDropped(t *testing.T) {
	g, _, ctx := newGame(1)

	g.items.food = []core.Entity{item(core.KindFood, 0, -50000), item(core.KindFood, 0, -50000)}
	g.items.trash = []core.Entity{item(core.KindTrash, 0, 599)}

	g.Step(core.NewInputFrame(), ctx)

	if len(g.items.Trash()) != 0 {
		t.Errorf("trash below the screen should be removed, got %v", g.items.Trash())
	}
	if g.Missed() != 0 || g.State().GameOver {
		t.Error("dropped trash carries no penalty")
	}
}

func TestMovementClamped(t *testing.T) {
	g, _, ctx := newGame(1)

	for range 100 {
		park(g)
		g.Step(held(core.ActionRight), ctx)
	}
	if g.x != 1100 {
		t.Errorf("x = %v, want 1100", g.x)
	}

	for range 100 {
		park(g)
		g.Step(held(core.ActionLeft), ctx)
	}
	if g.x != 0 {
		t.Errorf("x = %v, want 0", g.x)
	}
}

func TestRestartRestoresStart(t *testing.T) {
	g, _, ctx := newGame(3)

	park(g)
	g.Step(held(core.ActionRight), ctx)
	g.score = 7
	g.missed = 3
	g.round.End(ctx.Sound())

	res := g.Step(pressed(core.ActionConfirm), ctx)

	if res.State.GameOver || res.Outcome != core.OutcomeContinue {
		t.Fatalf("confirm should restart in place, got %+v", res)
	}
	if g.State().Score != 0 || g.Missed() != 0 || g.x != 550 {
		t.Errorf("not reset: score=%d missed=%d x=%v", g.State().Score, g.Missed(), g.x)
	}
	if len(g.items.Food()) != 0 || len(g.items.Trash()) != 0 {
		t.Error("item lists should be empty after restart")
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	tests := []struct {
		name string
		over bool
	}{
		{"while playing", false},
		{"after game over", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, snd, ctx := newGame(5)
			park(g)
			g.Step(core.NewInputFrame(), ctx)
			g.score = 4
			if tt.over {
				g.round.End(snd)
			}

			res := g.Step(pressed(core.ActionBack), ctx)
			if res.Outcome != core.OutcomeReturnToMenu {
				t.Fatalf("Outcome = %v, want OutcomeReturnToMenu", res.Outcome)
			}
			if g.State() != (core.GameState{}) {
				t.Errorf("leaving should reset, got %+v", g.State())
			}
			if !snd.WasStopped(core.CueCatcherMusic) {
				t.Error("music should be stopped")
			}
		})
	}
}

func TestMusicStartsWhenIdle(t *testing.T) {
	g, snd, ctx := newGame(1)
	snd.Busy = false
	park(g)

	g.Step(core.NewInputFrame(), ctx)
	if snd.PlayCount(core.CueCatcherMusic) != 1 {
		t.Errorf("music not started, played %v", snd.Played)
	}
}

func TestDeterminism(t *testing.T) {
	g1, _, ctx1 := newGame(12345)
	g2, _, ctx2 := newGame(12345)

	for i := range 400 {
		in := core.NewInputFrame()
		if i%40 < 20 {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionRight)
		}
		r1 := g1.Step(in, ctx1)
		r2 := g2.Step(in.Clone(), ctx2)
		if r1 != r2 {
			t.Fatalf("tick %d: results differ %+v vs %+v", i, r1, r2)
		}
	}

	if !reflect.DeepEqual(g1.items.Food(), g2.items.Food()) || !reflect.DeepEqual(g1.items.Trash(), g2.items.Trash()) {
		t.Error("item streams differ for the same seed")
	}
}

func TestSpawnRanges(t *testing.T) {
	g, _, _ := newGame(99)
	s := g.items

	for range 500 {
		s.Reset()
		s.Refill()
		if len(s.Food()) != 1 || len(s.Trash()) != 1 {
			t.Fatalf("Refill should add one of each, got %d food %d trash", len(s.Food()), len(s.Trash()))
		}
		for _, e := range slices.Concat(s.Food(), s.Trash()) {
			r := e.Rect
			if r.X < 0 || r.X > 1150 || r.Y < -1000 || r.Y > -50 {
				t.Fatalf("spawn out of range: %+v", r)
			}
			if r.X != math.Trunc(r.X) || r.Y != math.Trunc(r.Y) {
				t.Fatalf("spawn not on whole units: %+v", r)
			}
			if r.W != 50 || r.H != 50 {
				t.Fatalf("item size = %vx%v", r.W, r.H)
			}
		}
		if v := s.Food()[0].Variant; v < 0 || v >= 6 {
			t.Fatalf("food variant %d out of range", v)
		}
		if v := s.Trash()[0].Variant; v < 0 || v >= 4 {
			t.Fatalf("trash variant %d out of range", v)
		}
	}
}

func TestRefillSpawnsOnePerTick(t *testing.T) {
	g, _, _ := newGame(1)
	g.items.Refill()
	g.items.Refill()
	g.items.Refill()

	if len(g.items.Food()) != 2 || len(g.items.Trash()) != 1 {
		t.Errorf("got %d food %d trash, want 2 and 1", len(g.items.Food()), len(g.items.Trash()))
	}
}

func TestRender(t *testing.T) {
	g, snd, ctx := newGame(1)
	park(g)
	g.Step(core.NewInputFrame(), ctx)

	screen := core.NewScreen(120, 30)
	screen.SetWorld(1200, 600)
	g.Render(screen, core.SkinPanda)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Missed: 0/5", string(core.SkinPanda.Glyph())} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}

	g.round.End(snd)
	screen.Clear()
	g.Render(screen, core.SkinPanda)
	if !strings.Contains(screen.String(), "Final score: 0") {
		t.Error("game over screen should show the final score")
	}
}
