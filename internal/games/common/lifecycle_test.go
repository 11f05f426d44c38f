package common

import (
	"testing"

	"github.com/vovakirdan/pou-arcade/internal/audio/audiotest"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func TestRoundPlayingStartsMusicWhenIdle(t *testing.T) {
	r := NewRound(core.CueDodgerMusic)
	snd := &audiotest.Recorder{}

	if got := r.Begin(core.NewInputFrame(), snd); got != GateSimulate {
		t.Fatalf("Begin() = %v, want GateSimulate", got)
	}
	if snd.PlayCount(core.CueDodgerMusic) != 1 {
		t.Errorf("music should start when ambient is idle, played %v", snd.Played)
	}

	snd.Clear()
	snd.Busy = true
	r.Begin(core.NewInputFrame(), snd)
	if len(snd.Played) != 0 {
		t.Errorf("music should not restart while busy, played %v", snd.Played)
	}
}

func TestRoundBackWhilePlaying(t *testing.T) {
	r := NewRound(core.CueCatcherMusic)
	snd := &audiotest.Recorder{Busy: true}

	if got := r.Begin(press(core.ActionBack), snd); got != GateExit {
		t.Fatalf("Begin() = %v, want GateExit", got)
	}
	if !snd.WasStopped(core.CueCatcherMusic) {
		t.Error("leaving a round should stop its music")
	}
}

func TestRoundHeldBackDoesNotExit(t *testing.T) {
	r := NewRound(core.CueCatcherMusic)
	snd := &audiotest.Recorder{Busy: true}

	held := core.NewInputFrame()
	held.Hold(core.ActionBack)
	if got := r.Begin(held, snd); got != GateSimulate {
		t.Errorf("held Back should not exit, got %v", got)
	}
}

func TestRoundGameOverTransitions(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want Gate
	}{
		{"no input", core.NewInputFrame(), GateHold},
		{"confirm", press(core.ActionConfirm), GateRestart},
		{"back", press(core.ActionBack), GateExit},
		{"back wins over confirm", press(core.ActionConfirm, core.ActionBack), GateExit},
		{"jump is ignored", press(core.ActionJump), GateHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound(core.CueHopperMusic)
			snd := &audiotest.Recorder{}
			r.End(snd)
			snd.Clear()

			if got := r.Begin(tt.in, snd); got != tt.want {
				t.Errorf("Begin() = %v, want %v", got, tt.want)
			}
			if len(snd.Played) != 0 {
				t.Errorf("no cue should play after game over, got %v", snd.Played)
			}
		})
	}
}

func TestRoundEndOnce(t *testing.T) {
	r := NewRound(core.CueHopperMusic)
	snd := &audiotest.Recorder{}

	r.End(snd)
	r.End(snd)

	if !r.Over() {
		t.Fatal("round should be over")
	}
	if n := snd.PlayCount(core.CueGameOver); n != 1 {
		t.Errorf("game over cue played %d times, want 1", n)
	}
	if !snd.WasStopped(core.CueHopperMusic) {
		t.Error("game over should stop the music")
	}

	r.Reset()
	if r.Over() {
		t.Error("Reset should start a fresh round")
	}
}
