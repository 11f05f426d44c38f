// Package common holds what the three minigames share: the
// playing → game over → playing round lifecycle and the HUD text.
package common

import "github.com/vovakirdan/pou-arcade/internal/core"

// Gate is the lifecycle's verdict for one tick.
type Gate int

const (
	GateSimulate Gate = iota // Playing: advance the simulation
	GateHold                 // Game over: nothing moves until confirm or back
	GateRestart              // Confirm in game over: reset and keep playing
	GateExit                 // Back: reset and return to the minigame menu
)

// Round tracks one minigame's lifecycle. Music is the ambient cue that
// loops while the round is being played.
type Round struct {
	Music core.Cue
	over  bool
}

// NewRound creates a round that plays the given ambient cue.
func NewRound(music core.Cue) Round {
	return Round{Music: music}
}

// Begin handles the lifecycle inputs at the start of a tick and keeps the
// ambient cue running while playing.
func (r *Round) Begin(in core.InputFrame, snd core.Sound) Gate {
	if r.over {
		switch {
		case in.JustPressed(core.ActionBack):
			return GateExit
		case in.JustPressed(core.ActionConfirm):
			return GateRestart
		default:
			return GateHold
		}
	}

	if in.JustPressed(core.ActionBack) {
		snd.Stop(r.Music)
		return GateExit
	}
	if !snd.AmbientBusy() {
		snd.Play(r.Music)
	}
	return GateSimulate
}

// End moves the round to game over. Only the first call in a round plays
// the game-over cue and stops the music.
func (r *Round) End(snd core.Sound) {
	if r.over {
		return
	}
	r.over = true
	snd.Play(core.CueGameOver)
	snd.Stop(r.Music)
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.over
}

// Reset starts a fresh round.
func (r *Round) Reset() {
	r.over = false
}
