package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// Outcome tells the session what to do after a tick.
type Outcome int

const (
	OutcomeContinue     Outcome = iota // Keep routing ticks to the minigame
	OutcomeReturnToMenu                // Player left; show the minigame picker
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Outcome Outcome
}

// TickContext carries the session-wide settings a minigame needs for one tick.
type TickContext struct {
	Skin  Skin
	Audio Sound // Already gated by the audio-enabled setting
}

// Sound returns the tick's audio collaborator, never nil.
func (c TickContext) Sound() Sound {
	if c.Audio == nil {
		return Silent{}
	}
	return c.Audio
}

// Settings are the player's choices that outlive a session.
type Settings struct {
	Skin         Skin
	AudioEnabled bool
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{Skin: SkinDefault, AudioEnabled: true}
}
