package core

// Cue identifies a sound the minigames can ask for.
type Cue int

const (
	CueEat          Cue = iota // Catcher: food caught
	CueGameOver                // Any minigame: round lost
	CueJetpack                 // Dodger: thrust
	CueJump                    // Hopper: hop started
	CueCatcherMusic            // Ambient track for the catcher
	CueDodgerMusic             // Ambient track for the dodger
	CueHopperMusic             // Ambient track for the hopper

	cueCount
)

// CueCount is the number of defined cues; cue values are in [0, CueCount).
const CueCount = int(cueCount)

var cueNames = [cueCount]string{
	CueEat:          "eat",
	CueGameOver:     "game_over",
	CueJetpack:      "jetpack",
	CueJump:         "jump",
	CueCatcherMusic: "catcher_music",
	CueDodgerMusic:  "dodger_music",
	CueHopperMusic:  "hopper_music",
}

// String returns the cue's name.
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Ambient reports whether the cue is a background track.
func (c Cue) Ambient() bool {
	return c == CueCatcherMusic || c == CueDodgerMusic || c == CueHopperMusic
}

// Sound is the audio collaborator. Calls never block; whether the ambient
// track is still running is polled once per tick through AmbientBusy.
type Sound interface {
	Play(c Cue)
	Stop(c Cue)
	AmbientBusy() bool
}

// Silent is a Sound that discards every cue.
type Silent struct{}

func (Silent) Play(Cue)          {}
func (Silent) Stop(Cue)          {}
func (Silent) AmbientBusy() bool { return true }
