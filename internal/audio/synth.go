package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// Effect cues, played once.
var effectNotes = map[core.Cue][]note{
	core.CueEat:      {{659.25, 70 * time.Millisecond}, {880, 90 * time.Millisecond}},
	core.CueGameOver: {{440, 160 * time.Millisecond}, {349.23, 160 * time.Millisecond}, {261.63, 320 * time.Millisecond}},
	core.CueJetpack:  {{146.83, 50 * time.Millisecond}, {196, 70 * time.Millisecond}},
	core.CueJump:     {{523.25, 50 * time.Millisecond}, {783.99, 70 * time.Millisecond}},
}

const beat = 200 * time.Millisecond

// Ambient tracks: a short phrase repeated musicRepeats times. When the
// track runs out the minigame sees AmbientBusy turn false and asks again.
var musicPhrases = map[core.Cue][]float64{
	core.CueCatcherMusic: {523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880, 0},
	core.CueDodgerMusic:  {392, 0, 392, 466.16, 523.25, 0, 466.16, 392},
	core.CueHopperMusic:  {659.25, 783.99, 987.77, 783.99, 880, 0, 783.99, 659.25},
}

const musicRepeats = 4

// Per-cue loudness as a linear factor
const (
	effectVolume = 0.35
	musicVolume  = 0.15
)

// cueNotes returns the full note list of a cue, or nil for unknown cues.
func cueNotes(c core.Cue) []note {
	if c.Ambient() {
		phrase := musicPhrases[c]
		notes := make([]note, 0, len(phrase)*musicRepeats)
		for range musicRepeats {
			for _, f := range phrase {
				notes = append(notes, note{freq: f, dur: beat})
			}
		}
		return notes
	}
	return effectNotes[c]
}

// cueStreamer synthesizes a cue at the given sample rate. The result ends
// after the last note.
func cueStreamer(c core.Cue, rate beep.SampleRate) beep.Streamer {
	notes := cueNotes(c)
	if len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, rate))
	}

	vol := effectVolume
	if c.Ambient() {
		vol = musicVolume
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(vol)}
}

// tone renders one note. Rests and tones the rate cannot carry become
// silence of the same length.
func tone(n note, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(rate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	return beep.Take(samples, sine)
}

// cueLength returns how many samples a cue lasts at rate.
func cueLength(c core.Cue, rate beep.SampleRate) int {
	total := 0
	for _, n := range cueNotes(c) {
		total += rate.N(n.dur)
	}
	return total
}
