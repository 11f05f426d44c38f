// Package audiotest provides a core.Sound that records cues, for tests.
package audiotest

import (
	"slices"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// Recorder records every Play and Stop call. Busy is returned from
// AmbientBusy, so tests decide whether the ambient track is running.
type Recorder struct {
	Played  []core.Cue
	Stopped []core.Cue
	Busy    bool
}

func (r *Recorder) Play(c core.Cue)    { r.Played = append(r.Played, c) }
func (r *Recorder) Stop(c core.Cue)    { r.Stopped = append(r.Stopped, c) }
func (r *Recorder) AmbientBusy() bool { return r.Busy }

// PlayCount returns how often a cue was played.
func (r *Recorder) PlayCount(c core.Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}

// WasStopped reports whether a cue was stopped at least once.
func (r *Recorder) WasStopped(c core.Cue) bool {
	return slices.Contains(r.Stopped, c)
}

// Clear forgets all recorded calls.
func (r *Recorder) Clear() {
	r.Played = r.Played[:0]
	r.Stopped = r.Stopped[:0]
}
