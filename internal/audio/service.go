// Package audio plays the arcade's sound cues. Cues are synthesized with
// beep and mixed into a single stream that a device (or a test) pulls
// samples from.
package audio

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// DefaultSampleRate is the rate the device is opened with.
const DefaultSampleRate = beep.SampleRate(44100)

// Service is a core.Sound backed by a beep mixer. At most one ambient
// track plays at a time; effects overlap freely.
//
// Play and Stop never block on the device: they only edit the mixer under
// the service lock, which Stream holds while filling a buffer.
type Service struct {
	mu         sync.Mutex
	rate       beep.SampleRate
	mixer      *beep.Mixer
	ambient    *beep.Ctrl
	ambientCue core.Cue
	busy       atomic.Bool
	logger     *log.Logger
}

// NewService creates a service mixing at rate. A nil logger discards.
func NewService(rate beep.SampleRate, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		rate:   rate,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// SampleRate returns the rate the service mixes at.
func (s *Service) SampleRate() beep.SampleRate {
	return s.rate
}

// Play starts a cue. An ambient cue replaces the running ambient track.
func (s *Service) Play(c core.Cue) {
	st := cueStreamer(c, s.rate)
	if st == nil {
		s.logger.Debug("unknown cue", "cue", c)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !c.Ambient() {
		s.mixer.Add(st)
		return
	}

	s.stopAmbientLocked()
	// The callback runs inside Stream, with the lock held.
	ctrl := &beep.Ctrl{Streamer: beep.Seq(st, beep.Callback(func() {
		s.busy.Store(false)
	}))}
	s.ambient = ctrl
	s.ambientCue = c
	s.busy.Store(true)
	s.mixer.Add(ctrl)
	s.logger.Debug("ambient started", "cue", c)
}

// Stop ends the ambient track if c is the one playing. Effects are short
// and always run to the end.
func (s *Service) Stop(c core.Cue) {
	if !c.Ambient() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ambient != nil && s.ambientCue == c {
		s.stopAmbientLocked()
	}
}

func (s *Service) stopAmbientLocked() {
	if s.ambient == nil {
		return
	}
	// A Ctrl without a streamer ends, and the mixer drops it.
	s.ambient.Streamer = nil
	s.ambient = nil
	s.busy.Store(false)
}

// AmbientBusy reports whether an ambient track is still playing.
func (s *Service) AmbientBusy() bool {
	return s.busy.Load()
}

// Stream fills samples with the current mix. It never ends, so a device
// can keep pulling from it while nothing is playing.
func (s *Service) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	n, _ = s.mixer.Stream(samples)
	s.mu.Unlock()

	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err always returns nil.
func (s *Service) Err() error {
	return nil
}

// Active returns the number of cues in the mix.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

var (
	_ core.Sound    = (*Service)(nil)
	_ beep.Streamer = (*Service)(nil)
)
