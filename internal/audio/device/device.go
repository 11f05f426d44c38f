// Package device connects an audio service to the sound card.
package device

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pou-arcade/internal/audio"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

// bufferLatency is the speaker buffer length.
const bufferLatency = 100 * time.Millisecond

// Open initializes the speaker at the service's rate and starts pulling
// from it. The returned function closes the speaker.
func Open(svc *audio.Service) (func(), error) {
	rate := svc.SampleRate()
	if err := speaker.Init(rate, rate.N(bufferLatency)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(svc)
	return speaker.Close, nil
}

// Start returns a playing sound service. If no device can be opened it
// logs a warning and returns a silent sound instead.
func Start(logger *log.Logger) (core.Sound, func()) {
	svc := audio.NewService(audio.DefaultSampleRate, logger)
	closeFn, err := Open(svc)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return core.Silent{}, func() {}
	}
	logger.Debug("audio started", "rate", int(svc.SampleRate()))
	return svc, closeFn
}
