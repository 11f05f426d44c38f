package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pou-arcade/internal/audio/audiotest"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

const testRate = beep.SampleRate(8000)

// pull streams n samples from s in small chunks and returns the peak level.
func pull(t *testing.T, s *Service, n int) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	peak := 0.0
	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		got, ok := s.Stream(chunk)
		if !ok || got != len(chunk) {
			t.Fatalf("Stream returned (%d, %v), want (%d, true)", got, ok, len(chunk))
		}
		for _, smp := range chunk {
			peak = max(peak, math.Abs(smp[0]), math.Abs(smp[1]))
		}
		n -= len(chunk)
	}
	return peak
}

func TestSilentStream(t *testing.T) {
	s := NewService(testRate, nil)
	if peak := pull(t, s, 4000); peak != 0 {
		t.Errorf("idle service produced level %v", peak)
	}
}

func TestEffectPlaysAndEnds(t *testing.T) {
	s := NewService(testRate, nil)
	s.Play(core.CueEat)
	if s.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", s.Active())
	}
	if s.AmbientBusy() {
		t.Error("an effect should not mark the ambient track busy")
	}

	if peak := pull(t, s, cueLength(core.CueEat, testRate)+1024); peak == 0 {
		t.Error("effect produced no sound")
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d after the effect ended, want 0", s.Active())
	}
}

func TestAmbientBusyUntilTrackEnds(t *testing.T) {
	s := NewService(testRate, nil)
	s.Play(core.CueDodgerMusic)
	if !s.AmbientBusy() {
		t.Fatal("ambient track should be busy after Play")
	}

	length := cueLength(core.CueDodgerMusic, testRate)
	pull(t, s, length-1000)
	if !s.AmbientBusy() {
		t.Fatal("ambient track ended early")
	}
	pull(t, s, 2000)
	if s.AmbientBusy() {
		t.Error("ambient track should report idle after its last note")
	}
}

func TestStopAmbient(t *testing.T) {
	s := NewService(testRate, nil)
	s.Play(core.CueCatcherMusic)

	s.Stop(core.CueHopperMusic)
	if !s.AmbientBusy() {
		t.Fatal("stopping another track should not affect the running one")
	}
	s.Stop(core.CueEat)
	if !s.AmbientBusy() {
		t.Fatal("stopping an effect should not affect the ambient track")
	}

	s.Stop(core.CueCatcherMusic)
	if s.AmbientBusy() {
		t.Fatal("ambient track should stop")
	}
	pull(t, s, 512)
	if s.Active() != 0 {
		t.Errorf("Active() = %d after stop, want 0", s.Active())
	}
}

func TestAmbientReplacesAmbient(t *testing.T) {
	s := NewService(testRate, nil)
	s.Play(core.CueCatcherMusic)
	s.Play(core.CueHopperMusic)

	pull(t, s, 512)
	if s.Active() != 1 {
		t.Errorf("Active() = %d, want only the new track", s.Active())
	}
	if !s.AmbientBusy() {
		t.Error("new track should be busy")
	}

	s.Stop(core.CueCatcherMusic)
	if !s.AmbientBusy() {
		t.Error("stopping the replaced track should be a no-op")
	}
}

func TestUnknownCue(t *testing.T) {
	s := NewService(testRate, nil)
	s.Play(core.Cue(99))
	if s.Active() != 0 || s.AmbientBusy() {
		t.Error("unknown cue should be ignored")
	}
}

func TestEveryCueHasNotes(t *testing.T) {
	for c := core.Cue(0); int(c) < core.CueCount; c++ {
		if len(cueNotes(c)) == 0 {
			t.Errorf("cue %v has no notes", c)
		}
		if cueLength(c, testRate) == 0 {
			t.Errorf("cue %v has zero length", c)
		}
	}
}

func TestToneAboveNyquistIsSilent(t *testing.T) {
	st := tone(note{freq: 6000, dur: beat}, testRate)
	buf := make([][2]float64, testRate.N(beat))
	n, _ := st.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	for i, smp := range buf {
		if smp != [2]float64{} {
			t.Fatalf("sample %d = %v, want silence", i, smp)
		}
	}
}

func TestGate(t *testing.T) {
	rec := &audiotest.Recorder{}

	tests := []struct {
		name    string
		snd     core.Sound
		enabled bool
		silent  bool
	}{
		{"enabled", rec, true, false},
		{"disabled", rec, false, true},
		{"nil service", nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.Clear()
			got := Gate(tt.snd, tt.enabled)
			got.Play(core.CueJump)

			if _, ok := got.(core.Silent); ok != tt.silent {
				t.Fatalf("Gate returned %T", got)
			}
			if tt.silent {
				if len(rec.Played) != 0 {
					t.Error("muted cue reached the service")
				}
				if !got.AmbientBusy() {
					t.Error("muted sound should report busy")
				}
			} else if rec.PlayCount(core.CueJump) != 1 {
				t.Error("cue should reach the service")
			}
		})
	}
}
