package audio

import "github.com/vovakirdan/pou-arcade/internal/core"

// Gate returns s when audio is enabled and a silent sound otherwise.
// The silent sound reports the ambient track as busy, so minigames stop
// asking for it while muted.
func Gate(s core.Sound, enabled bool) core.Sound {
	if !enabled || s == nil {
		return core.Silent{}
	}
	return s
}
