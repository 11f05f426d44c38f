package dodger

import (
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

// TreePair is an upper and a lower tree sharing an x position.
// The character must fly through the gap between them.
type TreePair struct {
	Upper core.Entity
	Lower core.Entity
}

// X returns the pair's left edge.
func (p TreePair) X() float64 {
	return p.Upper.Rect.X
}

// translate moves both trees horizontally.
func (p *TreePair) translate(dx float64) {
	p.Upper.Rect = p.Upper.Rect.Translate(dx, 0)
	p.Lower.Rect = p.Lower.Rect.Translate(dx, 0)
}

// TreeStream handles spawning, scrolling and recycling of tree pairs.
type TreeStream struct {
	pairs []TreePair
	rng   *rand.Rand
	cfg   config.DodgerTrees
}

// NewTreeStream creates a stream laid out at its starting positions.
func NewTreeStream(rng *rand.Rand, cfg config.DodgerTrees) *TreeStream {
	ts := &TreeStream{
		pairs: make([]TreePair, 0, cfg.Pairs),
		rng:   rng,
		cfg:   cfg,
	}
	ts.Reset()
	return ts
}

// Reset lays out the starting pairs, evenly spaced from FirstX.
func (ts *TreeStream) Reset() {
	ts.pairs = ts.pairs[:0]
	for i := range ts.cfg.Pairs {
		ts.pairs = append(ts.pairs, ts.newPair(ts.cfg.FirstX+float64(i)*ts.cfg.Spacing))
	}
}

// newPair creates a pair at x with a random opening height.
func (ts *TreeStream) newPair(x float64) TreePair {
	minY, maxY := int(ts.cfg.MinUpperY), int(ts.cfg.MaxUpperY)
	upperY := float64(minY + ts.rng.Intn(maxY-minY+1))

	return TreePair{
		Upper: core.Entity{
			Rect: core.NewRect(x, upperY, ts.cfg.Width, ts.cfg.Height),
			Kind: core.KindTreeUpper,
		},
		Lower: core.Entity{
			Rect: core.NewRect(x, upperY+ts.cfg.Gap, ts.cfg.Width, ts.cfg.Height),
			Kind: core.KindTreeLower,
		},
	}
}

// Advance scrolls every pair left and reports whether any tree touches the
// hitbox. Pairs that left the screen are replaced by a new pair placed
// after the rightmost one; recycled counts them.
func (ts *TreeStream) Advance(hitbox core.Rect) (hit bool, recycled int) {
	for i := range ts.pairs {
		ts.pairs[i].translate(-ts.cfg.Speed)
		p := ts.pairs[i]
		if core.Overlaps(p.Upper.Rect, hitbox) || core.Overlaps(p.Lower.Rect, hitbox) {
			hit = true
		}
	}

	kept := ts.pairs[:0]
	for _, p := range ts.pairs {
		if p.X() < -ts.cfg.Width {
			recycled++
			continue
		}
		kept = append(kept, p)
	}
	ts.pairs = kept

	for range recycled {
		x := ts.cfg.FirstX
		if n := len(ts.pairs); n > 0 {
			x = ts.pairs[n-1].X() + ts.cfg.Spacing
		}
		ts.pairs = append(ts.pairs, ts.newPair(x))
	}

	return hit, recycled
}

// Pairs returns the current tree pairs, ordered left to right.
func (ts *TreeStream) Pairs() []TreePair {
	return ts.pairs
}
