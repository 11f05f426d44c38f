package catcher

import (
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

// ItemStream handles spawning, falling and removal of food and trash.
type ItemStream struct {
	food   []core.Entity
	trash  []core.Entity
	rng    *rand.Rand
	cfg    config.CatcherItems
	worldW float64
	worldH float64
}

// NewItemStream creates an empty stream drawing positions from rng.
func NewItemStream(rng *rand.Rand, cfg config.CatcherItems, world config.WorldConfig) *ItemStream {
	return &ItemStream{
		food:   make([]core.Entity, 0, cfg.FoodTarget),
		trash:  make([]core.Entity, 0, cfg.TrashTarget),
		rng:    rng,
		cfg:    cfg,
		worldW: world.Width,
		worldH: world.Height,
	}
}

// Reset removes every item.
func (s *ItemStream) Reset() {
	s.food = s.food[:0]
	s.trash = s.trash[:0]
}

// Refill spawns at most one food and one trash item, while below target.
func (s *ItemStream) Refill() {
	if len(s.food) < s.cfg.FoodTarget {
		s.food = append(s.food, s.spawn(core.KindFood, s.cfg.FoodVariants))
	}
	if len(s.trash) < s.cfg.TrashTarget {
		s.trash = append(s.trash, s.spawn(core.KindTrash, s.cfg.TrashVariants))
	}
}

// spawn places a new item above the screen at a random column.
func (s *ItemStream) spawn(kind core.Kind, variants int) core.Entity {
	maxX := int(s.worldW - s.cfg.Size)
	x := 0
	if maxX > 0 {
		x = s.rng.Intn(maxX + 1)
	}
	minY, maxY := int(s.cfg.SpawnMinY), int(s.cfg.SpawnMaxY)
	y := minY + s.rng.Intn(maxY-minY+1)

	return core.Entity{
		Rect:    core.NewRect(float64(x), float64(y), s.cfg.Size, s.cfg.Size),
		Kind:    kind,
		Variant: s.rng.Intn(variants),
	}
}

// AdvanceFood moves the food down by v. Items that leave the screen are
// missed, items touching the catcher are caught; both are removed.
func (s *ItemStream) AdvanceFood(v float64, catcher core.Rect) (caught, missed int) {
	kept := s.food[:0]
	for _, f := range s.food {
		f.Rect.Y += v
		switch {
		case f.Rect.Y > s.worldH:
			missed++
		case core.Overlaps(f.Rect, catcher):
			caught++
		default:
			kept = append(kept, f)
		}
	}
	s.food = kept
	return caught, missed
}

// AdvanceTrash moves the trash down by v and drops what left the screen.
// It reports whether any trash touches the catcher.
func (s *ItemStream) AdvanceTrash(v float64, catcher core.Rect) bool {
	hit := false
	kept := s.trash[:0]
	for _, t := range s.trash {
		t.Rect.Y += v
		if t.Rect.Y > s.worldH {
			continue
		}
		if core.Overlaps(t.Rect, catcher) {
			hit = true
		}
		kept = append(kept, t)
	}
	s.trash = kept
	return hit
}

// Food returns the falling food items.
func (s *ItemStream) Food() []core.Entity {
	return s.food
}

// Trash returns the falling trash items.
func (s *ItemStream) Trash() []core.Entity {
	return s.trash
}
