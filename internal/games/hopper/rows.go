package hopper

import (
	"math/rand"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

// Step placement options, as inclusive [lo, hi] index ranges. A new
// four-wide row is keyed by the step index of the last three-wide row and
// vice versa, so the safe cell never drifts out of hopping reach. Every
// value is a valid index of the other table.
var (
	fourWideOptions  = [3][2]int{{0, 1}, {1, 2}, {2, 3}}
	threeWideOptions = [4][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 2}}
)

// seedRow is a row of the starting layout.
type seedRow struct {
	y    float64
	step int
}

// Starting layout, bottom to top within each width.
var (
	startFourWide  = []seedRow{{y: 350, step: 2}, {y: 50, step: 1}}
	startThreeWide = []seedRow{{y: 500, step: 1}, {y: 200, step: 1}}
)

// startStepIndex is where both trackers start.
const startStepIndex = 1

// Row is a horizontal line of cells sharing a y. Exactly one cell, at
// index Step, is a safe step; the others are clouds.
type Row struct {
	Cells []core.Entity
	Step  int
}

// Y returns the row's top edge.
func (r Row) Y() float64 {
	return r.Cells[0].Rect.Y
}

// RowStream handles the two interleaved row lists: scrolling, recycling
// rows that left the screen and placing the step of each new row.
type RowStream struct {
	four      []Row // Bottom row first
	three     []Row
	lastFour  int // Step index of the newest four-wide row
	lastThree int // Step index of the newest three-wide row
	rng       *rand.Rand
	cfg       config.HopperCells
	bottom    float64 // Rows below this y are recycled
}

// NewRowStream creates a stream laid out at its starting positions.
func NewRowStream(rng *rand.Rand, cfg config.HopperCells, world config.WorldConfig) *RowStream {
	rs := &RowStream{
		rng:    rng,
		cfg:    cfg,
		bottom: world.Height,
	}
	rs.Reset()
	return rs
}

// Reset restores the starting layout and trackers.
func (rs *RowStream) Reset() {
	rs.four = rs.four[:0]
	for _, s := range startFourWide {
		rs.four = append(rs.four, rs.newRow(rs.cfg.FourWide[:], s.y, s.step))
	}
	rs.three = rs.three[:0]
	for _, s := range startThreeWide {
		rs.three = append(rs.three, rs.newRow(rs.cfg.ThreeWide[:], s.y, s.step))
	}
	rs.lastFour = startStepIndex
	rs.lastThree = startStepIndex
}

// newRow builds a row of clouds at y with a step at index step.
func (rs *RowStream) newRow(xs []float64, y float64, step int) Row {
	cells := make([]core.Entity, len(xs))
	for i, x := range xs {
		kind := core.KindCloud
		if i == step {
			kind = core.KindStep
		}
		cells[i] = core.Entity{
			Rect: core.NewRect(x, y, rs.cfg.Width, rs.cfg.Height),
			Kind: kind,
		}
	}
	return Row{Cells: cells, Step: step}
}

// pick returns a random index in the inclusive option range.
func (rs *RowStream) pick(opt [2]int) int {
	return opt[0] + rs.rng.Intn(opt[1]-opt[0]+1)
}

// Scroll moves every row down by dy.
func (rs *RowStream) Scroll(dy float64) {
	for _, rows := range [][]Row{rs.four, rs.three} {
		for i := range rows {
			for j := range rows[i].Cells {
				rows[i].Cells[j].Rect.Y += dy
			}
		}
	}
}

// Recycle replaces a bottom row that left the screen with a new row above
// the top row of the other width.
func (rs *RowStream) Recycle() {
	if rs.four[0].Y() > rs.bottom {
		y := rs.three[len(rs.three)-1].Y() - rs.cfg.RowSpacing
		step := rs.pick(fourWideOptions[rs.lastThree])
		rs.four = append(rs.four[1:], rs.newRow(rs.cfg.FourWide[:], y, step))
		rs.lastFour = step
	}

	if rs.three[0].Y() > rs.bottom {
		y := rs.four[len(rs.four)-1].Y() - rs.cfg.RowSpacing
		step := rs.pick(threeWideOptions[rs.lastFour])
		rs.three = append(rs.three[1:], rs.newRow(rs.cfg.ThreeWide[:], y, step))
		rs.lastThree = step
	}
}

// Collide reports whether box overlaps any cloud.
func (rs *RowStream) Collide(box core.Rect) bool {
	for _, rows := range [][]Row{rs.four, rs.three} {
		for _, row := range rows {
			for _, c := range row.Cells {
				if c.Kind.Lethal() && core.Overlaps(c.Rect, box) {
					return true
				}
			}
		}
	}
	return false
}

// FourWide returns the four-wide rows, bottom first.
func (rs *RowStream) FourWide() []Row {
	return rs.four
}

// ThreeWide returns the three-wide rows, bottom first.
func (rs *RowStream) ThreeWide() []Row {
	return rs.three
}
