package core

// Paint describes how a filled rectangle looks. Character-cell surfaces use
// the rune and color; pixel surfaces use the color only.
type Paint struct {
	Rune  rune
	Color Color
}

// Surface is the rendering collaborator. All coordinates are world units;
// the implementation scales them to its own resolution.
type Surface interface {
	// Size returns the world dimensions the surface maps onto.
	Size() (w, h float64)

	// FillRect paints a world rectangle.
	FillRect(r Rect, p Paint)

	// DrawLabel draws text with its top-left corner at (x, y).
	DrawLabel(x, y float64, text string, c Color)

	// DrawLabelRight draws text whose right edge ends at x.
	DrawLabelRight(x, y float64, text string, c Color)

	// DrawLabelCentered draws text horizontally centered at height y.
	DrawLabelCentered(y float64, text string, c Color)
}
