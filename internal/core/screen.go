package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It implements Surface by projecting the world rectangle onto its cells,
// so games draw in world units while the terminal shows whatever fits.
type Screen struct {
	width  int
	height int
	worldW float64
	worldH float64
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
// Until SetWorld is called one world unit maps to one cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: float64(width),
		worldH: float64(height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// SetWorld sets the world dimensions projected onto the screen.
func (s *Screen) SetWorld(w, h float64) {
	if w > 0 {
		s.worldW = w
	}
	if h > 0 {
		s.worldH = h
	}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position, keeping the cell's color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell places a colored rune at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
		i++
	}
}

// DrawTextCentered draws text centered horizontally on cell row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text, c)
}

// scale returns the world-to-cell factors.
func (s *Screen) scale() (float64, float64) {
	return float64(s.width) / s.worldW, float64(s.height) / s.worldH
}

// Size implements Surface.
func (s *Screen) Size() (float64, float64) {
	return s.worldW, s.worldH
}

// FillRect implements Surface. Any non-empty rectangle that lies on screen
// covers at least one cell.
func (s *Screen) FillRect(r Rect, p Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	sx, sy := s.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*sy)), y0+1)

	cell := Cell{Rune: p.Rune, Color: p.Color}
	for y := max(y0, 0); y < min(y1, s.height); y++ {
		for x := max(x0, 0); x < min(x1, s.width); x++ {
			s.cells[y][x] = cell
		}
	}
}

// DrawLabel implements Surface.
func (s *Screen) DrawLabel(x, y float64, text string, c Color) {
	sx, sy := s.scale()
	s.DrawText(int(x*sx), int(y*sy), text, c)
}

// DrawLabelRight implements Surface.
func (s *Screen) DrawLabelRight(x, y float64, text string, c Color) {
	sx, sy := s.scale()
	s.DrawText(int(x*sx)-utf8.RuneCountInString(text), int(y*sy), text, c)
}

// DrawLabelCentered implements Surface.
func (s *Screen) DrawLabelCentered(y float64, text string, c Color) {
	_, sy := s.scale()
	s.DrawTextCentered(int(y*sy), text, c)
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Surface = (*Screen)(nil)
