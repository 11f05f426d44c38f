package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// Debug font cell size, and the scale labels are drawn at.
const (
	glyphW     = 6
	glyphH     = 16
	labelScale = 2
	maxLabels  = 256
)

var background = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// rgba maps core.Color to screen colors.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 34, G: 139, B: 34, A: 255},
	core.ColorYellow:        {R: 229, G: 192, B: 40, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 240, G: 240, B: 240, A: 255},
	core.ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	core.ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	core.ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	core.ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 230, G: 126, B: 34, A: 255},
	core.ColorGray:          {R: 128, G: 128, B: 128, A: 255},
}

func colorOf(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// labelWidth returns the drawn width of text in world units.
func labelWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text) * glyphW * labelScale)
}

// canvas draws onto an ebiten image in world units. The game layout makes
// one world unit one logical pixel.
type canvas struct {
	dst    *ebiten.Image
	w, h   float64
	labels map[string]*ebiten.Image // White text, tinted when drawn
}

func (c *canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *canvas) FillRect(r core.Rect, p core.Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorOf(p.Color), false)
}

func (c *canvas) DrawLabel(x, y float64, text string, col core.Color) {
	img := c.label(text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(labelScale, labelScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorOf(col))
	c.dst.DrawImage(img, op)
}

func (c *canvas) DrawLabelRight(x, y float64, text string, col core.Color) {
	c.DrawLabel(x-labelWidth(text), y, text, col)
}

func (c *canvas) DrawLabelCentered(y float64, text string, col core.Color) {
	c.DrawLabel((c.w-labelWidth(text))/2, y, text, col)
}

// label returns the cached white rendering of text.
func (c *canvas) label(text string) *ebiten.Image {
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}
	img := ebiten.NewImage(max(utf8.RuneCountInString(text), 1)*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.labels[text] = img
	return img
}

var _ core.Surface = (*canvas)(nil)
