package core

import "strings"

// Skin selects the character's look. All minigames share the same skin.
type Skin int

const (
	SkinDefault Skin = iota
	SkinCoat
	SkinPanda
	SkinPolo
	SkinPumpkin
	SkinTShirt

	skinCount
)

// SkinCount is the number of available skins.
const SkinCount = int(skinCount)

// skinLooks holds the display name, glyph and color for every skin.
var skinLooks = [skinCount]struct {
	name  string
	glyph rune
	color Color
}{
	SkinDefault: {"Default", '●', ColorOrange},
	SkinCoat:    {"Coat", '◙', ColorBlue},
	SkinPanda:   {"Panda", '◕', ColorBrightWhite},
	SkinPolo:    {"Polo", '◘', ColorGreen},
	SkinPumpkin: {"Pumpkin", '◉', ColorYellow},
	SkinTShirt:  {"T-shirt", '◍', ColorRed},
}

// normalize folds any value into the valid skin range.
func (s Skin) normalize() Skin {
	return Skin(Wrap(int(s), SkinCount))
}

// String returns the skin's display name.
func (s Skin) String() string {
	return skinLooks[s.normalize()].name
}

// Glyph returns the rune used to draw the character in this skin.
func (s Skin) Glyph() rune {
	return skinLooks[s.normalize()].glyph
}

// Color returns the character's color in this skin.
func (s Skin) Color() Color {
	return skinLooks[s.normalize()].color
}

// Next returns the following skin, wrapping around.
func (s Skin) Next() Skin {
	return Skin(Wrap(int(s)+1, SkinCount))
}

// Prev returns the preceding skin, wrapping around.
func (s Skin) Prev() Skin {
	return Skin(Wrap(int(s)-1, SkinCount))
}

// ParseSkin finds a skin by its display name, case-insensitively.
func ParseSkin(name string) (Skin, bool) {
	for i := range skinLooks {
		if strings.EqualFold(skinLooks[i].name, name) {
			return Skin(i), true
		}
	}
	return SkinDefault, false
}
