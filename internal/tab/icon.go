package tab

import (
	"math"
	"sort"
)

// Icon is a glyph set with one glyph per clockwise quarter turn.
//
// Terminals cannot rotate a glyph, so an icon carries its own rotations:
// index 0 is upright, 1 is turned 90° clockwise, 2 is upside down and 3 is
// turned 90° counter-clockwise.
type Icon struct {
	name   string
	glyphs [4]string
}

// NewIcon creates an icon from its four orientations.
func NewIcon(name, up, right, down, left string) Icon {
	return Icon{name: name, glyphs: [4]string{up, right, down, left}}
}

// Name returns the icon's name.
func (i Icon) Name() string {
	return i.name
}

// Glyph returns the upright glyph.
func (i Icon) Glyph() string {
	return i.glyphs[0]
}

// Rotated returns the glyph for the quarter turn nearest to degrees.
// Positive angles turn clockwise.
func (i Icon) Rotated(degrees float64) string {
	return i.glyphs[QuarterTurns(degrees)]
}

// IsZero reports whether the icon has no glyphs at all.
func (i Icon) IsZero() bool {
	return i.glyphs == [4]string{}
}

// QuarterTurns maps an angle to the nearest clockwise quarter turn in [0, 4).
func QuarterTurns(degrees float64) int {
	q := int(math.Round(degrees/90)) % 4
	if q < 0 {
		q += 4
	}
	return q
}

var builtinIcons = map[string]Icon{
	"arrow":    NewIcon("arrow", "↑", "→", "↓", "←"),
	"triangle": NewIcon("triangle", "▲", "▶", "▼", "◀"),
	"chevron":  NewIcon("chevron", "^", ">", "v", "<"),
	"pointer":  NewIcon("pointer", "☝", "☞", "☟", "☜"),
	"house":    NewIcon("house", "⌂", "ᐅ", "ᐁ", "ᐊ"),
	"person":   NewIcon("person", "ꆜ", "ᓀ", "ᘎ", "ᓂ"),
	"tee":      NewIcon("tee", "┴", "├", "┬", "┤"),
	"half":     NewIcon("half", "◓", "◑", "◒", "◐"),
}

// LookupIcon returns a built-in icon by name.
func LookupIcon(name string) (Icon, bool) {
	icon, ok := builtinIcons[name]
	return icon, ok
}

// IconNames returns the built-in icon names, sorted.
func IconNames() []string {
	names := make([]string, 0, len(builtinIcons))
	for name := range builtinIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
